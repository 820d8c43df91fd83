// Package metrics provides the observability hooks of the documentation site.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so call sites never check for nil:
//
//	type Handlers struct {
//	    recorder metrics.Recorder
//	}
//
// When monitoring is enabled the server wires a PrometheusRecorder registered on a
// private registry and exposes it with Handler.
package metrics
