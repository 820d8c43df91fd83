package metrics

import (
	"strconv"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	pageViews       *prom.CounterVec
	searches        prom.Counter
	searchResults   prom.Histogram
	searchDuration  prom.Histogram
	languages       *prom.CounterVec
	requests        *prom.CounterVec
	requestDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs the metrics and registers them on reg. A nil reg
// gets a fresh private registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		pageViews: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "page_views_total",
			Help:      "Documentation page requests by slug and outcome",
		}, []string{"slug", "result"}),
		searches: prom.NewCounter(prom.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Search queries served",
		}),
		searchResults: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of results returned per search",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 10},
		}),
		searchDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Time spent scanning documentation for a query",
			Buckets:   prom.DefBuckets,
		}),
		languages: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "language_requests_total",
			Help:      "Requests served per display language",
		}, []string{"lang"}),
		requests: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code",
		}, []string{"route", "status"}),
		requestDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern",
			Buckets:   prom.DefBuckets,
		}, []string{"route"}),
	}
	reg.MustRegister(pr.pageViews, pr.searches, pr.searchResults, pr.searchDuration,
		pr.languages, pr.requests, pr.requestDuration)
	return pr
}

func (p *PrometheusRecorder) IncPageView(slug string, result PageResult) {
	if p == nil {
		return
	}
	p.pageViews.WithLabelValues(slug, string(result)).Inc()
}

func (p *PrometheusRecorder) ObserveSearch(results int, d time.Duration) {
	if p == nil {
		return
	}
	p.searches.Inc()
	p.searchResults.Observe(float64(results))
	p.searchDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLanguage(lang string) {
	if p == nil {
		return
	}
	p.languages.WithLabelValues(lang).Inc()
}

func (p *PrometheusRecorder) ObserveHTTPRequest(route string, status int, d time.Duration) {
	if p == nil {
		return
	}
	p.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	p.requestDuration.WithLabelValues(route).Observe(d.Seconds())
}
