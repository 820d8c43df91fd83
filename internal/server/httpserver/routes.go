package httpserver

import (
	"fmt"
	"net/http"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/marzneshin/docsite/internal/config"
	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/metrics"
	"github.com/marzneshin/docsite/internal/server/handlers"
)

// routes registers every endpoint of the site. Configured paths that collide with a
// fixed route come back as a config error instead of a ServeMux panic.
func (s *Server) routes(h *handlers.Handlers, registry *prom.Registry) (*http.ServeMux, error) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", h.HandleHome)
	mux.HandleFunc("GET /docs", h.HandleDocsIndex)
	mux.HandleFunc("GET /docs/{slug}", h.HandleDocPage)
	mux.HandleFunc("GET /search", h.HandleSearch)
	mux.HandleFunc("GET /api/nav", h.HandleNav)
	mux.HandleFunc("GET /set-language/{code}", h.HandleSetLanguage)

	if dir := s.cfg.Content.StaticDir; dir != "" {
		mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(dir))))
	}

	health := s.cfg.Monitoring.Health.Path
	if err := register(mux, "monitoring.health.path", "GET "+health, http.HandlerFunc(h.HandleHealthCheck)); err != nil {
		return nil, err
	}
	if health != config.HealthzPath {
		if err := register(mux, "monitoring.health.path", "GET "+config.HealthzPath, http.HandlerFunc(h.HandleHealthCheck)); err != nil {
			return nil, err
		}
	}

	if s.cfg.Monitoring.Metrics.Enabled {
		path := s.cfg.Monitoring.Metrics.Path
		if err := register(mux, "monitoring.metrics.path", "GET "+path, metrics.HTTPHandler(registry, s.logger)); err != nil {
			return nil, err
		}
	}

	mux.HandleFunc("/", h.HandleNotFound)
	return mux, nil
}

// register adds a pattern built from configuration. ServeMux reports conflicts and
// malformed patterns by panicking.
func register(mux *http.ServeMux, key, pattern string, handler http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = foundationerrors.ConfigError("route conflicts with an existing endpoint").
				WithContext("key", key).
				WithContext("pattern", pattern).
				WithCause(fmt.Errorf("%v", r)).
				Build()
		}
	}()
	mux.Handle(pattern, handler)
	return nil
}
