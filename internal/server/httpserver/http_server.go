// Package httpserver wires routes, middleware and the http.Server lifecycle.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/marzneshin/docsite/internal/config"
	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/logfields"
	"github.com/marzneshin/docsite/internal/metrics"
	"github.com/marzneshin/docsite/internal/server/handlers"
	smw "github.com/marzneshin/docsite/internal/server/middleware"
	"github.com/marzneshin/docsite/internal/server/views"
)

// Server owns the site's http.Server.
type Server struct {
	cfg          *config.Config
	logger       *slog.Logger
	handler      http.Handler
	errorAdapter *foundationerrors.HTTPErrorAdapter

	mu       sync.Mutex
	srv      *http.Server
	listener net.Listener
	done     chan struct{}
}

// New constructs a new HTTP server wiring instance.
func New(cfg *config.Config, opts Options) (*Server, error) {
	if opts.Service == nil {
		return nil, foundationerrors.InternalError("docs service is required").Build()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Translator == nil {
		opts.Translator = i18n.DefaultCatalog()
	}
	if opts.Views == nil {
		v, err := views.New()
		if err != nil {
			return nil, foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to parse templates").Build()
		}
		opts.Views = v
	}

	var recorder metrics.Recorder = metrics.NoopRecorder{}
	registry := opts.Registry
	if cfg.Monitoring.Metrics.Enabled {
		if registry == nil {
			registry = metrics.NewRegistry()
		}
		recorder = metrics.NewPrometheusRecorder(registry)
	}

	s := &Server{
		cfg:          cfg,
		logger:       opts.Logger,
		errorAdapter: foundationerrors.NewHTTPErrorAdapter(opts.Logger),
	}

	h := handlers.New(handlers.Deps{
		Config:     cfg,
		Service:    opts.Service,
		Translator: opts.Translator,
		Views:      opts.Views,
		Recorder:   recorder,
		Logger:     opts.Logger,
	})

	mux, err := s.routes(h, registry)
	if err != nil {
		return nil, err
	}
	var root http.Handler = smw.Chain(opts.Logger, s.errorAdapter, recorder)(mux)
	if cfg.Server.TrustProxy {
		root = smw.ProxyHeaders(root)
	}
	s.handler = root
	return s, nil
}

// Handler returns the fully wrapped root handler.
func (s *Server) Handler() http.Handler { return s.handler }

// Start binds the configured address and serves in the background. Binding happens
// before Start returns so port conflicts surface as an error here.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return foundationerrors.ServerError("server already started").Build()
	}

	addr := s.cfg.Server.Addr()
	lc := net.ListenConfig{}
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return foundationerrors.WrapError(err, foundationerrors.CategoryServer, "http startup failed").
			WithContext("addr", addr).
			Fatal().
			Build()
	}

	s.listener = ln
	s.done = make(chan struct{})
	s.srv = &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
	}

	go func(srv *http.Server, done chan struct{}) {
		defer close(done)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("HTTP server error", logfields.Error(err))
		}
	}(s.srv, s.done)

	s.logger.Info("HTTP server started", logfields.Addr(ln.Addr().String()))
	return nil
}

// Addr returns the bound address, or "" before Start.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop gracefully shuts down the server.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	srv, done := s.srv, s.done
	s.mu.Unlock()
	if srv == nil {
		return nil
	}

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	<-done
	s.logger.Info("HTTP server stopped")
	return nil
}
