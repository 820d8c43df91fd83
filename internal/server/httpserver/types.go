package httpserver

import (
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/server/views"
)

// Options configures server wiring. Only Service is required.
type Options struct {
	Service    *docs.Service
	Translator i18n.Translator
	Views      *views.Views
	Logger     *slog.Logger

	// Registry receives the site metrics when monitoring is enabled. A nil registry
	// gets a private one.
	Registry *prom.Registry
}
