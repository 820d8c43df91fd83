// Package docs implements documentation navigation, page resolution and search over a
// directory of markdown files.
//
// Everything here is request scoped: the navigation tree is rebuilt and files are
// re-read on every call, so a Service holds no mutable state and can be shared freely.
package docs

import (
	"log/slog"

	"github.com/marzneshin/docsite/internal/i18n"
)

// Service composes the navigation model with the content loader.
type Service struct {
	loader     *Loader
	translator i18n.Translator
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewService wires a Service.
func NewService(loader *Loader, tr i18n.Translator, opts ...Option) *Service {
	s := &Service{loader: loader, translator: tr, logger: slog.Default()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Loader exposes the underlying content loader.
func (s *Service) Loader() *Loader { return s.loader }

// Tree returns the navigation tree for lang.
func (s *Service) Tree(lang i18n.Language) Tree {
	return BuildTree(lang, s.translator)
}
