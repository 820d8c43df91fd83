package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/marzneshin/docsite/internal/config"
	"github.com/marzneshin/docsite/internal/docs"
	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/metrics"
	"github.com/marzneshin/docsite/internal/server/views"
)

// Deps are the collaborators of Handlers. Recorder and Logger are optional.
type Deps struct {
	Config     *config.Config
	Service    *docs.Service
	Translator i18n.Translator
	Views      *views.Views
	Recorder   metrics.Recorder
	Logger     *slog.Logger
}

// Handlers serves every route of the site.
type Handlers struct {
	cfg          *config.Config
	svc          *docs.Service
	translator   i18n.Translator
	views        *views.Views
	recorder     metrics.Recorder
	logger       *slog.Logger
	errorAdapter *foundationerrors.HTTPErrorAdapter
	startTime    time.Time
}

// New wires Handlers from deps.
func New(deps Deps) *Handlers {
	h := &Handlers{
		cfg:        deps.Config,
		svc:        deps.Service,
		translator: deps.Translator,
		views:      deps.Views,
		recorder:   deps.Recorder,
		logger:     deps.Logger,
		startTime:  time.Now(),
	}
	if h.recorder == nil {
		h.recorder = metrics.NoopRecorder{}
	}
	if h.logger == nil {
		h.logger = slog.Default()
	}
	h.errorAdapter = foundationerrors.NewHTTPErrorAdapter(h.logger)
	return h
}

// language resolves the display language of r. A valid ?lang= value is also persisted
// in the language cookie so later requests keep it.
func (h *Handlers) language(w http.ResponseWriter, r *http.Request) i18n.Language {
	query := r.URL.Query().Get("lang")
	var cookie string
	if c, err := r.Cookie(h.cfg.Session.CookieName); err == nil {
		cookie = c.Value
	}
	var accept string
	if h.cfg.Session.Negotiate {
		accept = r.Header.Get("Accept-Language")
	}

	lang := i18n.Resolve(query, cookie, accept)
	if l, ok := i18n.Parse(query); ok && l.String() != cookie {
		h.setLanguageCookie(w, r, l)
	}
	h.recorder.IncLanguage(lang.String())
	return lang
}

func (h *Handlers) setLanguageCookie(w http.ResponseWriter, r *http.Request, lang i18n.Language) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   int(h.cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil || r.URL.Scheme == "https",
		SameSite: http.SameSiteLaxMode,
	})
}

// pageData builds the template root for lang.
func (h *Handlers) pageData(r *http.Request, lang i18n.Language, title string, body any) views.PageData {
	other := i18n.Persian
	if lang == i18n.Persian {
		other = i18n.English
	}
	return views.PageData{
		Lang:  lang,
		Other: other,
		T:     func(key string) string { return h.translator.Text(lang, key) },
		Site:  views.Site{Title: h.cfg.Site.Title, GitHubURL: h.cfg.Site.GitHubURL},
		Title: title,
		Path:  r.URL.Path,
		Body:  body,
	}
}
