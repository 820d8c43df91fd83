package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marzneshin/docsite/internal/config"
	"github.com/marzneshin/docsite/internal/docs"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/server/responses"
	"github.com/marzneshin/docsite/internal/server/views"
)

type fixture struct {
	h    *Handlers
	mux  *http.ServeMux
	cfg  *config.Config
	root string
}

func newFixture(t *testing.T, files map[string]string) *fixture {
	t.Helper()
	root := t.TempDir()
	for slug, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, slug+docs.FileExt), []byte(content), 0o600))
	}

	cfg := config.Default()
	cfg.Content.Root = root
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v, err := views.New()
	require.NoError(t, err)

	cat := i18n.DefaultCatalog()
	svc := docs.NewService(docs.NewLoader(root, nil, logger), cat, docs.WithLogger(logger))
	h := New(Deps{Config: cfg, Service: svc, Translator: cat, Views: v, Logger: logger})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.HandleHome)
	mux.HandleFunc("GET /docs", h.HandleDocsIndex)
	mux.HandleFunc("GET /docs/{slug}", h.HandleDocPage)
	mux.HandleFunc("GET /search", h.HandleSearch)
	mux.HandleFunc("GET /api/nav", h.HandleNav)
	mux.HandleFunc("GET /set-language/{code}", h.HandleSetLanguage)
	mux.HandleFunc("GET /health", h.HandleHealthCheck)
	mux.HandleFunc("/", h.HandleNotFound)
	return &fixture{h: h, mux: mux, cfg: cfg, root: root}
}

func (f *fixture) get(t *testing.T, target string, mods ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, m := range mods {
		m(req)
	}
	w := httptest.NewRecorder()
	f.mux.ServeHTTP(w, req)
	return w
}

func scenarioFiles() map[string]string {
	return map[string]string{
		"about":        "# About\n\nMarzneshin is a proxy manager",
		"installation": "# Installation\n\nInstall via docker",
	}
}

func TestHandleSearch(t *testing.T) {
	f := newFixture(t, scenarioFiles())

	w := f.get(t, "/search?q=docker")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"title":"Installation","slug":"installation","section":"Getting Started"}]`, w.Body.String())

	w = f.get(t, "/search?q=")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = f.get(t, "/search")
	assert.JSONEq(t, `[]`, w.Body.String())

	w = f.get(t, "/search?q=docker&lang=fa")
	assert.JSONEq(t, `[{"title":"نصب","slug":"installation","section":"شروع کار"}]`, w.Body.String())
}

func TestHandleDocPage(t *testing.T) {
	f := newFixture(t, scenarioFiles())

	w := f.get(t, "/docs/about")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Marzneshin is a proxy manager")
	assert.Contains(t, body, `href="/docs/installation">Next: Installation</a>`)
	assert.Contains(t, body, `<html lang="en" dir="ltr">`)
}

func TestHandleDocPage_NotFound(t *testing.T) {
	f := newFixture(t, scenarioFiles())

	w := f.get(t, "/docs/overview")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Oops! Page Not Found")

	w = f.get(t, "/docs/overview?lang=fa")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `dir="rtl"`)
}

func TestHandleDocPage_ReadFailure(t *testing.T) {
	f := newFixture(t, scenarioFiles())
	require.NoError(t, os.Mkdir(filepath.Join(f.root, "overview.md"), 0o750))

	w := f.get(t, "/docs/overview")
	assert.Equal(t, http.StatusNotFound, w.Code, "read failures look like missing pages by default")

	f.cfg.Content.StrictErrors = true
	w = f.get(t, "/docs/overview")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something Went Wrong")
}

func TestLanguageQueryPersistsCookie(t *testing.T) {
	f := newFixture(t, scenarioFiles())

	w := f.get(t, "/docs?lang=fa")
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "docsite_lang", cookies[0].Name)
	assert.Equal(t, "fa", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	w = f.get(t, "/docs", func(r *http.Request) { r.AddCookie(cookies[0]) })
	assert.Contains(t, w.Body.String(), "عیب‌یابی")
	assert.Empty(t, w.Result().Cookies(), "cookie is only rewritten when the choice changes")

	w = f.get(t, "/docs?lang=xx")
	assert.Empty(t, w.Result().Cookies())
	assert.Contains(t, w.Body.String(), `lang="en"`)
}

func TestAcceptLanguageNegotiation(t *testing.T) {
	f := newFixture(t, scenarioFiles())
	withHeader := func(r *http.Request) { r.Header.Set("Accept-Language", "fa-IR,fa;q=0.9") }

	w := f.get(t, "/docs", withHeader)
	assert.Contains(t, w.Body.String(), `lang="en"`, "negotiation is off by default")

	f.cfg.Session.Negotiate = true
	w = f.get(t, "/docs", withHeader)
	assert.Contains(t, w.Body.String(), `lang="fa"`)
}

func TestHandleSetLanguage(t *testing.T) {
	f := newFixture(t, scenarioFiles())

	w := f.get(t, "/set-language/fa", func(r *http.Request) {
		r.Header.Set("Referer", "http://example.com/docs/about?x=1")
	})
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/docs/about?x=1", w.Header().Get("Location"))
	require.Len(t, w.Result().Cookies(), 1)
	assert.Equal(t, "fa", w.Result().Cookies()[0].Value)

	w = f.get(t, "/set-language/de")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Empty(t, w.Result().Cookies())
}

func TestRedirectTarget(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{"", "/"},
		{"http://example.com/docs", "/docs"},
		{"https://evil.example/phish", "/"},
		{"//evil.example/phish", "/"},
		{"javascript:alert(1)", "/"},
		{"/docs/about", "/docs/about"},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/set-language/en", nil)
		if tt.referer != "" {
			req.Header.Set("Referer", tt.referer)
		}
		assert.Equal(t, tt.want, redirectTarget(req), tt.referer)
	}
}

func TestHandleNav(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/api/nav?lang=fa")
	require.Equal(t, http.StatusOK, w.Code)
	var tree docs.Tree
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tree))
	require.Len(t, tree.Sections, 3)
	assert.Equal(t, "راهنما", tree.Sections[2].Name)
	assert.Equal(t, "troubleshooting", tree.Sections[2].Pages[0].Slug)
}

func TestHandleHome(t *testing.T) {
	f := newFixture(t, nil)

	w := f.get(t, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Why Choose Marzneshin?")
	assert.Contains(t, w.Body.String(), "Secure &amp; Reliable")

	w = f.get(t, "/no/such/route")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleHealthCheck(t *testing.T) {
	f := newFixture(t, scenarioFiles())

	w := f.get(t, "/health")
	require.Equal(t, http.StatusOK, w.Code)
	var health responses.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, responses.StatusOK, health.Status)
	assert.True(t, health.Content.Readable)
	assert.Equal(t, 2, health.Content.PageCount)

	require.NoError(t, os.RemoveAll(f.root))
	w = f.get(t, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
