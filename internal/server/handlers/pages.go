package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"

	"github.com/marzneshin/docsite/internal/docs"
	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/i18n"
	"github.com/marzneshin/docsite/internal/logfields"
	"github.com/marzneshin/docsite/internal/metrics"
	"github.com/marzneshin/docsite/internal/server/views"
)

// HandleHome renders the landing page.
func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	features := make([]views.Feature, 0, 6)
	for i := 1; i <= 6; i++ {
		features = append(features, views.Feature{
			Title: h.translator.Text(lang, featureKey(i, "title")),
			Desc:  h.translator.Text(lang, featureKey(i, "desc")),
		})
	}
	h.render(w, r, http.StatusOK, views.PageHome, h.pageData(r, lang, "", views.HomeBody{Features: features}))
}

func featureKey(i int, suffix string) string {
	return fmt.Sprintf("feature%d_%s", i, suffix)
}

// HandleDocsIndex renders the documentation landing page listing the navigation tree.
func (h *Handlers) HandleDocsIndex(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	body := views.DocsBody{Tree: h.svc.Tree(lang)}
	h.render(w, r, http.StatusOK, views.PageDocs, h.pageData(r, lang, h.translator.Text(lang, "docs_title"), body))
}

// HandleDocPage renders one documentation page with sidebar, TOC and prev/next links.
func (h *Handlers) HandleDocPage(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	slug := r.PathValue("slug")

	page, err := h.svc.Resolve(slug, lang)
	if err != nil {
		if docs.TreatAsNotFound(err, h.cfg.Content.StrictErrors) {
			h.recorder.IncPageView(slug, metrics.PageNotFound)
			h.renderNotFound(w, r, lang)
			return
		}
		h.recorder.IncPageView(slug, metrics.PageError)
		h.renderServerError(w, r, lang, err)
		return
	}

	h.recorder.IncPageView(slug, metrics.PageFound)
	body := views.DocPageBody{Page: page, Content: template.HTML(page.Content)} //nolint:gosec // rendered from local markdown
	h.render(w, r, http.StatusOK, views.PageDocPage, h.pageData(r, lang, page.Title, body))
}

// HandleNotFound is the fallback for unmatched routes.
func (h *Handlers) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	h.renderNotFound(w, r, h.language(w, r))
}

func (h *Handlers) renderNotFound(w http.ResponseWriter, r *http.Request, lang i18n.Language) {
	h.logger.Info("Page not found", logfields.Path(r.URL.Path), logfields.Lang(lang.String()))
	body := views.ErrorBody{
		Status:    http.StatusNotFound,
		TitleKey:  "error_404_title",
		DescKey:   "error_404_desc",
		HintKey:   "error_404_maybe",
		ActionKey: "error_go_home",
	}
	h.render(w, r, http.StatusNotFound, views.PageError, h.pageData(r, lang, h.translator.Text(lang, body.TitleKey), body))
}

func (h *Handlers) renderServerError(w http.ResponseWriter, r *http.Request, lang i18n.Language, cause error) {
	h.logger.Error("Server error", logfields.Path(r.URL.Path), logfields.Error(cause))
	body := views.ErrorBody{
		Status:    http.StatusInternalServerError,
		TitleKey:  "error_500_title",
		DescKey:   "error_500_desc",
		HintKey:   "error_500_not_fault",
		ActionKey: "error_try_again",
	}
	h.render(w, r, http.StatusInternalServerError, views.PageError, h.pageData(r, lang, h.translator.Text(lang, body.TitleKey), body))
}

// render writes page with status. Template failures become a JSON 500 since an HTML
// error page would go through the same broken renderer.
func (h *Handlers) render(w http.ResponseWriter, r *http.Request, status int, page string, data views.PageData) {
	var buf bytes.Buffer
	if err := h.views.Render(&buf, page, data); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r, foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to render page").
			WithContext("page", page).
			Build())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Error("failed writing HTML response body", logfields.Error(err))
	}
}
