package handlers

import (
	"net/http"
	"time"
)

// HandleSearch answers GET /search?q= with a JSON array of at most ten matches. An empty
// query yields [].
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	start := time.Now()
	results := h.svc.Search(r.URL.Query().Get("q"), lang)
	h.recorder.ObserveSearch(len(results), time.Since(start))

	h.respondJSON(w, r, http.StatusOK, results, "search results")
}

// HandleNav returns the navigation tree for the request language.
func (h *Handlers) HandleNav(w http.ResponseWriter, r *http.Request) {
	lang := h.language(w, r)
	h.respondJSON(w, r, http.StatusOK, h.svc.Tree(lang), "navigation tree")
}
