package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	foundationerrors "github.com/marzneshin/docsite/internal/foundation/errors"
	"github.com/marzneshin/docsite/internal/logfields"
)

const jsonContentType = "application/json; charset=utf-8"

// respondJSON encodes v fully before writing anything, so an encode failure still
// produces a clean 500. ?pretty=1 indents the output.
func (h *Handlers) respondJSON(w http.ResponseWriter, r *http.Request, status int, v any, what string) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if pretty(r) {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		h.errorAdapter.WriteErrorResponse(w, r,
			foundationerrors.WrapError(err, foundationerrors.CategoryInternal, "failed to encode "+what).Build())
		return
	}

	w.Header().Set("Content-Type", jsonContentType)
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Warn("Failed writing JSON response", slog.String("response", what), logfields.Error(err))
	}
}

func pretty(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.URL.Query().Get("pretty") {
	case "1", "true":
		return true
	}
	return false
}
