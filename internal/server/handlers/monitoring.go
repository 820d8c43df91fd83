package handlers

import (
	"net/http"
	"time"

	"github.com/marzneshin/docsite/internal/server/responses"
	"github.com/marzneshin/docsite/internal/version"
)

// HandleHealthCheck reports liveness and whether the content root can be listed. A
// missing content root degrades the status to 503.
func (h *Handlers) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	health := &responses.HealthResponse{
		Status:    responses.StatusOK,
		Timestamp: time.Now().UTC(),
		Version:   version.Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Content:   responses.ContentHealth{Root: h.svc.Loader().Root()},
	}

	status := http.StatusOK
	if files, err := h.svc.Loader().Files(); err == nil {
		health.Content.Readable = true
		health.Content.PageCount = len(files)
	} else {
		health.Status = responses.StatusDegraded
		status = http.StatusServiceUnavailable
	}

	h.respondJSON(w, r, status, health, "health status")
}
