// Package responses defines API response types used by the docsite HTTP handlers.
package responses

import "time"

// Health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// HealthResponse represents the health check API response.
type HealthResponse struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version"`
	Uptime    float64       `json:"uptime"`
	Content   ContentHealth `json:"content"`
}

// ContentHealth reports whether documentation sources are reachable.
type ContentHealth struct {
	Root      string `json:"root"`
	Readable  bool   `json:"readable"`
	PageCount int    `json:"page_count"`
}
