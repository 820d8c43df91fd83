package metrics

import "time"

// PageResult labels the outcome of a documentation page request.
type PageResult string

const (
	PageFound    PageResult = "found"
	PageNotFound PageResult = "not_found"
	PageError    PageResult = "error"
)

// Recorder defines observability hooks for page views, searches and HTTP traffic.
type Recorder interface {
	IncPageView(slug string, result PageResult)
	ObserveSearch(results int, d time.Duration)
	IncLanguage(lang string)
	ObserveHTTPRequest(route string, status int, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncPageView(string, PageResult)                {}
func (NoopRecorder) ObserveSearch(int, time.Duration)              {}
func (NoopRecorder) IncLanguage(string)                            {}
func (NoopRecorder) ObserveHTTPRequest(string, int, time.Duration) {}
