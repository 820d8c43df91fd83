package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.IncPageView("about", PageFound)
	pr.IncPageView("about", PageFound)
	pr.IncPageView("missing", PageNotFound)
	pr.ObserveSearch(3, 2*time.Millisecond)
	pr.IncLanguage("fa")
	pr.ObserveHTTPRequest("GET /docs/{slug}", http.StatusOK, 5*time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(pr.pageViews.WithLabelValues("about", "found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.pageViews.WithLabelValues("missing", "not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.searches), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.languages.WithLabelValues("fa")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.requests.WithLabelValues("GET /docs/{slug}", "200")), 0)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}

func TestPrometheusRecorder_NilSafe(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncPageView("about", PageFound)
		pr.ObserveSearch(0, 0)
		pr.IncLanguage("en")
		pr.ObserveHTTPRequest("x", 200, 0)
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncLanguage("en")

	rec := httptest.NewRecorder()
	HTTPHandler(reg, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `docsite_language_requests_total{lang="en"} 1`), body)
}
