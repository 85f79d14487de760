package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/crucial707/blog-api/internal/metrics"
)

func TestPrometheus_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Prometheus)
	r.Route("/api/v1/post", func(r chi.Router) {
		r.Get("/{postID}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
	})

	routed := metrics.RequestTotal.WithLabelValues("GET", "/api/v1/post/{postID}", "404")
	unmatched := metrics.RequestTotal.WithLabelValues("GET", metrics.UnmatchedRoute, "404")
	routedBefore := testutil.ToFloat64(routed)
	unmatchedBefore := testutil.ToFloat64(unmatched)
	seriesBefore := testutil.CollectAndCount(metrics.RequestTotal)

	for _, path := range []string{"/api/v1/post/aaaa", "/api/v1/post/bbbb", "/nope/1", "/nope/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	if got := testutil.ToFloat64(routed); got != routedBefore+2 {
		t.Errorf("route series: got %v, want %v", got, routedBefore+2)
	}
	if got := testutil.ToFloat64(unmatched); got != unmatchedBefore+2 {
		t.Errorf("unmatched series: got %v, want %v", got, unmatchedBefore+2)
	}
	if got := testutil.CollectAndCount(metrics.RequestTotal); got != seriesBefore {
		t.Errorf("new series created for raw paths: %d -> %d", seriesBefore, got)
	}
}
