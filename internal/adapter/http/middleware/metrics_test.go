package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMetricsLabelsByRoutePattern(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())

	r := chi.NewRouter()
	r.Use(m.Wrap)
	r.Get("/rest/bankslips/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/rest/bankslips/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/rest/bankslips/{id}", "404"))
	if got != 3 {
		t.Fatalf("expected 3 requests under the route pattern, got %v", got)
	}

	if n := testutil.CollectAndCount(m.requestsTotal); n != 1 {
		t.Fatalf("expected a single label set, got %d", n)
	}
}

func TestHTTPMetricsInFlightReturnsToZero(t *testing.T) {
	m := NewHTTPMetrics(prometheus.NewRegistry())

	var during float64
	handler := m.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		during = testutil.ToFloat64(m.requestsInFlight)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if during != 1 {
		t.Fatalf("expected 1 in-flight request during handling, got %v", during)
	}
	if after := testutil.ToFloat64(m.requestsInFlight); after != 0 {
		t.Fatalf("expected 0 in-flight requests after handling, got %v", after)
	}
}

func TestRoutePatternWithoutRouter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/anything", nil)
	if got := routePattern(req); got != unmatchedRoute {
		t.Fatalf("expected %q, got %q", unmatchedRoute, got)
	}
}
