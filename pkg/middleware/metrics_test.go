package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Metrics())
	r.Get("/api/services/{serviceID}/slots", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Two different IDs must land on the same series, keyed by the
	// route pattern rather than the raw path.
	for _, id := range []string{
		"0b7f5ab9-93a1-4f2e-8d43-6f0f5f2a9f11",
		"4fd2a7a5-2f9c-4a7e-9d18-3f7e8f6f1c22",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/services/"+id+"/slots", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	got := testutil.ToFloat64(httpRequestsTotal.WithLabelValues(
		http.MethodGet, "/api/services/{serviceID}/slots", "200",
	))
	assert.Equal(t, float64(2), got)
}
