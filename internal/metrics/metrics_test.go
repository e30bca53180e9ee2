package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/products/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("DELETE /api/v1/cart/items/{productId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := Middleware(mux)

	t.Run("Path label is the registered pattern, not the request path", func(t *testing.T) {
		// Arrange
		before := testutil.ToFloat64(requestsTotal.WithLabelValues("200", http.MethodGet, "/api/v1/products/{id}"))

		// Act: two requests for distinct products land on one label value.
		for _, target := range []string{"/api/v1/products/abc123", "/api/v1/products/def456"} {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
			require.Equal(t, http.StatusOK, rec.Code)
		}

		// Assert
		after := testutil.ToFloat64(requestsTotal.WithLabelValues("200", http.MethodGet, "/api/v1/products/{id}"))
		assert.Equal(t, before+2, after)

		raw := testutil.ToFloat64(requestsTotal.WithLabelValues("200", http.MethodGet, "/api/v1/products/abc123"))
		assert.Zero(t, raw)
	})

	t.Run("Named path parameters collapse regardless of name", func(t *testing.T) {
		// Arrange
		before := testutil.ToFloat64(requestsTotal.WithLabelValues("200", http.MethodDelete, "/api/v1/cart/items/{productId}"))

		// Act
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/cart/items/p42", nil))

		// Assert
		require.Equal(t, http.StatusOK, rec.Code)
		after := testutil.ToFloat64(requestsTotal.WithLabelValues("200", http.MethodDelete, "/api/v1/cart/items/{productId}"))
		assert.Equal(t, before+1, after)
	})

	t.Run("Unrouted requests share one label", func(t *testing.T) {
		// Arrange
		before := testutil.ToFloat64(requestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))

		// Act
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

		// Assert
		require.Equal(t, http.StatusNotFound, rec.Code)
		after := testutil.ToFloat64(requestsTotal.WithLabelValues("404", http.MethodGet, "unmatched"))
		assert.Equal(t, before+1, after)
	})
}

func TestRouteLabel(t *testing.T) {
	assert.Equal(t, "/api/v1/products/{id}", routeLabel("GET /api/v1/products/{id}"))
	assert.Equal(t, "/health", routeLabel("/health"))
	assert.Equal(t, "unmatched", routeLabel(""))
}
