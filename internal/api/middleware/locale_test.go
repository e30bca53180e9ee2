package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/casafurnish/storefront-gateway/internal/api/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocaleMiddleware(t *testing.T) {
	m := middleware.NewLocaleMiddleware("en", []string{"en", "fr"})

	newProbe := func() (http.Handler, *string, *string) {
		var gotPath, gotLocale string

		handler := m.Resolve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotLocale = middleware.LocaleFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

		return handler, &gotPath, &gotLocale
	}

	t.Run("Supported prefix selects the locale and is stripped", func(t *testing.T) {
		handler, gotPath, gotLocale := newProbe()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fr/api/v1/products", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/api/v1/products", *gotPath)
		assert.Equal(t, "fr", *gotLocale)
	})

	t.Run("Unknown two-letter prefix is a 404", func(t *testing.T) {
		handler, _, _ := newProbe()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/de/api/v1/products", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Unprefixed path falls back to the default locale", func(t *testing.T) {
		handler, gotPath, gotLocale := newProbe()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "/api/v1/products", *gotPath)
		assert.Equal(t, "en", *gotLocale)
	})
}
