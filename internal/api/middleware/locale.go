package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/casafurnish/storefront-gateway/internal/errors"
	"github.com/casafurnish/storefront-gateway/internal/utils/response"
)

type localeContextKey string

const LocaleContextKey = localeContextKey("locale")

type LocaleMiddleware struct {
	defaultLocale string
	supported     map[string]bool
}

func NewLocaleMiddleware(defaultLocale string, supported []string) *LocaleMiddleware {
	set := make(map[string]bool, len(supported))
	for _, l := range supported {
		set[l] = true
	}

	return &LocaleMiddleware{defaultLocale: defaultLocale, supported: set}
}

// Resolve strips a leading locale segment ("/en/...", "/fr/...") and records
// the choice in the context. A two-letter prefix that is not a supported
// locale is a not-found, matching the storefront's routing contract.
func (m *LocaleMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		locale := m.defaultLocale

		segment, rest := splitFirstSegment(r.URL.Path)
		if len(segment) == 2 {
			if !m.supported[segment] {
				response.Error(w, errors.NotFoundError("Unsupported locale: "+segment))
				return
			}

			locale = segment
			r.URL.Path = rest
		}

		ctx := context.WithValue(r.Context(), LocaleContextKey, locale)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func splitFirstSegment(path string) (string, string) {
	trimmed := strings.TrimPrefix(path, "/")

	idx := strings.IndexByte(trimmed, '/')
	if idx < 0 {
		return trimmed, "/"
	}

	return trimmed[:idx], "/" + trimmed[idx+1:]
}

func LocaleFromContext(ctx context.Context) string {
	if locale, ok := ctx.Value(LocaleContextKey).(string); ok {
		return locale
	}

	return "en"
}
