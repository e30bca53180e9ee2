package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed locales/*.json
var localeFiles embed.FS

// Bundle holds the translated storefront strings, one flat map per locale.
type Bundle struct {
	defaultLocale string
	messages      map[string]map[string]string
}

func Load(defaultLocale string) (*Bundle, error) {

	entries, err := fs.ReadDir(localeFiles, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read locale bundles: %w", err)
	}

	bundle := &Bundle{
		defaultLocale: defaultLocale,
		messages:      make(map[string]map[string]string, len(entries)),
	}

	for _, entry := range entries {
		locale := strings.TrimSuffix(entry.Name(), ".json")

		data, err := localeFiles.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", locale, err)
		}

		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", locale, err)
		}

		bundle.messages[locale] = messages
	}

	if _, ok := bundle.messages[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q has no bundle", defaultLocale)
	}

	return bundle, nil
}

func (b *Bundle) Supports(locale string) bool {
	_, ok := b.messages[locale]
	return ok
}

// T looks up key for the locale, falling back to the default locale and then
// to the key itself so a missing translation never blanks the UI.
func (b *Bundle) T(locale, key string) string {
	if messages, ok := b.messages[locale]; ok {
		if msg, ok := messages[key]; ok {
			return msg
		}
	}

	if msg, ok := b.messages[b.defaultLocale][key]; ok {
		return msg
	}

	return key
}

// Messages returns the full bundle for a locale, for clients that hydrate
// their own string tables.
func (b *Bundle) Messages(locale string) map[string]string {
	if messages, ok := b.messages[locale]; ok {
		return messages
	}

	return b.messages[b.defaultLocale]
}
