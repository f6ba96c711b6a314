package render

import (
	"errors"
	"strings"
)

// Translator resolves a message key for a locale. Implementations typically
// wrap a go-i18n bundle or a static catalogue; args are passed through for
// interpolation.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a plain function to Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate calls f.
func (f TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return f(locale, key, args...)
}

// MissingTranslationHandler decides what is shown when a key cannot be
// translated. params carries the call arguments; the default fallback text,
// when known, is passed as map[string]any{"default": fallback}.
type MissingTranslationHandler func(locale, key string, params []any, err error) string

// ErrMissingTranslator is reported to MissingTranslationHandler when no
// Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

func missingTranslationDefault(_ string, key string, params []any, _ error) string {
	for _, param := range params {
		values, ok := param.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// Translate resolves key through t, falling back to onMissing, then to
// fallback, then to the key itself.
func Translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	if t == nil {
		if onMissing != nil {
			return onMissing(locale, key, []any{map[string]any{"default": fallback}}, ErrMissingTranslator)
		}
		if strings.TrimSpace(fallback) != "" {
			return fallback
		}
		return key
	}

	result, err := t.Translate(locale, key)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}

	if onMissing != nil {
		return onMissing(locale, key, []any{map[string]any{"default": fallback}}, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}

// Localizer binds a translator to one locale and exposes the t(key) helper
// widgets and component renderers call for user-facing strings.
type Localizer struct {
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
}

// T translates key, returning fallback (or the key) when no translation exists.
func (l Localizer) T(key, fallback string) string {
	return Translate(l.Locale, key, fallback, l.Translator, l.OnMissing)
}
