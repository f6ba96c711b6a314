package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that component renderers use to
// customise their output.
type RenderOptions struct {
	// Locale and Translator feed the t(key) helper used for toolbar titles and
	// failure messages.
	Locale     string
	Translator Translator
	OnMissing  MissingTranslationHandler
	// Values pre-populates components keyed by field name. The sketchpad
	// component expects a []sketchpad.Shape or its JSON form.
	Values map[string]any
	// HiddenFields are emitted as hidden inputs next to the component (CSRF
	// tokens, versions).
	HiddenFields map[string]string
	// IconClass maps a toolbar icon name to the CSS classes of the host icon
	// set. Nil falls back to the renderer default.
	IconClass func(name string) string
	// Theme carries go-theme partial overrides and tokens.
	Theme *theme.RendererConfig
}

// Localizer returns the t(key) helper bound to the request locale.
func (o RenderOptions) Localizer() Localizer {
	return Localizer{Locale: o.Locale, Translator: o.Translator, OnMissing: o.OnMissing}
}
