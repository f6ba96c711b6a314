package vanilla

import (
	"maps"
	"path"
	"slices"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla/components"
)

// DefaultThemeFallbacks lists the partials every theme configuration starts
// from before manifest templates are applied.
func DefaultThemeFallbacks() map[string]string {
	return map[string]string{
		components.PartialSketchpad: "templates/components/sketchpad.tmpl",
	}
}

// ThemeConfig derives renderer configuration from a go-theme selection.
// Partials start from fallbacks, then the manifest templates, then the
// variant templates. Variant tokens override manifest tokens and every token
// is exposed as a CSS custom property ("sketchpad.stroke" becomes
// "--sketchpad-stroke").
func ThemeConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant, hasVariant := manifest.Variants[selection.Variant]

	partials := maps.Clone(fallbacks)
	if partials == nil {
		partials = make(map[string]string)
	}
	maps.Copy(partials, manifest.Templates)
	tokens := maps.Clone(manifest.Tokens)
	if tokens == nil {
		tokens = make(map[string]string)
	}
	files := maps.Clone(manifest.Assets.Files)
	if files == nil {
		files = make(map[string]string)
	}
	prefix := manifest.Assets.Prefix
	if hasVariant {
		maps.Copy(partials, variant.Templates)
		maps.Copy(tokens, variant.Tokens)
		maps.Copy(files, variant.Assets.Files)
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}

	name := selection.Theme
	if name == "" {
		name = manifest.Name
	}
	return &theme.RendererConfig{
		Theme:    name,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if strings.Contains(file, "://") || strings.HasPrefix(file, "/") || prefix == "" {
				return file
			}
			return strings.TrimSuffix(prefix, "/") + "/" + path.Clean(file)
		},
	}
}

type rendererTheme struct {
	Name     string
	Variant  string
	Partials map[string]string
	Tokens   map[string]string
	CSSVars  map[string]string
	AssetURL func(string) string
}

func buildThemeContext(cfg *theme.RendererConfig) rendererTheme {
	if cfg == nil {
		return rendererTheme{}
	}
	return rendererTheme{
		Name:     cfg.Theme,
		Variant:  cfg.Variant,
		Partials: maps.Clone(cfg.Partials),
		Tokens:   maps.Clone(cfg.Tokens),
		CSSVars:  maps.Clone(cfg.CSSVars),
		AssetURL: cfg.AssetURL,
	}
}

func (t rendererTheme) assetURL(key string) string {
	if t.AssetURL == nil {
		return ""
	}
	return strings.TrimSpace(t.AssetURL(key))
}

// inlineStyle renders CSS variables as a style attribute value, sorted by
// name.
func (t rendererTheme) inlineStyle() string {
	if len(t.CSSVars) == 0 {
		return ""
	}
	parts := make([]string, 0, len(t.CSSVars))
	for _, key := range slices.Sorted(maps.Keys(t.CSSVars)) {
		parts = append(parts, key+": "+t.CSSVars[key])
	}
	return strings.Join(parts, "; ")
}
