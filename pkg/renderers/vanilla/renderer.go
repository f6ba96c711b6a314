// Package vanilla renders the sketchpad component as plain HTML: the toolbar,
// the background and canvas containers and the hidden value input, plus the
// stylesheet and bootstrap script the markup relies on.
package vanilla

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/render"
	rendertemplate "github.com/goliatone/go-sketchpad/pkg/render/template"
	gotemplate "github.com/goliatone/go-sketchpad/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla/components"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Name is the renderer name registered in render.Registry.
const Name = "html"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	components       *components.Registry
	modes            *sketchpad.Registry
	chrome           ChromeClasses
	omitAssets       bool
	templateFuncs    map[string]any
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTemplateTranslator registers the translate and current_locale helpers
// on the built-in template engine so theme partials can localise their own
// strings. It has no effect when WithTemplateRenderer is used.
func WithTemplateTranslator(translator render.Translator, i18n render.TemplateI18nConfig) Option {
	return func(cfg *config) {
		cfg.templateFuncs = render.TemplateI18nFuncs(translator, i18n)
	}
}

// WithComponents replaces the default component registry.
func WithComponents(registry *components.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.components = registry
		}
	}
}

// WithModes sets the mode registry the toolbar is built from. It should
// match the registry the drawing widget runs with.
func WithModes(registry *sketchpad.Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.modes = registry
		}
	}
}

// WithChromeClasses overrides the wrapper classes.
func WithChromeClasses(classes ChromeClasses) Option {
	return func(cfg *config) {
		cfg.chrome = classes
	}
}

// WithoutAssets skips the stylesheet and script tags, for hosts that bundle
// them separately.
func WithoutAssets() Option {
	return func(cfg *config) {
		cfg.omitAssets = true
	}
}

// Renderer renders component fields to HTML.
type Renderer struct {
	templates  rendertemplate.TemplateRenderer
	components *components.Registry
	modes      *sketchpad.Registry
	chrome     ChromeClasses
	omitAssets bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if cfg.components == nil {
		cfg.components = components.NewDefaultRegistry()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []gotemplate.Option{
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		}
		if len(cfg.templateFuncs) > 0 {
			engineOptions = append(engineOptions, gotemplate.WithTemplateFunc(cfg.templateFuncs))
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:  renderer,
		components: cfg.components,
		modes:      cfg.modes,
		chrome:     cfg.chrome.withDefaults(),
		omitAssets: cfg.omitAssets,
	}, nil
}

func (r *Renderer) Name() string {
	return Name
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the field's component wrapped in its label and description.
// The component value comes from options.Values keyed by field name, falling
// back to field.Value.
func (r *Renderer) Render(_ context.Context, field model.Field, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	componentName := resolveComponentName(field)
	descriptor, ok := r.components.Descriptor(componentName)
	if !ok {
		return nil, fmt.Errorf("vanilla renderer: component %q not registered for field %q", componentName, field.Name)
	}

	themeCtx := buildThemeContext(options.Theme)
	data := components.ComponentData{
		Template:      r.templates,
		Value:         options.Values[field.Name],
		ThemePartials: themeCtx.Partials,
		ThemeTokens:   themeCtx.Tokens,
		Localizer:     options.Localizer(),
		IconClass:     options.IconClass,
		HiddenFields:  options.HiddenFields,
		Modes:         r.modes,
	}

	var control bytes.Buffer
	if err := descriptor.Renderer(&control, field, data); err != nil {
		return nil, fmt.Errorf("vanilla renderer: render component %q for field %q: %w", componentName, field.Name, err)
	}

	var out strings.Builder
	if !r.omitAssets {
		r.writeStylesheets(&out, descriptor.Stylesheets, themeCtx)
	}
	r.writeField(&out, field, control.String(), themeCtx)
	if !r.omitAssets {
		writeScripts(&out, descriptor.Scripts)
	}
	return []byte(out.String()), nil
}

func (r *Renderer) writeField(out *strings.Builder, field model.Field, control string, themeCtx rendererTheme) {
	out.WriteString(`<div class="`)
	out.WriteString(html.EscapeString(r.chrome.Field))
	if extra := sanitizeClassList(field.Hint("cssClass")); extra != "" {
		out.WriteByte(' ')
		out.WriteString(html.EscapeString(extra))
	}
	out.WriteString(`"`)
	if style := themeCtx.inlineStyle(); style != "" {
		out.WriteString(` style="`)
		out.WriteString(html.EscapeString(style))
		out.WriteString(`"`)
	}
	if themeCtx.Name != "" {
		out.WriteString(` data-theme="`)
		out.WriteString(html.EscapeString(themeCtx.Name))
		out.WriteString(`"`)
	}
	out.WriteString(`>`)

	if label := strings.TrimSpace(field.Label); label != "" && field.Hint("hideLabel") != "true" {
		out.WriteString(`<div class="`)
		out.WriteString(html.EscapeString(r.chrome.Label))
		out.WriteString(`" id="`)
		out.WriteString(html.EscapeString(componentLabelID(field.Name)))
		out.WriteString(`">`)
		out.WriteString(html.EscapeString(label))
		out.WriteString(`</div>`)
	}
	if desc := strings.TrimSpace(field.Description); desc != "" {
		out.WriteString(`<p class="`)
		out.WriteString(html.EscapeString(r.chrome.Description))
		out.WriteString(`">`)
		out.WriteString(html.EscapeString(desc))
		out.WriteString(`</p>`)
	}

	out.WriteString(control)
	out.WriteString(`</div>`)
}

// writeStylesheets links theme-provided assets and inlines the embedded
// stylesheet otherwise.
func (r *Renderer) writeStylesheets(out *strings.Builder, names []string, themeCtx rendererTheme) {
	for _, name := range names {
		if href := themeCtx.assetURL(name); href != "" {
			out.WriteString(`<link rel="stylesheet" href="`)
			out.WriteString(html.EscapeString(href))
			out.WriteString(`">`)
			continue
		}
		if css := embeddedStylesheet(name); css != "" {
			out.WriteString("<style>\n")
			out.WriteString(css)
			out.WriteString("</style>")
		}
	}
}

func writeScripts(out *strings.Builder, scripts []components.Script) {
	for _, script := range scripts {
		out.WriteString(`<script`)
		switch {
		case script.Module:
			out.WriteString(` type="module"`)
		case script.Type != "":
			out.WriteString(` type="`)
			out.WriteString(html.EscapeString(script.Type))
			out.WriteString(`"`)
		}
		if script.Src != "" {
			out.WriteString(` src="`)
			out.WriteString(html.EscapeString(script.Src))
			out.WriteString(`"`)
		}
		if script.Async {
			out.WriteString(` async`)
		}
		if script.Defer {
			out.WriteString(` defer`)
		}
		for _, key := range sortedKeys(script.Attrs) {
			out.WriteByte(' ')
			out.WriteString(html.EscapeString(key))
			out.WriteString(`="`)
			out.WriteString(html.EscapeString(script.Attrs[key]))
			out.WriteString(`"`)
		}
		out.WriteString(`>`)
		if script.Src == "" {
			out.WriteString(script.Inline)
		}
		out.WriteString(`</script>`)
	}
}
