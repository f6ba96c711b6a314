package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-sketchpad/internal/background/loader"
	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad/modes"
)

const defaultRendererName = vanilla.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects the background loader used by Export.
func WithLoader(loader background.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithModes sets the mode registry used to validate values and replay them
// for export.
func WithModes(registry *sketchpad.Registry) Option {
	return func(o *Orchestrator) {
		o.modes = registry
	}
}

// WithThemeSelector resolves go-theme selections ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithThemeFallbacks replaces the partials used when a theme does not
// override them.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = maps.Clone(fallbacks)
	}
}

// WithSanitizer toggles SVG background sanitisation on export.
func WithSanitizer(enabled bool) Option {
	return func(o *Orchestrator) {
		o.sanitize = enabled
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates component configuration, stored values, themes
// and renderers. Missing dependencies fall back to the built-in
// implementations (HTML renderer, file loader, built-in modes).
type Orchestrator struct {
	loader          background.Loader
	registry        *render.Registry
	modes           *sketchpad.Registry
	defaultRenderer string
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	sanitize        bool
	logger          *slog.Logger
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		sanitize:        true,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a component to render.
type Request struct {
	// Component is the persisted component definition. Zero fields take
	// their defaults.
	Component config.Component

	// Value is the stored sketch: a []sketchpad.Shape or its JSON form. Nil
	// renders an empty sketch unless RenderOptions.Values already holds one.
	Value any

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant are passed to the theme selector, when one
	// is configured and RenderOptions.Theme is unset.
	ThemeName    string
	ThemeVariant string

	RenderOptions render.RenderOptions
}

// Generate validates the value against the registered modes and renders the
// component with the named renderer.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	component, err := resolveComponent(req.Component)
	if err != nil {
		return nil, err
	}
	field, err := component.Field(nil)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}

	options := req.RenderOptions
	if req.Value != nil {
		shapes, err := o.decodeValue(req.Value)
		if err != nil {
			return nil, err
		}
		values := maps.Clone(options.Values)
		if values == nil {
			values = make(map[string]any, 1)
		}
		values[field.Name] = shapes
		options.Values = values
	}

	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	o.logger.Debug("rendering component",
		slog.String("component", component.Key),
		slog.String("renderer", renderer.Name()))

	output, err := renderer.Render(ctx, field, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

func (o *Orchestrator) ready(ctx context.Context) error {
	if ctx == nil {
		return errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return o.initialiseErr
}

func resolveComponent(c config.Component) (config.Component, error) {
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return config.Component{}, fmt.Errorf("orchestrator: %w", err)
	}
	return c, nil
}

// decodeValue parses and validates a stored value. Records are checked
// against the mode schemas so a bad value fails before any output is made.
func (o *Orchestrator) decodeValue(value any) ([]sketchpad.Shape, error) {
	shapes, err := sketchpad.DecodeShapes(value)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: decode value: %w", err)
	}
	for idx, shape := range shapes {
		if err := o.modes.Validate(shape); err != nil {
			return nil, &sketchpad.ValueError{Index: idx, Mode: shape.Mode, Err: err}
		}
	}
	return shapes, nil
}

func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, nil
	}
	return vanilla.ThemeConfig(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if o.loader == nil {
		o.loader = internalLoader.New(background.NewLoaderOptions())
	}
	if o.modes == nil {
		o.modes = modes.NewRegistry()
	}
	if o.themeFallbacks == nil {
		o.themeFallbacks = vanilla.DefaultThemeFallbacks()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := vanilla.New(vanilla.WithModes(o.modes))
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}
