// Package tui draws sketches from the terminal. Each drawing mode is driven
// by point prompts against a headless widget, so the shapes it produces are
// the same records the browser component would persist.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad/modes"
)

// Name identifies the renderer in a render.Registry.
const Name = "tui"

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	modes        *sketchpad.Registry
	background   []byte
	logger       *slog.Logger
	theme        Theme
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a TUI renderer with defaults (survey driver, built-in
// modes, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver:       NewSurveyDriver(nil),
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	switch r.outputFormat {
	case OutputFormatJSON, OutputFormatSVG, OutputFormatPrettyText:
	default:
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	if r.modes == nil {
		r.modes = modes.NewRegistry()
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return Name
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatSVG:
		return "image/svg+xml"
	case OutputFormatPrettyText:
		return "text/plain"
	default:
		return "application/json"
	}
}

// Render runs the session until the user picks "Done" and serializes the
// sketch. The starting value comes from opts.Values keyed by field name,
// falling back to field.Value.
func (r *Renderer) Render(ctx context.Context, field model.Field, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is nil")
	}

	component, err := config.FromField(field)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	widgetOptions := append(component.WidgetOptions(),
		sketchpad.WithRegistry(r.modes),
		sketchpad.WithTranslator(opts.Translator, opts.Locale),
		sketchpad.WithMissingTranslationHandler(opts.OnMissing),
	)
	if r.logger != nil {
		widgetOptions = append(widgetOptions, sketchpad.WithLogger(r.logger))
	}
	widget, err := sketchpad.New(widgetOptions...)
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	defer widget.Close()

	if err := widget.Attach(sketchpad.Elements{Surface: sketchpad.NewSVGSurface()}); err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}

	s := &session{
		driver: r.driver,
		widget: widget,
		t:      opts.Localizer(),
		theme:  r.theme,
	}
	if err := s.calibrate(ctx, component, r.background); err != nil {
		return nil, err
	}

	value := opts.Values[field.Name]
	if value == nil {
		value = field.Value
	}
	initial, err := sketchpad.DecodeShapes(value)
	if err != nil {
		return nil, fmt.Errorf("tui: initial value: %w", err)
	}
	if len(initial) > 0 {
		if err := widget.SetValue(initial); err != nil {
			return nil, fmt.Errorf("tui: initial value: %w", err)
		}
	}

	if err := s.run(ctx); err != nil {
		return nil, err
	}
	return r.serialize(widget)
}

func (r *Renderer) serialize(widget *sketchpad.Widget) ([]byte, error) {
	shapes := widget.Value()
	if shapes == nil {
		shapes = []sketchpad.Shape{}
	}

	switch r.outputFormat {
	case OutputFormatSVG:
		markup, err := widget.SVG()
		if err != nil {
			return nil, fmt.Errorf("tui: %w", err)
		}
		return []byte(markup), nil
	case OutputFormatPrettyText:
		return []byte(prettyShapes(shapes)), nil
	default:
		data, err := json.Marshal(shapes)
		if err != nil {
			return nil, fmt.Errorf("tui: encode value: %w", err)
		}
		return data, nil
	}
}

func prettyShapes(shapes []sketchpad.Shape) string {
	var b strings.Builder
	for idx, shape := range shapes {
		fmt.Fprintf(&b, "%d. %s", idx+1, shape.Mode)
		for _, key := range slices.Sorted(maps.Keys(shape.Fields)) {
			fmt.Fprintf(&b, " %s=%v", key, shape.Fields[key])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
