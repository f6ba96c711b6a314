package tui

import (
	"log/slog"

	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// OutputFormat controls how the finished sketch is serialized.
type OutputFormat string

const (
	// OutputFormatJSON emits the shape list as application/json.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatSVG emits the drawn shapes as a standalone SVG document.
	OutputFormatSVG OutputFormat = "svg"
	// OutputFormatPrettyText emits one line per shape.
	OutputFormatPrettyText OutputFormat = "pretty"
)

// Theme captures optional prefixes the session applies to its messages.
type Theme struct {
	InfoPrefix  string
	ErrorPrefix string
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithOutputFormat selects the output serialization format.
func WithOutputFormat(format OutputFormat) Option {
	return func(r *Renderer) {
		if format != "" {
			r.outputFormat = format
		}
	}
}

// WithModes sets the drawing modes offered by the session.
func WithModes(registry *sketchpad.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.modes = registry
		}
	}
}

// WithBackground calibrates the session from a background payload (SVG or
// raster) instead of the component's configured size.
func WithBackground(data []byte) Option {
	return func(r *Renderer) {
		r.background = data
	}
}

// WithLogger forwards a logger to the session widget.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}
