// Package sketchpad is the entry point for rendering and exporting sketchpad
// components. It re-exports the orchestrator and widget constructors so most
// callers need a single import.
package sketchpad

import (
	"context"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/orchestrator"
	"github.com/goliatone/go-sketchpad/pkg/render"
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describes per-request data such as translations, hidden
// fields and theme configuration.
type RenderOptions = render.RenderOptions

// Request aliases orchestrator.Request.
type Request = orchestrator.Request

// ExportRequest aliases orchestrator.ExportRequest.
type ExportRequest = orchestrator.ExportRequest

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML renders the component and its stored value with the named
// renderer. It is the simplest entry point for callers that just want HTML
// output.
func GenerateHTML(ctx context.Context, component config.Component, value any, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Component: component,
		Value:     value,
		Renderer:  rendererName,
	})
}

// Export replays the stored value over the component background in the given
// format.
func Export(ctx context.Context, component config.Component, value any, format orchestrator.Format, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Export(ctx, orchestrator.ExportRequest{
		Component: component,
		Value:     value,
		Format:    format,
	})
}

// WithThemeSelector passes a go-theme selector through to the orchestrator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when deriving renderer
// configuration from a theme selection.
func WithThemeFallbacks(fallbacks map[string]string) orchestrator.Option {
	return orchestrator.WithThemeFallbacks(fallbacks)
}
