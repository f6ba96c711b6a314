package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/export"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

// Format selects the export encoding.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// ContentType reports the MIME type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/svg+xml"
	}
}

// ExportRequest describes a stored sketch to rasterise.
type ExportRequest struct {
	Component config.Component

	// Value is the stored sketch: a []sketchpad.Shape or its JSON form.
	Value any

	Format Format

	// Background overrides loading the component's imageUrl.
	Background []byte

	// Scale is output pixels per logical unit for PNG. Defaults to 1.
	Scale float64
}

// Export replays the value over the component's background. The drawing
// space is the configured width and height when both are set, otherwise the
// background's calibrated size. SVG output carries the shapes only.
func (o *Orchestrator) Export(ctx context.Context, req ExportRequest) ([]byte, error) {
	if err := o.ready(ctx); err != nil {
		return nil, err
	}

	component, err := resolveComponent(req.Component)
	if err != nil {
		return nil, err
	}
	shapes, err := o.decodeValue(req.Value)
	if err != nil {
		return nil, err
	}

	payload := req.Background
	if len(payload) == 0 {
		if payload, err = o.loadBackground(ctx, component); err != nil {
			return nil, err
		}
	}

	var calibration background.Calibration
	if len(payload) > 0 {
		if calibration, err = background.Calibrate(payload); err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}
	viewBox := calibration.Dimensions
	if !component.UseBackgroundDimensions() {
		viewBox = geometry.Dimensions{Width: float64(component.Width), Height: float64(component.Height)}
	}
	if !viewBox.Valid() {
		return nil, fmt.Errorf("orchestrator: component %q has neither a size nor a background", component.Key)
	}

	doc, err := export.FromShapes(o.modes, viewBox, shapes)
	if err != nil {
		return nil, err
	}
	if len(payload) > 0 {
		doc.BackgroundType = calibration.Type
		doc.Background = payload
		if calibration.Type == background.ImageTypeSVG {
			markup := calibration.Markup
			if o.sanitize {
				markup = background.Sanitize(markup)
			}
			doc.Background = []byte(markup)
		}
	}

	o.logger.Debug("exporting component",
		slog.String("component", component.Key),
		slog.String("format", string(req.Format)),
		slog.Int("shapes", len(shapes)))

	var buf bytes.Buffer
	switch req.Format {
	case FormatSVG, "":
		buf.WriteString(doc.SVG())
	case FormatPNG:
		err = doc.PNG(&buf, export.PNGOptions{Scale: req.Scale})
	case FormatPDF:
		err = doc.PDF(&buf)
	default:
		return nil, fmt.Errorf("orchestrator: unsupported export format %q", req.Format)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Orchestrator) loadBackground(ctx context.Context, component config.Component) ([]byte, error) {
	src, ok := component.BackgroundSource()
	if !ok {
		return nil, nil
	}
	if o.loader == nil {
		return nil, fmt.Errorf("orchestrator: background loader is nil")
	}
	doc, err := o.loader.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: load background: %w", err)
	}
	return doc.Raw(), nil
}
