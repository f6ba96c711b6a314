// Package export rasterises a sketch, its background and shapes, into PNG or
// PDF documents.
package export

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Document is everything needed to reproduce a sketch outside the widget.
type Document struct {
	// ViewBox is the logical drawing space; the output keeps its aspect.
	ViewBox geometry.Dimensions
	// BackgroundType selects how Background is decoded.
	BackgroundType background.ImageType
	// Background is an encoded raster image or calibrated SVG markup. It is
	// optional.
	Background []byte
	// Primitives are drawn in order on top of the background.
	Primitives []sketchpad.Primitive
}

// FromWidget captures a calibrated widget. raster is the original image
// payload for raster backgrounds; SVG backgrounds use the calibrated markup.
func FromWidget(w *sketchpad.Widget, raster []byte) (Document, error) {
	dims, ok := w.Dimensions()
	if !ok {
		return Document{}, fmt.Errorf("export: %w", sketchpad.ErrNotReady)
	}

	calibration := w.Calibration()
	doc := Document{
		ViewBox:        dims,
		BackgroundType: calibration.Type,
		Primitives:     w.Layers(),
	}
	switch calibration.Type {
	case background.ImageTypeSVG:
		doc.Background = []byte(calibration.Markup)
	default:
		doc.Background = append([]byte(nil), raster...)
	}
	return doc, nil
}

// FromShapes replays shapes through a registry, for values loaded from
// storage without a live widget.
func FromShapes(registry *sketchpad.Registry, viewBox geometry.Dimensions, shapes []sketchpad.Shape) (Document, error) {
	if !viewBox.Valid() {
		return Document{}, fmt.Errorf("export: viewBox %q has no area", viewBox.ViewBox())
	}
	doc := Document{ViewBox: viewBox}
	for idx, shape := range shapes {
		if err := registry.Validate(shape); err != nil {
			return Document{}, &sketchpad.ValueError{Index: idx, Mode: shape.Mode, Err: err}
		}
		primitives, err := registry.Replay(shape)
		if err != nil {
			return Document{}, &sketchpad.ValueError{Index: idx, Mode: shape.Mode, Err: err}
		}
		doc.Primitives = append(doc.Primitives, primitives...)
	}
	return doc, nil
}

// WithBackground attaches a background payload, detecting SVG markup.
func (d Document) WithBackground(data []byte) Document {
	d.Background = data
	if background.IsSVG(data) {
		d.BackgroundType = background.ImageTypeSVG
	} else {
		d.BackgroundType = background.ImageTypeRaster
	}
	return d
}

// SVG renders the shapes as a standalone SVG document without the
// background.
func (d Document) SVG() string {
	return sketchpad.RenderSVG(d.ViewBox, "", d.Primitives)
}

// parseColour accepts hex notation (#rgb, #rrggbb), rgb()/rgba() functional
// notation as colour pickers store it, and SVG colour keywords. ok is false
// for "none", empty, fully transparent and unknown values. The alpha channel
// is not premultiplied.
func parseColour(raw string) (color.RGBA, bool) {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" || raw == "none" || raw == "transparent" {
		return color.RGBA{}, false
	}
	if strings.HasPrefix(raw, "rgb") {
		return parseRGBFunc(raw)
	}
	if strings.HasPrefix(raw, "#") {
		c, err := colorful.Hex(raw)
		if err != nil {
			return color.RGBA{}, false
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, true
	}
	c, ok := colornames.Map[raw]
	return c, ok
}

// parseRGBFunc reads rgb(r,g,b) and rgba(r,g,b,a). Channels are 0-255 or
// percentages; alpha is 0-1 or a percentage.
func parseRGBFunc(raw string) (color.RGBA, bool) {
	open := strings.IndexByte(raw, '(')
	if open < 0 || !strings.HasSuffix(raw, ")") {
		return color.RGBA{}, false
	}
	name := strings.TrimSpace(raw[:open])
	parts := strings.FieldsFunc(raw[open+1:len(raw)-1], func(r rune) bool {
		return r == ',' || r == ' ' || r == '/'
	})
	if (name != "rgb" && name != "rgba") || (len(parts) != 3 && len(parts) != 4) {
		return color.RGBA{}, false
	}

	var channels [3]uint8
	for i := range channels {
		v, ok := parseComponent(parts[i], 255)
		if !ok {
			return color.RGBA{}, false
		}
		channels[i] = uint8(math.Round(v))
	}
	alpha := 1.0
	if len(parts) == 4 {
		v, ok := parseComponent(parts[3], 1)
		if !ok {
			return color.RGBA{}, false
		}
		alpha = v
	}
	if alpha <= 0 {
		return color.RGBA{}, false
	}
	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: uint8(math.Round(alpha * 0xff))}, true
}

// parseComponent reads a number or percentage and clamps it to [0, limit].
func parseComponent(raw string, limit float64) (float64, bool) {
	raw = strings.TrimSpace(raw)
	scale := 1.0
	if strings.HasSuffix(raw, "%") {
		raw = strings.TrimSuffix(raw, "%")
		scale = limit / 100
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return min(max(v*scale, 0), limit), true
}
