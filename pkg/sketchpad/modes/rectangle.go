package modes

import (
	"math"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Rectangle draws an axis-aligned rectangle spanned by the drag.
type Rectangle struct{}

func (Rectangle) Name() string { return NameRectangle }

func (Rectangle) Cursor() sketchpad.Cursor {
	return sketchpad.Cursor{Hover: "crosshair"}
}

func (Rectangle) Button() sketchpad.Button {
	return sketchpad.Button{Title: "Rectangle", Icon: "square-o"}
}

func (Rectangle) Drag(g *sketchpad.Gesture, p geometry.Point) {
	style := g.Style()
	g.SetPreview(rectPrimitive(normalize(g.Origin(), p), style.Stroke, style.Fill, style.LineWidth))
}

func (Rectangle) End(g *sketchpad.Gesture, p geometry.Point) (sketchpad.Shape, bool) {
	rect := normalize(g.Origin(), p)
	if !rect.Valid() {
		return sketchpad.Shape{}, false
	}
	style := g.Style()
	return sketchpad.NewShape(NameRectangle, map[string]any{
		"x":         rect.MinX,
		"y":         rect.MinY,
		"width":     rect.Width,
		"height":    rect.Height,
		"stroke":    style.Stroke,
		"fill":      style.Fill,
		"linewidth": style.LineWidth,
	}), true
}

func (Rectangle) Replay(shape sketchpad.Shape) ([]sketchpad.Primitive, error) {
	v, err := numbers(shape, "x", "y", "width", "height")
	if err != nil {
		return nil, err
	}
	stroke, width := strokeOf(shape)
	rect := geometry.Dimensions{MinX: v[0], MinY: v[1], Width: v[2], Height: v[3]}
	return []sketchpad.Primitive{rectPrimitive(rect, stroke, fillOf(shape), width)}, nil
}

func (Rectangle) Schema() *openapi3.Schema {
	return recordSchema(NameRectangle, map[string]*openapi3.Schema{
		"x":         numberSchema(),
		"y":         numberSchema(),
		"width":     sizeSchema(),
		"height":    sizeSchema(),
		"stroke":    colourSchema(),
		"fill":      colourSchema(),
		"linewidth": sizeSchema(),
	})
}

// normalize returns the rectangle spanned by two corners with a
// non-negative size.
func normalize(a, b geometry.Point) geometry.Dimensions {
	return geometry.Dimensions{
		MinX:   math.Min(a.X, b.X),
		MinY:   math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

func rectPrimitive(rect geometry.Dimensions, stroke, fill string, width float64) sketchpad.Primitive {
	return sketchpad.Primitive{
		Kind:      sketchpad.PrimitiveRect,
		Points:    []geometry.Point{geometry.Pt(rect.MinX, rect.MinY)},
		Width:     rect.Width,
		Height:    rect.Height,
		Stroke:    stroke,
		Fill:      fill,
		LineWidth: width,
	}
}
