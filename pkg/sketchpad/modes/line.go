package modes

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Line draws a straight segment from pointer-down to pointer-up.
type Line struct{}

func (Line) Name() string { return NameLine }

func (Line) Cursor() sketchpad.Cursor {
	return sketchpad.Cursor{Hover: "crosshair"}
}

func (Line) Button() sketchpad.Button {
	return sketchpad.Button{Title: "Line", Icon: "minus"}
}

func (Line) Drag(g *sketchpad.Gesture, p geometry.Point) {
	style := g.Style()
	g.SetPreview(linePrimitive(g.Origin(), p, style.Stroke, style.LineWidth))
}

func (Line) End(g *sketchpad.Gesture, p geometry.Point) (sketchpad.Shape, bool) {
	origin := g.Origin()
	if origin == p {
		return sketchpad.Shape{}, false
	}
	style := g.Style()
	return sketchpad.NewShape(NameLine, map[string]any{
		"x1":        origin.X,
		"y1":        origin.Y,
		"x2":        p.X,
		"y2":        p.Y,
		"stroke":    style.Stroke,
		"linewidth": style.LineWidth,
	}), true
}

func (Line) Replay(shape sketchpad.Shape) ([]sketchpad.Primitive, error) {
	v, err := numbers(shape, "x1", "y1", "x2", "y2")
	if err != nil {
		return nil, err
	}
	stroke, width := strokeOf(shape)
	return []sketchpad.Primitive{
		linePrimitive(geometry.Pt(v[0], v[1]), geometry.Pt(v[2], v[3]), stroke, width),
	}, nil
}

func (Line) Schema() *openapi3.Schema {
	return recordSchema(NameLine, map[string]*openapi3.Schema{
		"x1":        numberSchema(),
		"y1":        numberSchema(),
		"x2":        numberSchema(),
		"y2":        numberSchema(),
		"stroke":    colourSchema(),
		"linewidth": sizeSchema(),
	})
}

func linePrimitive(from, to geometry.Point, stroke string, width float64) sketchpad.Primitive {
	return sketchpad.Primitive{
		Kind:      sketchpad.PrimitiveLine,
		Points:    []geometry.Point{from, to},
		Stroke:    stroke,
		LineWidth: width,
	}
}
