package modes

import (
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Pencil draws freehand strokes.
type Pencil struct{}

func (Pencil) Name() string { return NamePencil }

func (Pencil) Cursor() sketchpad.Cursor {
	return sketchpad.Cursor{Hover: "crosshair"}
}

func (Pencil) Button() sketchpad.Button {
	return sketchpad.Button{Title: "Pencil", Icon: "pencil"}
}

func (Pencil) Start(g *sketchpad.Gesture, _ geometry.Point) {
	g.SetPreview(pencilPrimitive(g.Points(), g.Style().Stroke, g.Style().LineWidth))
}

func (Pencil) Drag(g *sketchpad.Gesture, _ geometry.Point) {
	g.SetPreview(pencilPrimitive(g.Points(), g.Style().Stroke, g.Style().LineWidth))
}

func (Pencil) End(g *sketchpad.Gesture, _ geometry.Point) (sketchpad.Shape, bool) {
	points := compact(g.Points())
	style := g.Style()
	return sketchpad.NewShape(NamePencil, map[string]any{
		"points":    sketchpad.PointsValue(points),
		"stroke":    style.Stroke,
		"linewidth": style.LineWidth,
	}), true
}

func (Pencil) Replay(shape sketchpad.Shape) ([]sketchpad.Primitive, error) {
	points, ok := shape.Points("points")
	if !ok || len(points) == 0 {
		return nil, fmt.Errorf("modes: pencil: points must be a non-empty list of [x, y] pairs")
	}
	stroke, width := strokeOf(shape)
	return []sketchpad.Primitive{pencilPrimitive(points, stroke, width)}, nil
}

func (Pencil) Schema() *openapi3.Schema {
	pair := openapi3.NewArraySchema().WithItems(numberSchema()).WithMinItems(2).WithMaxItems(2)
	return recordSchema(NamePencil, map[string]*openapi3.Schema{
		"points":    openapi3.NewArraySchema().WithItems(pair).WithMinItems(1),
		"stroke":    colourSchema(),
		"linewidth": sizeSchema(),
	})
}

func pencilPrimitive(points []geometry.Point, stroke string, width float64) sketchpad.Primitive {
	return sketchpad.Primitive{
		Kind:      sketchpad.PrimitivePath,
		Points:    points,
		Stroke:    stroke,
		LineWidth: width,
	}
}

// compact drops consecutive duplicates; pointer-up usually repeats the last
// drag position.
func compact(points []geometry.Point) []geometry.Point {
	out := make([]geometry.Point, 0, len(points))
	for _, p := range points {
		if n := len(out); n > 0 && out[n-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}
