package modes

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Circle places a circle of the current circle size where the pointer is
// released.
type Circle struct{}

func (Circle) Name() string { return NameCircle }

func (Circle) Cursor() sketchpad.Cursor {
	return sketchpad.Cursor{Hover: "copy"}
}

func (Circle) Button() sketchpad.Button {
	return sketchpad.Button{Title: "Circle", Icon: "circle-o"}
}

func (Circle) Start(g *sketchpad.Gesture, p geometry.Point) {
	g.SetPreview(circlePrimitive(p, g.Style()))
}

func (Circle) Drag(g *sketchpad.Gesture, p geometry.Point) {
	g.SetPreview(circlePrimitive(p, g.Style()))
}

func (Circle) End(g *sketchpad.Gesture, p geometry.Point) (sketchpad.Shape, bool) {
	style := g.Style()
	return sketchpad.NewShape(NameCircle, map[string]any{
		"cx":        p.X,
		"cy":        p.Y,
		"r":         style.CircleSize,
		"stroke":    style.Stroke,
		"fill":      style.Fill,
		"linewidth": style.LineWidth,
	}), true
}

func (Circle) Replay(shape sketchpad.Shape) ([]sketchpad.Primitive, error) {
	v, err := numbers(shape, "cx", "cy", "r")
	if err != nil {
		return nil, err
	}
	stroke, width := strokeOf(shape)
	return []sketchpad.Primitive{
		circlePrimitive(geometry.Pt(v[0], v[1]), sketchpad.Style{
			Stroke:     stroke,
			Fill:       fillOf(shape),
			LineWidth:  width,
			CircleSize: v[2],
		}),
	}, nil
}

func (Circle) Schema() *openapi3.Schema {
	return recordSchema(NameCircle, map[string]*openapi3.Schema{
		"cx":        numberSchema(),
		"cy":        numberSchema(),
		"r":         sizeSchema(),
		"stroke":    colourSchema(),
		"fill":      colourSchema(),
		"linewidth": sizeSchema(),
	})
}

func circlePrimitive(centre geometry.Point, style sketchpad.Style) sketchpad.Primitive {
	return sketchpad.Primitive{
		Kind:      sketchpad.PrimitiveCircle,
		Points:    []geometry.Point{centre},
		Radius:    style.CircleSize,
		Stroke:    style.Stroke,
		Fill:      style.Fill,
		LineWidth: style.LineWidth,
	}
}
