package modes

import (
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Pan drags the visible window of a zoomed background. It never produces a
// shape.
type Pan struct{}

func (Pan) Name() string { return NamePan }

func (Pan) Cursor() sketchpad.Cursor {
	return sketchpad.Cursor{Hover: "grab", Clicked: "grabbing"}
}

func (Pan) Button() sketchpad.Button {
	return sketchpad.Button{Title: "Move", Icon: "arrows"}
}

func (Pan) Drag(g *sketchpad.Gesture, _ geometry.Point) {
	g.PanBy(g.DeviceDelta())
}
