package sketchpad

import "github.com/goliatone/go-sketchpad/pkg/geometry"

// PointerKind distinguishes mouse and touch input; both drive the same
// gesture lifecycle.
type PointerKind string

const (
	PointerMouse PointerKind = "mouse"
	PointerTouch PointerKind = "touch"
)

// PointerEvent is a pointer position relative to the drawing surface, in
// device pixels.
type PointerEvent struct {
	Kind PointerKind `json:"kind"`
	ID   int         `json:"id"`
	X    float64     `json:"x"`
	Y    float64     `json:"y"`
}

// Point returns the device position.
func (e PointerEvent) Point() geometry.Point {
	return geometry.Pt(e.X, e.Y)
}

// Gesture is the state of one pointer-down to pointer-up sequence. The
// widget creates it on pointer-down and drops it on pointer-up or cancel;
// modes keep per-gesture state in it instead of on themselves.
type Gesture struct {
	kind      PointerKind
	pointerID int
	mode      string
	style     Style

	points     []geometry.Point
	device     geometry.Point
	lastDevice geometry.Point

	preview []Primitive
	data    any

	pan    func(delta geometry.Point)
	panned bool
}

func newGesture(ev PointerEvent, mode string, style Style, pan func(geometry.Point)) *Gesture {
	return &Gesture{
		kind:       ev.Kind,
		pointerID:  ev.ID,
		mode:       mode,
		style:      style,
		device:     ev.Point(),
		lastDevice: ev.Point(),
		pan:        pan,
	}
}

func (g *Gesture) owns(ev PointerEvent) bool {
	return g.kind == ev.Kind && g.pointerID == ev.ID
}

func (g *Gesture) track(device, logical geometry.Point) {
	g.lastDevice = g.device
	g.device = device
	g.points = append(g.points, logical)
}

// Mode is the name of the mode that started the gesture.
func (g *Gesture) Mode() string { return g.mode }

// Style is the drawing style captured at pointer-down.
func (g *Gesture) Style() Style { return g.style }

// Origin is the logical pointer-down position.
func (g *Gesture) Origin() geometry.Point {
	if len(g.points) == 0 {
		return geometry.Point{}
	}
	return g.points[0]
}

// Points returns every logical position seen so far, pointer-down first.
func (g *Gesture) Points() []geometry.Point {
	return append([]geometry.Point(nil), g.points...)
}

// DeviceDelta is the device movement since the previous event.
func (g *Gesture) DeviceDelta() geometry.Point {
	return g.device.Sub(g.lastDevice)
}

// PanBy drags the viewport by a device delta.
func (g *Gesture) PanBy(delta geometry.Point) {
	if g.pan == nil {
		return
	}
	g.pan(delta)
	g.panned = true
}

// SetPreview replaces the in-progress primitives drawn on top of the shapes.
func (g *Gesture) SetPreview(primitives ...Primitive) {
	g.preview = append([]Primitive(nil), primitives...)
}

// Data returns mode-private state.
func (g *Gesture) Data() any { return g.data }

// SetData stores mode-private state.
func (g *Gesture) SetData(v any) { g.data = v }
