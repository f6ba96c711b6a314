package sketchpad

import (
	"bytes"
	"encoding/xml"
	"strings"
	"sync"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

// PrimitiveKind identifies the SVG element a primitive renders to.
type PrimitiveKind string

const (
	PrimitivePath   PrimitiveKind = "path"
	PrimitiveLine   PrimitiveKind = "line"
	PrimitiveRect   PrimitiveKind = "rect"
	PrimitiveCircle PrimitiveKind = "circle"
)

// Primitive is a visual element produced by replaying a shape, in logical
// coordinates. Points holds the polyline for paths, both endpoints for lines,
// the top-left corner for rects and the centre for circles.
type Primitive struct {
	Kind      PrimitiveKind
	Points    []geometry.Point
	Width     float64
	Height    float64
	Radius    float64
	Stroke    string
	Fill      string
	LineWidth float64
}

// Surface is the drawing canvas owned by the host. The widget calls it while
// holding its lock, so implementations must not call back into the widget.
type Surface interface {
	SetViewBox(viewBox string)
	SetCursor(cursor string)
	Clear()
	Draw(primitives ...Primitive)
}

// Container receives the background markup or the load failure message.
type Container interface {
	SetContent(markup string)
}

// Control is a toolbar element addressed by button key.
type Control interface {
	SetActive(active bool)
}

// ValueControl is implemented by toolbar inputs (colour pickers, number
// inputs) that display the current style value.
type ValueControl interface {
	Control
	SetValue(value string)
}

// Elements are the host references handed to Attach.
type Elements struct {
	Surface    Surface
	Background Container
	Controls   map[string]Control
}

// SVG renders the primitive as an SVG element.
func (p Primitive) SVG() string {
	var buf bytes.Buffer
	p.writeSVG(&buf)
	return buf.String()
}

func (p Primitive) writeSVG(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(string(p.Kind))
	switch p.Kind {
	case PrimitivePath:
		writeOptionalAttr(buf, "d", pathData(p.Points))
	case PrimitiveLine:
		if len(p.Points) == 2 {
			writeAttr(buf, "x1", geometry.FormatNumber(p.Points[0].X))
			writeAttr(buf, "y1", geometry.FormatNumber(p.Points[0].Y))
			writeAttr(buf, "x2", geometry.FormatNumber(p.Points[1].X))
			writeAttr(buf, "y2", geometry.FormatNumber(p.Points[1].Y))
		}
	case PrimitiveRect:
		if len(p.Points) > 0 {
			writeAttr(buf, "x", geometry.FormatNumber(p.Points[0].X))
			writeAttr(buf, "y", geometry.FormatNumber(p.Points[0].Y))
		}
		writeAttr(buf, "width", geometry.FormatNumber(p.Width))
		writeAttr(buf, "height", geometry.FormatNumber(p.Height))
	case PrimitiveCircle:
		if len(p.Points) > 0 {
			writeAttr(buf, "cx", geometry.FormatNumber(p.Points[0].X))
			writeAttr(buf, "cy", geometry.FormatNumber(p.Points[0].Y))
		}
		writeAttr(buf, "r", geometry.FormatNumber(p.Radius))
	}

	fill := p.Fill
	if fill == "" {
		fill = "none"
	}
	writeAttr(buf, "fill", fill)
	if p.Stroke != "" {
		writeAttr(buf, "stroke", p.Stroke)
	}
	if p.LineWidth > 0 {
		writeAttr(buf, "stroke-width", geometry.FormatNumber(p.LineWidth))
	}
	if p.Kind == PrimitivePath || p.Kind == PrimitiveLine {
		writeAttr(buf, "stroke-linecap", "round")
		writeAttr(buf, "stroke-linejoin", "round")
	}
	buf.WriteString("/>")
}

func pathData(points []geometry.Point) string {
	var sb strings.Builder
	for idx, p := range points {
		if idx == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteString(" L")
		}
		sb.WriteString(geometry.FormatNumber(p.X))
		sb.WriteByte(' ')
		sb.WriteString(geometry.FormatNumber(p.Y))
	}
	if len(points) == 1 {
		// a single tap still leaves a round dot
		sb.WriteString(" L" + geometry.FormatNumber(points[0].X) + " " + geometry.FormatNumber(points[0].Y))
	}
	return sb.String()
}

func writeOptionalAttr(buf *bytes.Buffer, name, value string) {
	if value == "" {
		return
	}
	writeAttr(buf, name, value)
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	_ = xml.EscapeText(buf, []byte(value))
	buf.WriteByte('"')
}

// RenderSVG serialises primitives as a standalone, responsive SVG document
// (no width/height, preserveAspectRatio meet) for the given viewBox. style is
// written verbatim into the style attribute when non-empty.
func RenderSVG(viewBox geometry.Dimensions, style string, primitives []Primitive) string {
	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" class="formio-sketchpad-svg" preserveAspectRatio="xMidYMid meet"`)
	writeAttr(&buf, "viewBox", viewBox.ViewBox())
	if style != "" {
		writeAttr(&buf, "style", style)
	}
	buf.WriteByte('>')
	for _, p := range primitives {
		p.writeSVG(&buf)
	}
	buf.WriteString("</svg>")
	return buf.String()
}

// SVGSurface is an in-memory Surface that records what the widget drew. It
// backs server-side previews, exports and tests.
type SVGSurface struct {
	mu         sync.Mutex
	viewBox    string
	cursor     string
	primitives []Primitive
}

var _ Surface = (*SVGSurface)(nil)

// NewSVGSurface returns an empty surface.
func NewSVGSurface() *SVGSurface {
	return &SVGSurface{cursor: "default"}
}

func (s *SVGSurface) SetViewBox(viewBox string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewBox = viewBox
}

func (s *SVGSurface) SetCursor(cursor string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = cursor
}

func (s *SVGSurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primitives = nil
}

func (s *SVGSurface) Draw(primitives ...Primitive) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.primitives = append(s.primitives, primitives...)
}

// ViewBox returns the last viewBox set by the widget.
func (s *SVGSurface) ViewBox() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewBox
}

// Cursor returns the last cursor set by the widget.
func (s *SVGSurface) Cursor() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Primitives returns a copy of the drawn primitives.
func (s *SVGSurface) Primitives() []Primitive {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Primitive(nil), s.primitives...)
}

// Markup renders the surface with its current viewBox.
func (s *SVGSurface) Markup() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	dims, err := geometry.ParseViewBox(s.viewBox)
	if err != nil {
		dims = geometry.Dimensions{}
	}
	return RenderSVG(dims, "", s.primitives)
}
