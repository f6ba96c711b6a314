package sketchpad

import (
	"fmt"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

// DefaultZoomStep is the factor applied by one zoom-in or zoom-out action.
const DefaultZoomStep = 1.5

// ViewBoxes pairs the natural extent of the background with the window
// currently shown.
type ViewBoxes struct {
	Default geometry.Dimensions `json:"default"`
	Current geometry.Dimensions `json:"current"`
}

// ZoomInfo is the viewport state exposed to hosts and templates.
type ZoomInfo struct {
	ViewBox         ViewBoxes `json:"viewBox"`
	Multiplier      float64   `json:"multiplier"`
	TotalMultiplier float64   `json:"totalMultiplier"`
}

// Viewport tracks the default and current viewBox. Current never leaves the
// bounds of default.
type Viewport struct {
	info ZoomInfo
}

// NewViewport returns an unset viewport with the default zoom step.
func NewViewport() *Viewport {
	return &Viewport{info: ZoomInfo{Multiplier: DefaultZoomStep, TotalMultiplier: 1}}
}

// Reset installs a new default viewBox, shows all of it and resets the zoom
// level. Called once per background load.
func (v *Viewport) Reset(def geometry.Dimensions) {
	v.info.ViewBox = ViewBoxes{Default: def, Current: def}
	v.info.TotalMultiplier = 1
}

// Info returns a copy of the viewport state.
func (v *Viewport) Info() ZoomInfo {
	return v.info
}

// Current returns the visible window.
func (v *Viewport) Current() geometry.Dimensions {
	return v.info.ViewBox.Current
}

// Pan moves the visible window against a drag of delta device pixels; the
// multiplier converts the delta into logical units. The window is clamped to
// the default extent afterwards.
func (v *Viewport) Pan(delta geometry.Point, multiplier float64) error {
	if multiplier <= 0 || !v.info.ViewBox.Default.Valid() {
		return ErrNotReady
	}
	v.info.ViewBox.Current.MinX -= delta.X / multiplier
	v.info.ViewBox.Current.MinY -= delta.Y / multiplier
	v.clamp()
	return nil
}

func (v *Viewport) clamp() {
	def := v.info.ViewBox.Default
	cur := &v.info.ViewBox.Current

	cur.MinX = max(cur.MinX, def.MinX)
	cur.MinY = max(cur.MinY, def.MinY)

	cur.MinX = min(cur.MinX, def.Width-cur.Width+def.MinX)
	cur.MinY = min(cur.MinY, def.Height-cur.Height+def.MinY)
}

// SetTotalMultiplier records the display zoom level shown to the user. It
// does not resize the window.
func (v *Viewport) SetTotalMultiplier(multiplier float64) {
	v.info.TotalMultiplier = multiplier
}

// Zoom scales the visible window by 1/factor around a logical centre. The
// window never grows past the default extent; the total multiplier follows the
// resulting window size.
func (v *Viewport) Zoom(factor float64, centre geometry.Point) error {
	def := v.info.ViewBox.Default
	if !def.Valid() {
		return ErrNotReady
	}
	if factor <= 0 {
		return fmt.Errorf("sketchpad: zoom factor %v must be positive", factor)
	}

	cur := v.info.ViewBox.Current
	width := min(cur.Width/factor, def.Width)
	height := min(cur.Height/factor, def.Height)

	// keep the centre at the same relative position inside the window
	rx := (centre.X - cur.MinX) / cur.Width
	ry := (centre.Y - cur.MinY) / cur.Height

	v.info.ViewBox.Current = geometry.Dimensions{
		MinX:   centre.X - rx*width,
		MinY:   centre.Y - ry*height,
		Width:  width,
		Height: height,
	}
	v.clamp()
	v.info.TotalMultiplier = def.Width / width
	return nil
}

// ResetZoom shows the whole default extent again.
func (v *Viewport) ResetZoom() {
	v.info.ViewBox.Current = v.info.ViewBox.Default
	v.info.TotalMultiplier = 1
}

// ViewBoxAttr formats the current window as "minX minY width height".
func (v *Viewport) ViewBoxAttr() string {
	return v.info.ViewBox.Current.ViewBox()
}
