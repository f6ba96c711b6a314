package sketchpad

import "github.com/goliatone/go-sketchpad/pkg/geometry"

// Transform maps device pixels on the drawing surface to logical drawing
// space. The zero value is uncalibrated.
type Transform struct {
	dims       geometry.Dimensions
	multiplier float64
}

// Calibrate installs the logical dimensions derived from a background. The
// multiplier starts at 1 until the rendered width is known.
func (t *Transform) Calibrate(dims geometry.Dimensions) {
	t.dims = dims
	t.multiplier = 1
}

// Stretch recomputes the multiplier from the rendered width of the drawing
// area. Non-positive widths (a hidden container) are ignored and reported as
// false, as is a call before calibration.
func (t *Transform) Stretch(renderedWidth float64) bool {
	if renderedWidth <= 0 || !t.dims.Valid() {
		return false
	}
	t.multiplier = renderedWidth / t.dims.Width
	return true
}

// Ready reports whether ToLogical can be used.
func (t Transform) Ready() bool {
	return t.dims.Valid() && t.multiplier > 0
}

// Multiplier is rendered pixels per logical unit.
func (t Transform) Multiplier() float64 {
	return t.multiplier
}

// Dimensions returns the calibrated logical drawing space.
func (t Transform) Dimensions() geometry.Dimensions {
	return t.dims
}

// ToLogical converts a surface-relative device point:
//
//	logical = round(device / multiplier) + min
func (t Transform) ToLogical(device geometry.Point) (geometry.Point, error) {
	return t.ToView(device, t.dims)
}

// ViewMultiplier is rendered pixels per logical unit while view is the
// visible window. The rendered width stays fixed, so a narrower window
// means more pixels per unit.
func (t Transform) ViewMultiplier(view geometry.Dimensions) float64 {
	if !view.Valid() || view.Width == t.dims.Width {
		return t.multiplier
	}
	return t.multiplier * t.dims.Width / view.Width
}

// ToView converts a device point against the visible window:
//
//	logical = round(device / viewMultiplier) + view.min
//
// With view equal to the calibrated dimensions this is ToLogical.
func (t Transform) ToView(device geometry.Point, view geometry.Dimensions) (geometry.Point, error) {
	if !t.Ready() {
		return geometry.Point{}, ErrNotReady
	}
	if !view.Valid() {
		view = t.dims
	}
	multiplier := t.ViewMultiplier(view)
	return geometry.Point{
		X: geometry.Round(device.X/multiplier) + view.MinX,
		Y: geometry.Round(device.Y/multiplier) + view.MinY,
	}, nil
}
