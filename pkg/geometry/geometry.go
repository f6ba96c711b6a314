// Package geometry holds the small coordinate types shared by the sketchpad
// engine, background calibration and exporters.
package geometry

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a coordinate in either device pixels or logical drawing space;
// the owner decides which.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Add returns p + other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Scale multiplies both components by factor.
func (p Point) Scale(factor float64) Point {
	return Point{X: p.X * factor, Y: p.Y * factor}
}

// Distance returns the Euclidean distance to other.
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Dimensions is a viewBox rectangle in logical drawing space.
type Dimensions struct {
	MinX   float64 `json:"minX"`
	MinY   float64 `json:"minY"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Valid reports whether the rectangle has a positive area.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// Center returns the middle of the rectangle.
func (d Dimensions) Center() Point {
	return Point{X: d.MinX + d.Width/2, Y: d.MinY + d.Height/2}
}

// ViewBox formats the rectangle as an SVG viewBox attribute value, in the
// order minX minY width height.
func (d Dimensions) ViewBox() string {
	return strings.Join([]string{
		FormatNumber(d.MinX),
		FormatNumber(d.MinY),
		FormatNumber(d.Width),
		FormatNumber(d.Height),
	}, " ")
}

// ParseViewBox reads the four numeric components of a viewBox attribute.
// Components may be separated by whitespace and/or commas.
func ParseViewBox(raw string) (Dimensions, error) {
	parts := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(parts) != 4 {
		return Dimensions{}, fmt.Errorf("geometry: viewBox %q must have 4 components, got %d", raw, len(parts))
	}

	values := make([]float64, 4)
	for idx, part := range parts {
		value, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return Dimensions{}, fmt.Errorf("geometry: viewBox %q component %d: %w", raw, idx, err)
		}
		values[idx] = value
	}

	return Dimensions{MinX: values[0], MinY: values[1], Width: values[2], Height: values[3]}, nil
}

// FormatNumber renders a float the way browsers stringify numbers in
// attributes: integers without a fractional part, everything else in the
// shortest representation.
func FormatNumber(value float64) string {
	if value == math.Trunc(value) && math.Abs(value) < 1e15 {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Round rounds half-way values towards positive infinity, matching the
// rounding rule logical coordinates have always been persisted with.
func Round(value float64) float64 {
	return math.Floor(value + 0.5)
}
