package sketchpad

import (
	"fmt"
	"strconv"
	"strings"
)

// Style keys double as toolbar button keys.
const (
	StyleStroke     = "stroke"
	StyleFill       = "fill"
	StyleLineWidth  = "width"
	StyleCircleSize = "circle"
)

// Style is the drawing state new shapes pick up.
type Style struct {
	Stroke     string  `json:"stroke"`
	Fill       string  `json:"fill"`
	LineWidth  float64 `json:"linewidth"`
	CircleSize float64 `json:"circleSize"`
}

// DefaultStyle mirrors the component schema defaults.
func DefaultStyle() Style {
	return Style{Stroke: "#333", Fill: "#ccc", LineWidth: 1, CircleSize: 10}
}

// With returns a copy of s with one value changed, as sent by a toolbar style
// input.
func (s Style) With(key, value string) (Style, error) {
	value = strings.TrimSpace(value)
	switch key {
	case StyleStroke:
		if value == "" {
			return s, fmt.Errorf("sketchpad: stroke colour is required")
		}
		s.Stroke = value
	case StyleFill:
		if value == "" {
			return s, fmt.Errorf("sketchpad: fill colour is required")
		}
		s.Fill = value
	case StyleLineWidth, StyleCircleSize:
		n, err := strconv.ParseFloat(value, 64)
		if err != nil || n <= 0 {
			return s, fmt.Errorf("sketchpad: %s %q must be a positive number", key, value)
		}
		if key == StyleLineWidth {
			s.LineWidth = n
		} else {
			s.CircleSize = n
		}
	default:
		return s, fmt.Errorf("sketchpad: unknown style %q", key)
	}
	return s, nil
}

// Value returns the current value for a style key as shown in its input.
func (s Style) Value(key string) string {
	switch key {
	case StyleStroke:
		return s.Stroke
	case StyleFill:
		return s.Fill
	case StyleLineWidth:
		return strconv.FormatFloat(s.LineWidth, 'f', -1, 64)
	case StyleCircleSize:
		return strconv.FormatFloat(s.CircleSize, 'f', -1, 64)
	}
	return ""
}
