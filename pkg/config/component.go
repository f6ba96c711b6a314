// Package config holds the sketchpad component schema as stored by the form
// builder, and loaders for JSON, YAML and TOML documents.
package config

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// ComponentType is the form component type the sketchpad registers under.
const ComponentType = "sketchpad"

// Component is the persisted component definition. Zero values are replaced
// by Defaults when loaded through Load or Parse.
type Component struct {
	Type              string  `json:"type" yaml:"type" toml:"type"`
	Key               string  `json:"key" yaml:"key" toml:"key"`
	Label             string  `json:"label" yaml:"label" toml:"label"`
	Input             bool    `json:"input" yaml:"input" toml:"input"`
	ImageType         string  `json:"imageType" yaml:"imageType" toml:"imageType"`
	ImageURL          string  `json:"imageUrl" yaml:"imageUrl" toml:"imageUrl"`
	Image             string  `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Width             int     `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height            int     `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`
	DefaultZoom       float64 `json:"defaultZoom" yaml:"defaultZoom" toml:"defaultZoom"`
	DefaultStroke     string  `json:"defaultStroke" yaml:"defaultStroke" toml:"defaultStroke"`
	DefaultFill       string  `json:"defaultFill" yaml:"defaultFill" toml:"defaultFill"`
	DefaultLineWidth  float64 `json:"defaultLineWidth" yaml:"defaultLineWidth" toml:"defaultLineWidth"`
	DefaultCircleSize float64 `json:"defaultCircleSize" yaml:"defaultCircleSize" toml:"defaultCircleSize"`
}

// Defaults returns the builder defaults for a new sketchpad component.
func Defaults() Component {
	style := sketchpad.DefaultStyle()
	return Component{
		Type:              ComponentType,
		Key:               "sketchpad",
		Label:             "Sketchpad",
		Input:             true,
		ImageType:         string(background.ImageTypeRaster),
		DefaultZoom:       100,
		DefaultStroke:     style.Stroke,
		DefaultFill:       style.Fill,
		DefaultLineWidth:  style.LineWidth,
		DefaultCircleSize: style.CircleSize,
	}
}

// WithDefaults fills zero fields from Defaults.
func (c Component) WithDefaults() Component {
	def := Defaults()
	if strings.TrimSpace(c.Type) == "" {
		c.Type = def.Type
	}
	if strings.TrimSpace(c.Key) == "" {
		c.Key = def.Key
	}
	if strings.TrimSpace(c.Label) == "" {
		c.Label = def.Label
	}
	if strings.TrimSpace(c.ImageType) == "" {
		c.ImageType = def.ImageType
	}
	if c.DefaultZoom <= 0 {
		c.DefaultZoom = def.DefaultZoom
	}
	if strings.TrimSpace(c.DefaultStroke) == "" {
		c.DefaultStroke = def.DefaultStroke
	}
	if strings.TrimSpace(c.DefaultFill) == "" {
		c.DefaultFill = def.DefaultFill
	}
	if c.DefaultLineWidth <= 0 {
		c.DefaultLineWidth = def.DefaultLineWidth
	}
	if c.DefaultCircleSize <= 0 {
		c.DefaultCircleSize = def.DefaultCircleSize
	}
	return c
}

// Validate reports configuration the widget cannot work with.
func (c Component) Validate() error {
	switch background.ImageType(c.ImageType) {
	case background.ImageTypeRaster, background.ImageTypeSVG:
	default:
		return fmt.Errorf("config: component %q: unsupported imageType %q", c.Key, c.ImageType)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("config: component %q: width and height must not be negative", c.Key)
	}
	return nil
}

// Style returns the initial drawing style.
func (c Component) Style() sketchpad.Style {
	c = c.WithDefaults()
	return sketchpad.Style{
		Stroke:     c.DefaultStroke,
		Fill:       c.DefaultFill,
		LineWidth:  c.DefaultLineWidth,
		CircleSize: c.DefaultCircleSize,
	}
}

// ZoomFactor converts the percentage zoom into a viewport zoom factor.
func (c Component) ZoomFactor() float64 {
	if c.DefaultZoom <= 0 {
		return 1
	}
	return c.DefaultZoom / 100
}

// UseBackgroundDimensions reports whether the drawing area follows the
// background's natural size rather than a configured width and height.
func (c Component) UseBackgroundDimensions() bool {
	return c.Width == 0 || c.Height == 0
}

// BackgroundSource returns the background location. Absolute http(s) URLs
// load over HTTP; anything else is treated as a file path. ok is false when
// no image URL is configured.
func (c Component) BackgroundSource() (background.Source, bool) {
	raw := strings.TrimSpace(c.ImageURL)
	if raw == "" {
		return nil, false
	}
	lower := strings.ToLower(raw)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return background.SourceFromURL(raw), true
	}
	return background.SourceFromFile(raw), true
}

// WidgetOptions maps the component onto widget options.
func (c Component) WidgetOptions() []sketchpad.Option {
	return []sketchpad.Option{
		sketchpad.WithID(c.Key),
		sketchpad.WithStyle(c.Style()),
	}
}
