package config

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Field builds the form field the component renderer consumes. value may be
// nil for an empty sketch.
func (c Component) Field(value []sketchpad.Shape) (model.Field, error) {
	c = c.WithDefaults()
	raw, err := json.Marshal(c)
	if err != nil {
		return model.Field{}, fmt.Errorf("config: encode component %q: %w", c.Key, err)
	}
	var cfg map[string]any
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return model.Field{}, fmt.Errorf("config: encode component %q: %w", c.Key, err)
	}

	field := model.Field{
		Name:      c.Key,
		Type:      model.FieldTypeArray,
		Component: ComponentType,
		Label:     c.Label,
		Config:    cfg,
	}
	if value != nil {
		field.Value = sketchpad.CloneShapes(value)
	}
	return field, nil
}

// FromField decodes the component configuration carried by a field. Missing
// keys take their defaults; the field name is used when no key is set.
func FromField(field model.Field) (Component, error) {
	var c Component
	if len(field.Config) > 0 {
		raw, err := json.Marshal(field.Config)
		if err != nil {
			return Component{}, fmt.Errorf("config: field %q: %w", field.Name, err)
		}
		if err := json.Unmarshal(raw, &c); err != nil {
			return Component{}, fmt.Errorf("config: field %q: %w", field.Name, err)
		}
	}
	if c.Key == "" {
		c.Key = field.Name
	}
	if c.Label == "" {
		c.Label = field.Label
	}
	c = c.WithDefaults()
	if err := c.Validate(); err != nil {
		return Component{}, err
	}
	return c, nil
}
