// Package modes provides the built-in sketchpad drawing tools.
package modes

import (
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

// Built-in mode names.
const (
	NamePencil    = "pencil"
	NameLine      = "line"
	NameRectangle = "rectangle"
	NameCircle    = "circle"
	NamePan       = "pan"
)

// Defaults returns the built-in modes in toolbar order. Pencil comes first
// and is therefore the initial mode.
func Defaults() []sketchpad.Mode {
	return []sketchpad.Mode{Pencil{}, Line{}, Rectangle{}, Circle{}, Pan{}}
}

// NewRegistry returns a registry holding the built-in modes.
func NewRegistry() *sketchpad.Registry {
	registry := sketchpad.NewRegistry()
	registry.MustRegister(Defaults()...)
	return registry
}

func recordSchema(mode string, props map[string]*openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	schema.WithProperty("mode", openapi3.NewStringSchema().WithEnum(mode))
	required := []string{"mode"}
	for _, name := range sortedKeys(props) {
		schema.WithProperty(name, props[name])
		required = append(required, name)
	}
	schema.Required = required
	return schema
}

func numberSchema() *openapi3.Schema {
	return openapi3.NewFloat64Schema()
}

func sizeSchema() *openapi3.Schema {
	return openapi3.NewFloat64Schema().WithMin(0)
}

func colourSchema() *openapi3.Schema {
	return openapi3.NewStringSchema().WithMinLength(1)
}

func numbers(shape sketchpad.Shape, keys ...string) ([]float64, error) {
	out := make([]float64, len(keys))
	for idx, key := range keys {
		value, ok := shape.Number(key)
		if !ok {
			return nil, fmt.Errorf("modes: %s: field %q must be a number", shape.Mode, key)
		}
		out[idx] = value
	}
	return out, nil
}

// strokeOf reads the stroke styling. The schema guarantees both fields on
// validated records.
func strokeOf(shape sketchpad.Shape) (string, float64) {
	width, _ := shape.Number("linewidth")
	return shape.String("stroke"), width
}

func fillOf(shape sketchpad.Shape) string {
	return shape.String("fill")
}

func sortedKeys(in map[string]*openapi3.Schema) []string {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
