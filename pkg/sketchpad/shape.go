package sketchpad

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

const modeKey = "mode"

// Shape is one persisted drawing record, tagged by the mode that produced it.
// Fields are opaque to the engine and hold JSON-compatible values.
type Shape struct {
	Mode   string
	Fields map[string]any
}

// NewShape builds a shape, dropping any "mode" entry from fields.
func NewShape(mode string, fields map[string]any) Shape {
	out := Shape{Mode: mode, Fields: make(map[string]any, len(fields))}
	for key, value := range fields {
		if key == modeKey {
			continue
		}
		out.Fields[key] = value
	}
	return out
}

// MarshalJSON writes the flat {"mode": ..., ...fields} form.
func (s Shape) MarshalJSON() ([]byte, error) {
	if s.Mode == "" {
		return nil, errors.New("sketchpad: shape mode is required")
	}

	var buf bytes.Buffer
	buf.WriteString(`{"mode":`)
	mode, err := json.Marshal(s.Mode)
	if err != nil {
		return nil, err
	}
	buf.Write(mode)

	for _, key := range slices.Sorted(maps.Keys(s.Fields)) {
		if key == modeKey {
			continue
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(s.Fields[key])
		if err != nil {
			return nil, fmt.Errorf("sketchpad: shape field %q: %w", key, err)
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads the flat form. The mode tag must be a non-empty string.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sketchpad: decode shape: %w", err)
	}
	if raw == nil {
		return errors.New("sketchpad: shape must be an object")
	}
	mode, _ := raw[modeKey].(string)
	if mode == "" {
		return errors.New("sketchpad: shape mode must be a non-empty string")
	}
	delete(raw, modeKey)
	s.Mode = mode
	s.Fields = raw
	return nil
}

// Record returns the shape as a single JSON-compatible map, mode included.
func (s Shape) Record() map[string]any {
	out := make(map[string]any, len(s.Fields)+1)
	for key, value := range s.Fields {
		out[key] = cloneValue(value)
	}
	out[modeKey] = s.Mode
	return out
}

// Clone returns a deep copy so callers cannot mutate history through it.
func (s Shape) Clone() Shape {
	out := Shape{Mode: s.Mode}
	if s.Fields != nil {
		out.Fields = make(map[string]any, len(s.Fields))
		for key, value := range s.Fields {
			out.Fields[key] = cloneValue(value)
		}
	}
	return out
}

// Number reads a numeric field.
func (s Shape) Number(key string) (float64, bool) {
	return toFloat(s.Fields[key])
}

// String reads a string field.
func (s Shape) String(key string) string {
	value, _ := s.Fields[key].(string)
	return value
}

// Points reads a field holding [[x, y], ...].
func (s Shape) Points(key string) ([]geometry.Point, bool) {
	items, ok := s.Fields[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]geometry.Point, 0, len(items))
	for _, item := range items {
		pair, ok := item.([]any)
		if !ok || len(pair) != 2 {
			return nil, false
		}
		x, okX := toFloat(pair[0])
		y, okY := toFloat(pair[1])
		if !okX || !okY {
			return nil, false
		}
		out = append(out, geometry.Pt(x, y))
	}
	return out, true
}

// PointsValue encodes points in the persisted [[x, y], ...] form.
func PointsValue(points []geometry.Point) []any {
	out := make([]any, len(points))
	for idx, p := range points {
		out[idx] = []any{p.X, p.Y}
	}
	return out
}

// CloneShapes deep-copies a shape list.
func CloneShapes(shapes []Shape) []Shape {
	if shapes == nil {
		return nil
	}
	out := make([]Shape, len(shapes))
	for idx, shape := range shapes {
		out[idx] = shape.Clone()
	}
	return out
}

// DecodeShapes normalises a host supplied value: nil, []Shape, a JSON string
// or bytes, or any JSON-encodable list of records.
func DecodeShapes(value any) ([]Shape, error) {
	var raw []byte
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []Shape:
		return CloneShapes(v), nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	case json.RawMessage:
		raw = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("sketchpad: encode value: %w", err)
		}
		raw = encoded
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var shapes []Shape
	if err := json.Unmarshal(raw, &shapes); err != nil {
		return nil, fmt.Errorf("sketchpad: decode value: %w", err)
	}
	return shapes, nil
}

func cloneValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, item := range v {
			out[key] = cloneValue(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for idx, item := range v {
			out[idx] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
