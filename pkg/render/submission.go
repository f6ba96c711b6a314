package render

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// HiddenField is a hidden form input emitted next to the component. The
// sketchpad value itself travels in one, JSON encoded.
type HiddenField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Hidden returns a HiddenField for an arbitrary name/value pair.
func Hidden(name string, value any) HiddenField {
	return HiddenField{Name: strings.TrimSpace(name), Value: fmt.Sprint(value)}
}

// ValueField encodes a component value as JSON. A nil value encodes as an
// empty list, the empty sketch.
func ValueField(name string, value any) (HiddenField, error) {
	if value == nil {
		return HiddenField{Name: strings.TrimSpace(name), Value: "[]"}, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return HiddenField{}, fmt.Errorf("render: encode value of %q: %w", name, err)
	}
	return HiddenField{Name: strings.TrimSpace(name), Value: string(raw)}, nil
}

// MergeHiddenFields returns a copy of base with fields applied. Empty names
// are ignored; later fields win.
func MergeHiddenFields(base map[string]string, fields ...HiddenField) map[string]string {
	out := make(map[string]string, len(base)+len(fields))
	for key, value := range base {
		if key = strings.TrimSpace(key); key != "" {
			out[key] = value
		}
	}
	for _, field := range fields {
		if name := strings.TrimSpace(field.Name); name != "" {
			out[name] = field.Value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// SortedHiddenFields orders hidden fields by name for deterministic markup.
func SortedHiddenFields(fields map[string]string) []HiddenField {
	merged := MergeHiddenFields(fields)
	if merged == nil {
		return nil
	}
	names := make([]string, 0, len(merged))
	for name := range merged {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]HiddenField, 0, len(names))
	for _, name := range names {
		out = append(out, HiddenField{Name: name, Value: merged[name]})
	}
	return out
}
