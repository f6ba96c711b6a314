package model

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldType is the JSON kind of a field value.
type FieldType string

const (
	FieldTypeString FieldType = "string"
	FieldTypeNumber FieldType = "number"
	FieldTypeArray  FieldType = "array"
	FieldTypeObject FieldType = "object"
)

// Field models one input inside a form. Struct fields are annotated so
// renderers can serialise them directly when needed.
type Field struct {
	Name        string            `json:"name"`
	Type        FieldType         `json:"type"`
	Component   string            `json:"component"`
	Required    bool              `json:"required"`
	Readonly    bool              `json:"readonly,omitempty"`
	Label       string            `json:"label,omitempty"`
	Description string            `json:"description,omitempty"`
	Value       any               `json:"value,omitempty"`
	Config      map[string]any    `json:"config,omitempty"`
	UIHints     map[string]string `json:"uiHints,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// FormModel groups the fields rendered together.
type FormModel struct {
	ID       string            `json:"id"`
	Title    string            `json:"title,omitempty"`
	Fields   []Field           `json:"fields"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Hint returns a trimmed UI hint.
func (f Field) Hint(key string) string {
	if f.UIHints == nil {
		return ""
	}
	return strings.TrimSpace(f.UIHints[key])
}

// ConfigString reads a config value as a string. Numbers are formatted;
// other types yield "".
func (f Field) ConfigString(key string) string {
	switch v := f.Config[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case fmt.Stringer:
		return v.String()
	}
	return ""
}

// ConfigNumber reads a numeric config value, accepting numeric strings.
func (f Field) ConfigNumber(key string) (float64, bool) {
	switch v := f.Config[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return n, err == nil
	}
	return 0, false
}

// FieldByName returns the first field with the given name.
func (m FormModel) FieldByName(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}
