package config_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

func TestFieldRoundTrip(t *testing.T) {
	component := expectedComponent()
	value := []sketchpad.Shape{sketchpad.NewShape("circle", map[string]any{"cx": 1.0})}

	field, err := component.Field(value)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if field.Name != "floorplan" || field.Component != config.ComponentType || field.Type != model.FieldTypeArray {
		t.Fatalf("unexpected field %+v", field)
	}
	if got := field.ConfigString("defaultStroke"); got != "#ff0000" {
		t.Fatalf("expected stroke in config, got %q", got)
	}

	back, err := config.FromField(field)
	if err != nil {
		t.Fatalf("from field: %v", err)
	}
	if diff := cmp.Diff(component, back); diff != "" {
		t.Fatalf("component mismatch (-want +got):\n%s", diff)
	}
}

func TestFromFieldDefaults(t *testing.T) {
	component, err := config.FromField(model.Field{Name: "markup", Label: "Markup"})
	if err != nil {
		t.Fatalf("from field: %v", err)
	}
	if component.Key != "markup" || component.Label != "Markup" || component.DefaultStroke != "#333" {
		t.Fatalf("unexpected component %+v", component)
	}

	if _, err := config.FromField(model.Field{Config: map[string]any{"imageType": "video"}}); err == nil {
		t.Fatalf("expected invalid imageType error")
	}
}
