package model_test

import (
	"testing"

	"github.com/goliatone/go-sketchpad/pkg/model"
)

func TestFieldConfigAccessors(t *testing.T) {
	field := model.Field{
		Name: "plan",
		Config: map[string]any{
			"imageUrl":         " https://example.com/plan.svg ",
			"defaultLineWidth": 2.5,
			"defaultZoom":      "150",
			"width":            800,
			"broken":           []any{1},
		},
		UIHints: map[string]string{"cssClass": " wide "},
	}

	if got := field.ConfigString("imageUrl"); got != "https://example.com/plan.svg" {
		t.Fatalf("unexpected imageUrl %q", got)
	}
	if got := field.ConfigString("defaultLineWidth"); got != "2.5" {
		t.Fatalf("unexpected formatted number %q", got)
	}
	if got := field.ConfigString("broken"); got != "" {
		t.Fatalf("expected empty string for non-scalar config, got %q", got)
	}
	if n, ok := field.ConfigNumber("defaultZoom"); !ok || n != 150 {
		t.Fatalf("expected numeric string to parse, got %v %v", n, ok)
	}
	if n, ok := field.ConfigNumber("width"); !ok || n != 800 {
		t.Fatalf("expected int config to convert, got %v %v", n, ok)
	}
	if _, ok := field.ConfigNumber("missing"); ok {
		t.Fatalf("missing keys are not numbers")
	}
	if field.Hint("cssClass") != "wide" || field.Hint("missing") != "" {
		t.Fatalf("unexpected hints")
	}
}

func TestFormModelFieldByName(t *testing.T) {
	form := model.FormModel{ID: "inspection", Fields: []model.Field{{Name: "notes"}, {Name: "plan"}}}
	if _, ok := form.FieldByName("plan"); !ok {
		t.Fatalf("expected plan field")
	}
	if _, ok := form.FieldByName("other"); ok {
		t.Fatalf("unexpected field")
	}
}
