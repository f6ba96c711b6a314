package sketchpad_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

func TestTransformNotReady(t *testing.T) {
	var tr sketchpad.Transform
	if _, err := tr.ToLogical(geometry.Pt(1, 1)); !errors.Is(err, sketchpad.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
	if tr.Stretch(400) {
		t.Fatalf("stretch before calibration should be ignored")
	}
}

func TestTransformRasterScenario(t *testing.T) {
	var tr sketchpad.Transform
	tr.Calibrate(geometry.Dimensions{Width: 800, Height: 600})
	if !tr.Stretch(400) {
		t.Fatalf("expected stretch to apply")
	}
	if tr.Multiplier() != 0.5 {
		t.Fatalf("expected multiplier 0.5, got %v", tr.Multiplier())
	}

	got, err := tr.ToLogical(geometry.Pt(100, 100))
	if err != nil {
		t.Fatalf("to logical: %v", err)
	}
	if got != geometry.Pt(200, 200) {
		t.Fatalf("expected (200,200), got %+v", got)
	}
}

func TestTransformAppliesOffsetAndRounding(t *testing.T) {
	var tr sketchpad.Transform
	tr.Calibrate(geometry.Dimensions{MinX: 10, MinY: 20, Width: 300, Height: 400})
	tr.Stretch(600)

	first, err := tr.ToLogical(geometry.Pt(33, 47))
	if err != nil {
		t.Fatalf("to logical: %v", err)
	}
	// 16.5 rounds to 17, 23.5 to 24
	if first != geometry.Pt(27, 44) {
		t.Fatalf("unexpected logical point %+v", first)
	}

	second, _ := tr.ToLogical(geometry.Pt(33, 47))
	if first != second {
		t.Fatalf("transform is not deterministic: %+v vs %+v", first, second)
	}
}

func TestTransformMapsThroughVisibleWindow(t *testing.T) {
	var tr sketchpad.Transform
	dims := geometry.Dimensions{Width: 800, Height: 600}
	tr.Calibrate(dims)
	tr.Stretch(400)

	full, err := tr.ToView(geometry.Pt(100, 100), dims)
	if err != nil {
		t.Fatalf("to view: %v", err)
	}
	if full != geometry.Pt(200, 200) {
		t.Fatalf("unzoomed window should match ToLogical, got %+v", full)
	}

	zoomed := geometry.Dimensions{MinX: 200, MinY: 150, Width: 400, Height: 300}
	if got := tr.ViewMultiplier(zoomed); got != 1 {
		t.Fatalf("expected view multiplier 1, got %v", got)
	}
	got, err := tr.ToView(geometry.Pt(100, 75), zoomed)
	if err != nil {
		t.Fatalf("to view: %v", err)
	}
	if got != geometry.Pt(300, 225) {
		t.Fatalf("expected (300,225), got %+v", got)
	}
}

func TestTransformIgnoresHiddenContainer(t *testing.T) {
	var tr sketchpad.Transform
	tr.Calibrate(geometry.Dimensions{Width: 800, Height: 600})
	if tr.Stretch(0) {
		t.Fatalf("expected zero width to be ignored")
	}
	if tr.Multiplier() != 1 {
		t.Fatalf("expected multiplier to stay 1, got %v", tr.Multiplier())
	}
}
