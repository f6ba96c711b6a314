package sketchpad_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

func TestViewportPanClamps(t *testing.T) {
	def := geometry.Dimensions{MinX: 10, MinY: 20, Width: 800, Height: 600}
	deltas := []geometry.Point{
		{X: 5000, Y: 5000},
		{X: -5000, Y: -5000},
		{X: 30, Y: -12},
		{X: -0.5, Y: 0.25},
		{X: 0, Y: 0},
	}

	for _, windowSize := range []geometry.Point{{X: 800, Y: 600}, {X: 200, Y: 150}} {
		vp := sketchpad.NewViewport()
		vp.Reset(def)
		if windowSize.X < def.Width {
			if err := vp.Zoom(def.Width/windowSize.X, def.Center()); err != nil {
				t.Fatalf("zoom: %v", err)
			}
		}

		for _, delta := range deltas {
			for _, multiplier := range []float64{0.25, 1, 3} {
				if err := vp.Pan(delta, multiplier); err != nil {
					t.Fatalf("pan: %v", err)
				}
				cur := vp.Current()
				if cur.MinX < def.MinX || cur.MinY < def.MinY {
					t.Fatalf("window %+v left the lower bounds of %+v", cur, def)
				}
				if cur.MinX > def.Width-cur.Width+def.MinX || cur.MinY > def.Height-cur.Height+def.MinY {
					t.Fatalf("window %+v exceeded the upper bounds of %+v", cur, def)
				}
			}
		}
	}
}

func TestViewportPanMovesAgainstDrag(t *testing.T) {
	vp := sketchpad.NewViewport()
	vp.Reset(geometry.Dimensions{Width: 800, Height: 600})
	if err := vp.Zoom(2, geometry.Pt(400, 300)); err != nil {
		t.Fatalf("zoom: %v", err)
	}
	if got := vp.ViewBoxAttr(); got != "200 150 400 300" {
		t.Fatalf("unexpected zoomed viewBox %q", got)
	}

	if err := vp.Pan(geometry.Pt(50, -25), 0.5); err != nil {
		t.Fatalf("pan: %v", err)
	}
	if got := vp.ViewBoxAttr(); got != "100 200 400 300" {
		t.Fatalf("unexpected panned viewBox %q", got)
	}
}

func TestViewportZoomInfo(t *testing.T) {
	def := geometry.Dimensions{Width: 800, Height: 600}
	vp := sketchpad.NewViewport()
	vp.Reset(def)

	if err := vp.Zoom(4, geometry.Pt(0, 0)); err != nil {
		t.Fatalf("zoom: %v", err)
	}
	want := sketchpad.ZoomInfo{
		ViewBox: sketchpad.ViewBoxes{
			Default: def,
			Current: geometry.Dimensions{Width: 200, Height: 150},
		},
		Multiplier:      sketchpad.DefaultZoomStep,
		TotalMultiplier: 4,
	}
	if diff := cmp.Diff(want, vp.Info()); diff != "" {
		t.Fatalf("zoom info mismatch (-want +got):\n%s", diff)
	}

	if err := vp.Zoom(0.01, geometry.Pt(0, 0)); err != nil {
		t.Fatalf("zoom out: %v", err)
	}
	if vp.Current() != def {
		t.Fatalf("zooming out should stop at the default extent, got %+v", vp.Current())
	}

	if err := vp.Zoom(2, def.Center()); err != nil {
		t.Fatalf("zoom in: %v", err)
	}
	vp.ResetZoom()
	if vp.Current() != def || vp.Info().TotalMultiplier != 1 {
		t.Fatalf("reset zoom did not restore the default window: %+v", vp.Info())
	}
}

func TestViewportSetTotalMultiplierKeepsWindow(t *testing.T) {
	def := geometry.Dimensions{Width: 640, Height: 480}
	vp := sketchpad.NewViewport()
	vp.Reset(def)
	vp.SetTotalMultiplier(2.5)

	if vp.Info().TotalMultiplier != 2.5 {
		t.Fatalf("total multiplier not recorded")
	}
	if vp.Current() != def {
		t.Fatalf("window should not change, got %+v", vp.Current())
	}
}

func TestViewportRequiresDefault(t *testing.T) {
	vp := sketchpad.NewViewport()
	if err := vp.Pan(geometry.Pt(1, 1), 1); !errors.Is(err, sketchpad.ErrNotReady) {
		t.Fatalf("expected ErrNotReady, got %v", err)
	}
}
