package geometry_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

func TestParseViewBox(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want geometry.Dimensions
	}{
		{name: "spaces", raw: "10 20 300 400", want: geometry.Dimensions{MinX: 10, MinY: 20, Width: 300, Height: 400}},
		{name: "commas", raw: "0,0,64.5,48", want: geometry.Dimensions{Width: 64.5, Height: 48}},
		{name: "mixed", raw: "  -5, -5  100\t100 ", want: geometry.Dimensions{MinX: -5, MinY: -5, Width: 100, Height: 100}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := geometry.ParseViewBox(tc.raw)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("dimensions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseViewBoxRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "0 0 10", "0 0 ten 10", "1 2 3 4 5"} {
		if _, err := geometry.ParseViewBox(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestDimensionsViewBoxFormatting(t *testing.T) {
	dims := geometry.Dimensions{MinX: 10, MinY: 20.5, Width: 300, Height: 400}
	if got := dims.ViewBox(); got != "10 20.5 300 400" {
		t.Fatalf("unexpected viewBox %q", got)
	}
}

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{
		2.5:  3,
		-2.5: -2,
		2.4:  2,
		-2.6: -3,
		200:  200,
	}
	for in, want := range cases {
		if got := geometry.Round(in); got != want {
			t.Fatalf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}
