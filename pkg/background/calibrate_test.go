package background_test

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

func TestCalibrateSVGViewBox(t *testing.T) {
	markup := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="600" height="800" viewBox="10 20 300 400"><rect x="1" y="1" width="5" height="5"/></svg>`

	got, err := background.Calibrate([]byte(markup))
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if got.Type != background.ImageTypeSVG {
		t.Fatalf("expected svg type, got %q", got.Type)
	}
	want := geometry.Dimensions{MinX: 10, MinY: 20, Width: 300, Height: 400}
	if diff := cmp.Diff(want, got.Dimensions); diff != "" {
		t.Fatalf("dimensions mismatch (-want +got):\n%s", diff)
	}
	if strings.Contains(got.Markup, `width="600"`) || strings.Contains(got.Markup, `height="800"`) {
		t.Fatalf("expected explicit size to be stripped: %s", got.Markup)
	}
	if !strings.HasPrefix(got.Markup, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="10 20 300 400">`) {
		t.Fatalf("unexpected start tag: %s", got.Markup)
	}
	if !strings.Contains(got.Markup, `<rect x="1" y="1" width="5" height="5"/>`) {
		t.Fatalf("expected child markup preserved: %s", got.Markup)
	}
	if strings.Contains(got.Markup, "<?xml") {
		t.Fatalf("prolog should not be part of the markup: %s", got.Markup)
	}
}

func TestCalibrateSVGDefaults(t *testing.T) {
	got, err := background.Calibrate([]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	want := geometry.Dimensions{Width: 640, Height: 480}
	if diff := cmp.Diff(want, got.Dimensions); diff != "" {
		t.Fatalf("dimensions mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(got.Markup, `viewBox="0 0 640 480"`) {
		t.Fatalf("expected viewBox to be added: %s", got.Markup)
	}
}

func TestCalibrateSVGAttributeFallback(t *testing.T) {
	markup := `<svg x="5" y="oops" width="200px" height="0"/>`
	got, err := background.Calibrate([]byte(markup))
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	want := geometry.Dimensions{MinX: 5, MinY: 0, Width: 200, Height: 480}
	if diff := cmp.Diff(want, got.Dimensions); diff != "" {
		t.Fatalf("dimensions mismatch (-want +got):\n%s", diff)
	}
	if got.Markup != `<svg x="5" y="oops" viewBox="5 0 200 480"/>` {
		t.Fatalf("unexpected markup %s", got.Markup)
	}
}

func TestCalibrateSVGMalformedViewBoxFallsBack(t *testing.T) {
	got, err := background.Calibrate([]byte(`<svg viewBox="0 0 100" width="320" height="240"></svg>`))
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	want := geometry.Dimensions{Width: 320, Height: 240}
	if diff := cmp.Diff(want, got.Dimensions); diff != "" {
		t.Fatalf("dimensions mismatch (-want +got):\n%s", diff)
	}
}

func TestCalibrateSVGDropsNamespacePrefix(t *testing.T) {
	markup := `<?xml version="1.0"?><svg:svg xmlns:svg="http://www.w3.org/2000/svg" viewBox="0 0 5 5"><svg:rect width="1" height="1"/></svg:svg>`
	got, err := background.Calibrate([]byte(markup))
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	if !strings.HasPrefix(got.Markup, "<svg ") {
		t.Fatalf("expected unprefixed root, got %s", got.Markup)
	}
	if !strings.HasSuffix(got.Markup, "</svg>") {
		t.Fatalf("expected unprefixed closing tag, got %s", got.Markup)
	}
	if !strings.Contains(got.Markup, `xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("expected default namespace, got %s", got.Markup)
	}
}

func TestCalibrateSVGWithoutRoot(t *testing.T) {
	_, err := background.Calibrate([]byte(`<?xml version="1.0"?><html><body/></html>`))
	var malformed *background.MalformedBackgroundError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedBackgroundError, got %v", err)
	}
}

func TestCalibrateRaster(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 800, 600))); err != nil {
		t.Fatalf("encode png: %v", err)
	}

	got, err := background.Calibrate(buf.Bytes())
	if err != nil {
		t.Fatalf("calibrate: %v", err)
	}
	want := background.Calibration{
		Type:       background.ImageTypeRaster,
		Dimensions: geometry.Dimensions{Width: 800, Height: 600},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("calibration mismatch (-want +got):\n%s", diff)
	}
}

func TestCalibrateRasterRejectsGarbage(t *testing.T) {
	_, err := background.CalibrateRaster([]byte("not an image"))
	var malformed *background.MalformedBackgroundError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedBackgroundError, got %v", err)
	}
}

func TestCalibrateSizeRejectsEmpty(t *testing.T) {
	if _, err := background.CalibrateSize(0, 10); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestIsSVG(t *testing.T) {
	cases := map[string]bool{
		"<?xml version=\"1.0\"?><svg/>": true,
		"  \n<svg></svg>":               true,
		"\x89PNG\r\n":                   false,
		"":                              false,
	}
	for in, want := range cases {
		if got := background.IsSVG([]byte(in)); got != want {
			t.Fatalf("IsSVG(%q) = %v, want %v", in, got, want)
		}
	}
}
