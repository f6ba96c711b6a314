package export_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/export"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad/modes"
	"github.com/goliatone/go-sketchpad/pkg/testsupport"
)

func rectangleDoc(t *testing.T) export.Document {
	t.Helper()
	shape := sketchpad.NewShape(modes.NameRectangle, map[string]any{
		"x": 10.0, "y": 10.0, "width": 20.0, "height": 10.0,
		"stroke": "#ff0000", "fill": "#00ff00", "linewidth": 1.0,
	})
	doc, err := export.FromShapes(modes.NewRegistry(), geometry.Dimensions{Width: 40, Height: 30}, []sketchpad.Shape{shape})
	if err != nil {
		t.Fatalf("from shapes: %v", err)
	}
	return doc
}

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func assertRGBA(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
	if got != want {
		t.Fatalf("pixel (%d,%d) = %+v, want %+v", x, y, got, want)
	}
}

func TestPNGHasLogicalSize(t *testing.T) {
	doc := rectangleDoc(t)

	var buf bytes.Buffer
	if err := doc.PNG(&buf, export.PNGOptions{}); err != nil {
		t.Fatalf("png: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 40 || img.Bounds().Dy() != 30 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	assertRGBA(t, img, 20, 15, color.RGBA{G: 0xff, A: 0xff})
	assertRGBA(t, img, 2, 2, color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff})
}

func TestPNGScale(t *testing.T) {
	img, err := rectangleDoc(t).Raster(export.PNGOptions{Scale: 2})
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	if img.Bounds().Dx() != 80 || img.Bounds().Dy() != 60 {
		t.Fatalf("unexpected size %v", img.Bounds())
	}
	assertRGBA(t, img, 40, 30, color.RGBA{G: 0xff, A: 0xff})
}

func TestRasterBackground(t *testing.T) {
	red := color.RGBA{R: 0xff, A: 0xff}
	doc := export.Document{ViewBox: geometry.Dimensions{Width: 8, Height: 6}}.
		WithBackground(solidPNG(t, 4, 3, red))
	if doc.BackgroundType != background.ImageTypeRaster {
		t.Fatalf("expected raster background, got %q", doc.BackgroundType)
	}

	img, err := doc.Raster(export.PNGOptions{})
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	assertRGBA(t, img, 4, 3, red)
}

func TestSVGBackground(t *testing.T) {
	markup := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#0000ff"/></svg>`
	doc := export.Document{ViewBox: geometry.Dimensions{Width: 10, Height: 10}}.WithBackground([]byte(markup))
	if doc.BackgroundType != background.ImageTypeSVG {
		t.Fatalf("expected svg background, got %q", doc.BackgroundType)
	}

	img, err := doc.Raster(export.PNGOptions{})
	if err != nil {
		t.Fatalf("raster: %v", err)
	}
	assertRGBA(t, img, 5, 5, color.RGBA{B: 0xff, A: 0xff})
}

func TestPDF(t *testing.T) {
	doc := rectangleDoc(t).WithBackground(solidPNG(t, 4, 3, color.Black))

	var buf bytes.Buffer
	if err := doc.PDF(&buf); err != nil {
		t.Fatalf("pdf: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatalf("output is not a PDF: %q", buf.String()[:16])
	}
}

func TestPDFDrawsRGBAStroke(t *testing.T) {
	render := func(stroke string) string {
		t.Helper()
		shape := sketchpad.NewShape(modes.NameLine, map[string]any{
			"x1": 0.0, "y1": 0.0, "x2": 20.0, "y2": 10.0,
			"stroke": stroke, "linewidth": 2.0,
		})
		doc, err := export.FromShapes(modes.NewRegistry(), geometry.Dimensions{Width: 40, Height: 30}, []sketchpad.Shape{shape})
		if err != nil {
			t.Fatalf("from shapes: %v", err)
		}
		var buf bytes.Buffer
		if err := doc.WritePDF(&buf, export.PDFOptions{Uncompressed: true}); err != nil {
			t.Fatalf("pdf: %v", err)
		}
		return buf.String()
	}

	out := render("rgba(255, 0, 0, 0.5)")
	for _, want := range []string{"1.000 0.000 0.000 RG", "20.00 20.00 l", "/GS"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in pdf content", want)
		}
	}
	if out := render("rgb(0%, 100%, 0%)"); !strings.Contains(out, "0.000 1.000 0.000 RG") {
		t.Fatalf("expected percentage rgb stroke in pdf content")
	}
	if out := render("rgba(255, 0, 0, 0)"); strings.Contains(out, "20.00 20.00 l") {
		t.Fatalf("fully transparent stroke should not be drawn")
	}
}

func TestInvalidViewBox(t *testing.T) {
	doc := export.Document{}
	if _, err := doc.Raster(export.PNGOptions{}); err == nil {
		t.Fatalf("expected raster error")
	}
	if err := doc.PDF(&bytes.Buffer{}); err == nil {
		t.Fatalf("expected pdf error")
	}
	if _, err := export.FromShapes(modes.NewRegistry(), geometry.Dimensions{}, nil); err == nil {
		t.Fatalf("expected viewBox error")
	}
}

func TestFromShapesRejectsUnknownMode(t *testing.T) {
	_, err := export.FromShapes(modes.NewRegistry(), geometry.Dimensions{Width: 1, Height: 1},
		[]sketchpad.Shape{sketchpad.NewShape("eraser", nil)})
	var valueErr *sketchpad.ValueError
	if !errors.As(err, &valueErr) || valueErr.Mode != "eraser" {
		t.Fatalf("expected ValueError for eraser, got %v", err)
	}
	if !errors.Is(err, sketchpad.ErrUnknownMode) {
		t.Fatalf("expected ErrUnknownMode, got %v", err)
	}
}

func TestFromWidget(t *testing.T) {
	w, err := sketchpad.New(sketchpad.WithModes(modes.Defaults()...))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	defer w.Close()

	if _, err := export.FromWidget(w, nil); err == nil {
		t.Fatalf("expected error before calibration")
	}

	raster := solidPNG(t, 20, 10, color.White)
	if err := w.SetBackgroundImage(raster); err != nil {
		t.Fatalf("background: %v", err)
	}
	if err := w.Attach(sketchpad.Elements{Surface: sketchpad.NewSVGSurface()}); err != nil {
		t.Fatalf("attach: %v", err)
	}
	if err := w.SetValue([]sketchpad.Shape{sketchpad.NewShape(modes.NameCircle, map[string]any{
		"cx": 5.0, "cy": 5.0, "r": 2.0, "stroke": "black", "fill": "#ccc", "linewidth": 1.0,
	})}); err != nil {
		t.Fatalf("set value: %v", err)
	}

	doc, err := export.FromWidget(w, raster)
	if err != nil {
		t.Fatalf("from widget: %v", err)
	}
	if doc.ViewBox.Width != 20 || len(doc.Primitives) != 1 || len(doc.Background) == 0 {
		t.Fatalf("unexpected document %+v", doc)
	}
	if !strings.Contains(doc.SVG(), "<circle") {
		t.Fatalf("expected circle in %s", doc.SVG())
	}
}

func TestFromShapesReplaysFixture(t *testing.T) {
	shapes := testsupport.MustLoadShapes(t, filepath.Join("testdata", "floorplan.json"))
	doc, err := export.FromShapes(modes.NewRegistry(), geometry.Dimensions{Width: 40, Height: 30}, shapes)
	if err != nil {
		t.Fatalf("from shapes: %v", err)
	}

	var got []sketchpad.PrimitiveKind
	for _, p := range doc.Primitives {
		got = append(got, p.Kind)
	}
	want := []sketchpad.PrimitiveKind{
		sketchpad.PrimitivePath,
		sketchpad.PrimitiveLine,
		sketchpad.PrimitiveRect,
		sketchpad.PrimitiveCircle,
	}
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("primitive kinds mismatch (-want +got):\n%s", diff)
	}
}
