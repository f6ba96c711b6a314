package export

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"

	"github.com/goliatone/go-sketchpad/pkg/background"
)

// PNGOptions tunes raster output.
type PNGOptions struct {
	// Scale is output pixels per logical unit. Defaults to 1.
	Scale float64
	// Background fills the canvas before anything is drawn. Defaults to
	// white; use color.Transparent for a transparent canvas.
	Background color.Color
}

// Raster draws the document into an RGBA image sized to the logical
// viewBox times the scale.
func (d Document) Raster(opts PNGOptions) (*image.RGBA, error) {
	if !d.ViewBox.Valid() {
		return nil, fmt.Errorf("export: viewBox %q has no area", d.ViewBox.ViewBox())
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	fill := opts.Background
	if fill == nil {
		fill = color.White
	}

	w := int(math.Ceil(d.ViewBox.Width * scale))
	h := int(math.Ceil(d.ViewBox.Height * scale))
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(fill), image.Point{}, draw.Src)

	if len(d.Background) > 0 {
		if err := d.drawBackground(canvas); err != nil {
			return nil, err
		}
	}
	if len(d.Primitives) > 0 {
		if err := drawSVG(canvas, []byte(d.SVG())); err != nil {
			return nil, fmt.Errorf("export: draw shapes: %w", err)
		}
	}
	return canvas, nil
}

// PNG encodes the rasterised document.
func (d Document) PNG(w io.Writer, opts PNGOptions) error {
	img, err := d.Raster(opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("export: encode png: %w", err)
	}
	return nil
}

func (d Document) drawBackground(canvas *image.RGBA) error {
	if d.BackgroundType == background.ImageTypeSVG {
		if err := drawSVG(canvas, d.Background); err != nil {
			return fmt.Errorf("export: draw svg background: %w", err)
		}
		return nil
	}

	src, _, err := image.Decode(bytes.NewReader(d.Background))
	if err != nil {
		return fmt.Errorf("export: decode background: %w", err)
	}
	draw.CatmullRom.Scale(canvas, canvas.Bounds(), src, src.Bounds(), draw.Over, nil)
	return nil
}

// drawSVG scales markup onto the whole canvas. Elements oksvg cannot draw
// are skipped.
func drawSVG(canvas *image.RGBA, markup []byte) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(markup), oksvg.IgnoreErrorMode)
	if err != nil {
		return err
	}
	bounds := canvas.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	icon.SetTarget(0, 0, float64(w), float64(h))

	scanner := rasterx.NewScannerGV(w, h, canvas, bounds)
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1)
	return nil
}
