package export

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

const pdfBackgroundImage = "background"

// PDFOptions tunes PDF output.
type PDFOptions struct {
	// Uncompressed leaves page content streams readable, for debugging and
	// inspection.
	Uncompressed bool
}

// PDF writes a single page sized to the logical viewBox in points. The
// background is embedded as a raster image; shapes are drawn as vector
// paths.
func (d Document) PDF(w io.Writer) error {
	return d.WritePDF(w, PDFOptions{})
}

// WritePDF is PDF with options.
func (d Document) WritePDF(w io.Writer, opts PDFOptions) error {
	if !d.ViewBox.Valid() {
		return fmt.Errorf("export: viewBox %q has no area", d.ViewBox.ViewBox())
	}

	// portrait keeps the custom size as given; landscape would swap it
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: d.ViewBox.Width, Ht: d.ViewBox.Height},
	})
	pdf.SetCompression(!opts.Uncompressed)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if len(d.Background) > 0 {
		if err := d.embedBackground(pdf); err != nil {
			return err
		}
	}

	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	for _, p := range d.Primitives {
		d.drawPrimitive(pdf, p)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: write pdf: %w", err)
	}
	return nil
}

func (d Document) embedBackground(pdf *gofpdf.Fpdf) error {
	// the background goes in as an unscaled PNG; shapes are drawn on top
	bg := Document{ViewBox: d.ViewBox, BackgroundType: d.BackgroundType, Background: d.Background}
	img, err := bg.Raster(PNGOptions{})
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("export: encode pdf background: %w", err)
	}

	options := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(pdfBackgroundImage, options, &buf)
	pdf.ImageOptions(pdfBackgroundImage, 0, 0, d.ViewBox.Width, d.ViewBox.Height, false, options, 0, "")
	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export: embed pdf background: %w", err)
	}
	return nil
}

func (d Document) drawPrimitive(pdf *gofpdf.Fpdf, p sketchpad.Primitive) {
	stroke, hasStroke := parseColour(p.Stroke)
	fill, hasFill := parseColour(p.Fill)
	if hasStroke {
		pdf.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	}
	if hasFill {
		pdf.SetFillColor(int(fill.R), int(fill.G), int(fill.B))
	}
	if p.LineWidth > 0 {
		pdf.SetLineWidth(p.LineWidth)
	}

	style := pdfStyle(hasStroke, hasFill)
	if style == "" {
		return
	}
	alpha := 1.0
	switch {
	case hasStroke:
		alpha = float64(stroke.A) / 0xff
	case hasFill:
		alpha = float64(fill.A) / 0xff
	}
	pdf.SetAlpha(alpha, "Normal")
	pt := func(q geometry.Point) (float64, float64) {
		return q.X - d.ViewBox.MinX, q.Y - d.ViewBox.MinY
	}

	switch p.Kind {
	case sketchpad.PrimitivePath, sketchpad.PrimitiveLine:
		if !hasStroke || len(p.Points) == 0 {
			return
		}
		x, y := pt(p.Points[0])
		pdf.MoveTo(x, y)
		if len(p.Points) == 1 {
			pdf.LineTo(x, y)
		}
		for _, q := range p.Points[1:] {
			pdf.LineTo(pt(q))
		}
		pdf.DrawPath("D")
	case sketchpad.PrimitiveRect:
		if len(p.Points) == 0 {
			return
		}
		x, y := pt(p.Points[0])
		pdf.Rect(x, y, p.Width, p.Height, style)
	case sketchpad.PrimitiveCircle:
		if len(p.Points) == 0 {
			return
		}
		x, y := pt(p.Points[0])
		pdf.Circle(x, y, p.Radius, style)
	}
}

func pdfStyle(stroke, fill bool) string {
	switch {
	case stroke && fill:
		return "FD"
	case fill:
		return "F"
	case stroke:
		return "D"
	}
	return ""
}
