package background

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"regexp"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

// ImageType identifies how a background was calibrated.
type ImageType string

const (
	ImageTypeRaster ImageType = "image"
	ImageTypeSVG    ImageType = "svg"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Calibration is the outcome of loading a background: the logical drawing
// space plus, for SVG backgrounds, the rewritten markup to insert into the
// background container.
type Calibration struct {
	Type       ImageType
	Dimensions geometry.Dimensions
	Markup     string
}

// Calibrate inspects the payload and dispatches to the SVG or raster path.
func Calibrate(data []byte) (Calibration, error) {
	if IsSVG(data) {
		return CalibrateSVG(data)
	}
	return CalibrateRaster(data)
}

// IsSVG reports whether the payload looks like XML/SVG markup rather than an
// encoded raster image.
func IsSVG(data []byte) bool {
	trimmed := bytes.TrimLeft(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")), " \t\r\n")
	for _, prefix := range []string{"<?xml", "<svg", "<!DOCTYPE svg", "<!--"} {
		if bytes.HasPrefix(trimmed, []byte(prefix)) {
			return true
		}
	}
	return false
}

// CalibrateRaster decodes only the image header and uses the natural pixel
// size as the logical drawing space.
func CalibrateRaster(data []byte) (Calibration, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Calibration{}, &MalformedBackgroundError{Reason: "decode raster image", Err: err}
	}
	calibration, err := CalibrateSize(cfg.Width, cfg.Height)
	if err != nil {
		return Calibration{}, fmt.Errorf("background: %s image: %w", format, err)
	}
	return calibration, nil
}

// CalibrateSize builds a raster calibration from an already known natural
// size, for hosts that loaded the image element themselves.
func CalibrateSize(width, height int) (Calibration, error) {
	if width <= 0 || height <= 0 {
		return Calibration{}, &MalformedBackgroundError{
			Reason: fmt.Sprintf("image size %dx%d must be positive", width, height),
		}
	}
	return Calibration{
		Type: ImageTypeRaster,
		Dimensions: geometry.Dimensions{
			Width:  float64(width),
			Height: float64(height),
		},
	}, nil
}

// attributeDefaults lists the fallbacks used when an SVG declares no viewBox.
var attributeDefaults = []struct {
	name  string
	value float64
}{
	{name: "x", value: 0},
	{name: "y", value: 0},
	{name: "width", value: 640},
	{name: "height", value: 480},
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// CalibrateSVG locates the first <svg> element, derives the logical drawing
// space from its viewBox (or x/y/width/height attributes), strips the
// explicit size so it scales with its container and rewrites the viewBox.
// Only the <svg> element subtree is returned as markup.
func CalibrateSVG(data []byte) (Calibration, error) {
	root, err := locateSVG(data)
	if err != nil {
		return Calibration{}, err
	}

	dims := svgDimensions(root.start.Attr)
	if !dims.Valid() {
		return Calibration{}, &MalformedBackgroundError{
			Reason: fmt.Sprintf("svg viewBox %q has no area", dims.ViewBox()),
		}
	}

	var out bytes.Buffer
	writeStartTag(&out, root.start, dims, root.selfClosing)
	if !root.selfClosing {
		inner := data[root.tagEnd:root.end]
		if root.start.Name.Space != "" {
			// the closing tag carries the same prefix as the opening one
			if idx := bytes.LastIndex(inner, []byte("</")); idx >= 0 {
				inner = append(append([]byte(nil), inner[:idx]...), "</svg>"...)
			}
		}
		out.Write(inner)
	}

	return Calibration{
		Type:       ImageTypeSVG,
		Dimensions: dims,
		Markup:     out.String(),
	}, nil
}

type svgRoot struct {
	start       xml.StartElement
	tagEnd      int64
	end         int64
	selfClosing bool
}

func locateSVG(data []byte) (svgRoot, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	decoder.Entity = xml.HTMLEntity

	for {
		tok, err := decoder.RawToken()
		if errors.Is(err, io.EOF) {
			return svgRoot{}, &MalformedBackgroundError{Reason: "markup does not contain an <svg> element"}
		}
		if err != nil {
			return svgRoot{}, &MalformedBackgroundError{Reason: "parse svg markup", Err: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "svg" {
			continue
		}

		root := svgRoot{start: start.Copy(), tagEnd: decoder.InputOffset()}
		depth := 1
		for depth > 0 {
			inner, err := decoder.RawToken()
			if err != nil {
				return svgRoot{}, &MalformedBackgroundError{Reason: "unterminated <svg> element", Err: err}
			}
			switch inner.(type) {
			case xml.StartElement:
				depth++
			case xml.EndElement:
				depth--
			}
		}
		root.end = decoder.InputOffset()
		root.selfClosing = root.end == root.tagEnd
		return root, nil
	}
}

func svgDimensions(attrs []xml.Attr) geometry.Dimensions {
	if raw, ok := lookupAttr(attrs, "viewBox"); ok && strings.TrimSpace(raw) != "" {
		if dims, err := geometry.ParseViewBox(raw); err == nil {
			return dims
		}
	}

	values := make([]float64, len(attributeDefaults))
	for idx, attr := range attributeDefaults {
		values[idx] = attr.value
		raw, ok := lookupAttr(attrs, attr.name)
		if !ok {
			continue
		}
		// zero or unparsable values fall back to the default
		if parsed := parseLeadingFloat(raw); parsed != 0 {
			values[idx] = parsed
		}
	}
	return geometry.Dimensions{MinX: values[0], MinY: values[1], Width: values[2], Height: values[3]}
}

func parseLeadingFloat(raw string) float64 {
	match := leadingNumber.FindString(strings.TrimSpace(raw))
	if match == "" {
		return 0
	}
	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0
	}
	return value
}

func lookupAttr(attrs []xml.Attr, name string) (string, bool) {
	for _, attr := range attrs {
		if attr.Name.Space == "" && attr.Name.Local == name {
			return attr.Value, true
		}
	}
	return "", false
}

func writeStartTag(buf *bytes.Buffer, start xml.StartElement, dims geometry.Dimensions, selfClosing bool) {
	buf.WriteString("<svg")

	hasDefaultNS := false
	wroteViewBox := false
	for _, attr := range start.Attr {
		if attr.Name.Space == "" {
			switch attr.Name.Local {
			case "width", "height":
				continue
			case "viewBox":
				writeAttr(buf, "viewBox", dims.ViewBox())
				wroteViewBox = true
				continue
			case "xmlns":
				hasDefaultNS = true
			}
		}
		writeAttr(buf, qualifiedName(attr.Name), attr.Value)
	}
	if start.Name.Space != "" && !hasDefaultNS {
		writeAttr(buf, "xmlns", svgNamespace)
	}
	if !wroteViewBox {
		writeAttr(buf, "viewBox", dims.ViewBox())
	}

	if selfClosing {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">")
}

func writeAttr(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	_ = xml.EscapeText(buf, []byte(value))
	buf.WriteByte('"')
}

func qualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}
