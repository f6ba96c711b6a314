package background

import (
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	svgPolicyOnce sync.Once
	svgPolicy     *bluemonday.Policy
)

var (
	svgCamelElements = camelCase("clipPath", "linearGradient", "radialGradient")
	svgCamelAttrs    = camelCase("viewBox", "preserveAspectRatio", "clipPathUnits", "gradientUnits", "gradientTransform")

	lowerElementPattern = regexp.MustCompile(`(</?)(clippath|lineargradient|radialgradient)\b`)
	lowerAttrPattern    = regexp.MustCompile(`(\s)(viewbox|preserveaspectratio|clippathunits|gradientunits|gradienttransform)="`)
)

// Sanitize strips scripts, event handlers and foreign elements from SVG
// markup before it is inserted into the host document or rasterised.
func Sanitize(markup string) string {
	trimmed := strings.TrimSpace(markup)
	if trimmed == "" {
		return ""
	}
	return restoreSVGCase(strings.TrimSpace(svgSanitizer().Sanitize(trimmed)))
}

// restoreSVGCase puts back the camelCase names the HTML tokenizer folds.
// Strict XML consumers such as the rasteriser ignore "viewbox".
func restoreSVGCase(markup string) string {
	markup = lowerElementPattern.ReplaceAllStringFunc(markup, func(match string) string {
		sub := lowerElementPattern.FindStringSubmatch(match)
		return sub[1] + svgCamelElements[sub[2]]
	})
	return lowerAttrPattern.ReplaceAllStringFunc(markup, func(match string) string {
		sub := lowerAttrPattern.FindStringSubmatch(match)
		return sub[1] + svgCamelAttrs[sub[2]] + `="`
	})
}

func camelCase(names ...string) map[string]string {
	out := make(map[string]string, len(names))
	for _, name := range names {
		out[strings.ToLower(name)] = name
	}
	return out
}

func svgSanitizer() *bluemonday.Policy {
	svgPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		shapes := []string{"path", "circle", "rect", "line", "polyline", "polygon", "ellipse"}
		policy.AllowElements(shapes...)
		policy.AllowElements(
			"svg", "g", "title", "desc", "defs", "use", "clipPath", "text", "tspan",
			"linearGradient", "radialGradient", "stop", "symbol",
		)

		policy.AllowAttrs(
			"xmlns", "xmlns:xlink", "viewBox", "preserveAspectRatio", "fill", "stroke",
			"stroke-width", "aria-hidden", "role", "focusable", "class", "version",
		).OnElements("svg")

		policy.AllowAttrs("href", "xlink:href", "x", "y", "width", "height").OnElements("use")

		presentation := []string{
			"fill", "fill-opacity", "fill-rule", "stroke", "stroke-width", "stroke-opacity",
			"stroke-linecap", "stroke-linejoin", "stroke-dasharray", "opacity", "transform",
			"clip-path", "class", "id",
		}
		policy.AllowAttrs(presentation...).OnElements(append(shapes, "g", "text", "tspan", "symbol")...)
		policy.AllowAttrs(
			"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
			"points", "rx", "ry", "width", "height",
		).OnElements(shapes...)
		policy.AllowAttrs("x", "y", "dx", "dy", "font-size", "font-family", "text-anchor").OnElements("text", "tspan")

		policy.AllowAttrs("id", "clipPathUnits").OnElements("clipPath")
		policy.AllowAttrs("id").OnElements("defs")
		policy.AllowAttrs("id", "viewBox").OnElements("symbol")
		policy.AllowAttrs("id", "x1", "y1", "x2", "y2", "cx", "cy", "r", "gradientUnits", "gradientTransform").
			OnElements("linearGradient", "radialGradient")
		policy.AllowAttrs("offset", "stop-color", "stop-opacity").OnElements("stop")

		svgPolicy = policy
	})
	return svgPolicy
}
