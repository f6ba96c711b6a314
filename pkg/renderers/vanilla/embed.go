package vanilla

import (
	"embed"
	"io/fs"

	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla/components"
)

//go:embed templates/components/*.tmpl
var embeddedTemplates embed.FS

//go:embed assets/*
var embeddedAssets embed.FS

// StylesheetName is the embedded component stylesheet.
const StylesheetName = components.StylesheetName

// TemplatesFS exposes the embedded template bundle so hosts can render the
// component with their own engine or copy it as a starting point.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded CSS so callers can serve it over HTTP.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		return embeddedAssets
	}
	return sub
}

func embeddedStylesheet(name string) string {
	data, err := fs.ReadFile(embeddedAssets, "assets/"+name)
	if err != nil {
		return ""
	}
	return string(data)
}
