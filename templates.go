package sketchpad

import (
	"io/fs"

	vanilla "github.com/goliatone/go-sketchpad/pkg/renderers/vanilla"
)

// EmbeddedTemplates exposes the built-in component templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// EmbeddedAssets exposes the component stylesheet for hosts that serve it
// themselves.
//
// Typical mount:
//
//	mux.Handle("/sketchpad/",
//	  http.StripPrefix("/sketchpad/",
//	    http.FileServerFS(sketchpad.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return vanilla.AssetsFS()
}
