package sketchpad

import (
	pkgsketchpad "github.com/goliatone/go-sketchpad/pkg/sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad/modes"
)

// NewWidget constructs a widget with the built-in drawing modes registered.
// A WithRegistry option replaces them.
func NewWidget(options ...pkgsketchpad.Option) (*pkgsketchpad.Widget, error) {
	all := make([]pkgsketchpad.Option, 0, len(options)+1)
	all = append(all, pkgsketchpad.WithRegistry(modes.NewRegistry()))
	all = append(all, options...)
	return pkgsketchpad.New(all...)
}
