package sketchpad

import (
	internalLoader "github.com/goliatone/go-sketchpad/internal/background/loader"
	"github.com/goliatone/go-sketchpad/pkg/background"
)

// NewLoader constructs a background loader using the internal implementation
// while keeping the concrete type hidden from consumers.
func NewLoader(options ...background.LoaderOption) background.Loader {
	cfg := background.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}
