package render

import (
	"context"

	"github.com/goliatone/go-sketchpad/pkg/model"
)

// Renderer converts a component field into a byte representation (HTML, SVG).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, field model.Field, options RenderOptions) ([]byte, error)
}
