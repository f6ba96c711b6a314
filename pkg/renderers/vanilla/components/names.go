package components

// Canonical component names used by the default registry.
const (
	NameSketchpad = "sketchpad"
)

// Theme partial keys and tokens the sketchpad component honours.
const (
	PartialSketchpad = "forms.sketchpad"
	TokenStroke      = "sketchpad.stroke"
	TokenFill        = "sketchpad.fill"
)
