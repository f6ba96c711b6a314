package vanilla

import (
	"maps"
	"slices"
	"strings"

	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla/components"
)

func componentControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "sp-" + trimmed
}

func componentLabelID(name string) string {
	controlID := componentControlID(name)
	if controlID == "" {
		return ""
	}
	return controlID + "-label"
}

// sanitizeClassList drops sp- prefixed tokens, which are reserved for ids.
func sanitizeClassList(value string) string {
	tokens := strings.Fields(value)
	keep := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "sp-") {
			continue
		}
		keep = append(keep, token)
	}
	return strings.Join(keep, " ")
}

// resolveComponentName picks the component for a field: the explicit
// component, then the "component" UI hint, then the sketchpad.
func resolveComponentName(field model.Field) string {
	if name := strings.TrimSpace(field.Component); name != "" {
		return name
	}
	if name := strings.TrimSpace(field.Hint("component")); name != "" {
		return name
	}
	return components.NameSketchpad
}

func sortedKeys(in map[string]string) []string {
	return slices.Sorted(maps.Keys(in))
}
