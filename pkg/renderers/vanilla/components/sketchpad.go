package components

import (
	"bytes"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad/modes"
)

// DefaultIconClass maps an icon name onto Font Awesome classes.
func DefaultIconClass(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	return "fa fa-" + name
}

func sketchpadRenderer(partialKey, templateName string) Renderer {
	return func(buf *bytes.Buffer, field model.Field, data ComponentData) error {
		if data.Template == nil {
			return fmt.Errorf("components: template renderer not configured for %q", templateName)
		}

		component, err := config.FromField(field)
		if err != nil {
			return fmt.Errorf("components: %w", err)
		}

		payload, err := sketchpadPayload(field, component, data)
		if err != nil {
			return err
		}

		resolved := resolvePartial(data.ThemePartials, partialKey, templateName)
		rendered, err := data.Template.RenderTemplate(resolved, payload)
		if err != nil {
			return fmt.Errorf("components: render template %q: %w", resolved, err)
		}
		buf.WriteString(rendered)
		return nil
	}
}

func sketchpadPayload(field model.Field, component config.Component, data ComponentData) (map[string]any, error) {
	value := data.Value
	if value == nil {
		value = field.Value
	}
	hidden, err := render.ValueField(component.Key, value)
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}

	style := themedStyle(component, data.ThemeTokens)
	registry := data.Modes
	if registry == nil {
		registry = modes.NewRegistry()
	}
	iconClass := data.IconClass
	if iconClass == nil {
		iconClass = DefaultIconClass
	}

	id := componentControlID(component.Key)
	payload := map[string]any{
		"id":         id,
		"name":       component.Key,
		"label":      component.Label,
		"image_type": component.ImageType,
		"image_url":  component.ImageURL,
		"has_size":   !component.UseBackgroundDimensions(),
		"width":      geometry.FormatNumber(float64(component.Width)),
		"height":     geometry.FormatNumber(float64(component.Height)),
		"zoom":       geometry.FormatNumber(component.ZoomFactor()),
		"style": map[string]any{
			"stroke":    style.Stroke,
			"fill":      style.Fill,
			"linewidth": geometry.FormatNumber(style.LineWidth),
			"circle":    geometry.FormatNumber(style.CircleSize),
		},
		"toolbar":       toolbarPayload(id, registry, style, data.Localizer, iconClass),
		"value":         hidden.Value,
		"hidden_fields": hiddenPayload(data.HiddenFields),
		"locale":        data.Localizer.Locale,
		"loading":       data.Localizer.T("sketchpad.loading", "Loading background"),
		"toolbar_label": data.Localizer.T("sketchpad.toolbar", "Drawing tools"),
	}
	return payload, nil
}

// themedStyle applies theme colour tokens where the component kept the
// builder default colours.
func themedStyle(component config.Component, tokens map[string]string) sketchpad.Style {
	style := component.Style()
	defaults := config.Defaults()
	if token := strings.TrimSpace(tokens[TokenStroke]); token != "" && component.DefaultStroke == defaults.DefaultStroke {
		style.Stroke = token
	}
	if token := strings.TrimSpace(tokens[TokenFill]); token != "" && component.DefaultFill == defaults.DefaultFill {
		style.Fill = token
	}
	return style
}

func toolbarPayload(id string, registry *sketchpad.Registry, style sketchpad.Style, t render.Localizer, iconClass func(string) string) []map[string]any {
	initial := registry.Initial()
	groups := sketchpad.Toolbar(registry)
	out := make([]map[string]any, 0, len(groups))
	for _, group := range groups {
		buttons := make([]map[string]any, 0, len(group.Buttons))
		for _, button := range group.Buttons {
			entry := map[string]any{
				"key":        button.Key,
				"group":      group.Name,
				"title":      t.T(button.TitleKey, button.Title),
				"icon_class": iconClass(button.Icon),
				"active":     group.Name == sketchpad.GroupModes && button.Key == initial,
			}
			if group.Name == sketchpad.GroupStyles {
				entry["input_id"] = id + "-" + button.InputKey()
				entry["input_key"] = button.InputKey()
				entry["input_type"], entry["value"] = styleInput(button, style)
			}
			buttons = append(buttons, entry)
		}
		out = append(out, map[string]any{
			"name":    group.Name,
			"buttons": buttons,
		})
	}
	return out
}

// styleInput picks the input control for a style button. Colour pickers need
// #rrggbb values, so colours they cannot represent use a text input.
func styleInput(button sketchpad.Button, style sketchpad.Style) (string, string) {
	value := style.Value(button.Key)
	if button.Input {
		return "number", value
	}
	parsed, err := colorful.Hex(value)
	if err != nil {
		return "text", value
	}
	return "color", parsed.Hex()
}

func hiddenPayload(fields map[string]string) []map[string]any {
	sorted := render.SortedHiddenFields(fields)
	out := make([]map[string]any, 0, len(sorted))
	for _, field := range sorted {
		out = append(out, map[string]any{"name": field.Name, "value": field.Value})
	}
	return out
}
