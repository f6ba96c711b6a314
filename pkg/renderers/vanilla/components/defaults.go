package components

import (
	"strings"
)

const (
	templatePrefix = "templates/components/"

	// StylesheetName is the asset the sketchpad component depends on.
	StylesheetName = "sketchpad.css"
)

// NewDefaultRegistry constructs a registry holding the built-in components.
func NewDefaultRegistry() *Registry {
	registry := New()

	registry.MustRegister(NameSketchpad, Descriptor{
		Renderer:    sketchpadRenderer(PartialSketchpad, templatePrefix+"sketchpad.tmpl"),
		Stylesheets: []string{StylesheetName},
		Scripts: []Script{
			{Inline: toolbarScript},
		},
	})

	return registry
}

// resolvePartial lets a theme point a component at its own template.
func resolvePartial(partials map[string]string, partialKey, templateName string) string {
	if partials == nil {
		return templateName
	}
	if candidate := strings.TrimSpace(partials[partialKey]); candidate != "" {
		return candidate
	}
	return templateName
}

func componentControlID(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ""
	}
	return "sp-" + trimmed
}

// toolbarScript keeps the toolbar usable before the drawing runtime boots:
// mode buttons toggle their active state and every click is re-dispatched
// as a sketchpad:action event on the component root.
const toolbarScript = `(function(){
  function wire(root){
    if (root.dataset.sketchpadWired) return;
    root.dataset.sketchpadWired = "1";
    root.addEventListener("click", function(event){
      var button = event.target.closest("[data-sketchpad-key]");
      if (!button || !root.contains(button)) return;
      var group = button.getAttribute("data-sketchpad-group");
      if (group === "modes") {
        root.querySelectorAll('[data-sketchpad-group="modes"]').forEach(function(el){
          el.classList.toggle("active", el === button);
        });
      }
      root.dispatchEvent(new CustomEvent("sketchpad:action", {
        bubbles: true,
        detail: {group: group, key: button.getAttribute("data-sketchpad-key")}
      }));
    });
    root.addEventListener("change", function(event){
      var input = event.target.closest("[data-sketchpad-input]");
      if (!input) return;
      root.dispatchEvent(new CustomEvent("sketchpad:style", {
        bubbles: true,
        detail: {key: input.getAttribute("data-sketchpad-input"), value: input.value}
      }));
    });
  }
  document.querySelectorAll('[data-component="sketchpad"]').forEach(wire);
})();`
