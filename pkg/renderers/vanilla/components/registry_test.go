package components_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla/components"
)

func noopRenderer(*bytes.Buffer, model.Field, components.ComponentData) error { return nil }

func TestRegistryDescriptorClone(t *testing.T) {
	reg := components.New()
	if err := reg.Register("test", components.Descriptor{Renderer: noopRenderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}
	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if diff := cmp.Diff([]string{"/a.css"}, original.Stylesheets); diff != "" {
		t.Fatalf("registry descriptor mutated (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	reg := components.New()
	if err := reg.Register("  ", components.Descriptor{Renderer: noopRenderer}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("nil", components.Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistryAssetsDeduplicates(t *testing.T) {
	reg := components.New()
	reg.MustRegister("sketchpad", components.Descriptor{
		Renderer:    noopRenderer,
		Stylesheets: []string{"/shared.css", "/sketchpad.css"},
		Scripts:     []components.Script{{Src: "/shared.js"}, {Inline: "boot()"}},
	})
	reg.MustRegister("legend", components.Descriptor{
		Renderer:    noopRenderer,
		Stylesheets: []string{"/shared.css", "/legend.css"},
		Scripts:     []components.Script{{Src: "/shared.js"}, {Inline: "boot()"}},
	})

	styles, scripts := reg.Assets([]string{"sketchpad", "legend", "missing"})
	if diff := cmp.Diff([]string{"/shared.css", "/sketchpad.css", "/legend.css"}, styles); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if len(scripts) != 2 {
		t.Fatalf("expected 2 unique scripts, got %d: %v", len(scripts), scripts)
	}
}

func TestRegistryCloneIsIsolated(t *testing.T) {
	base := components.NewDefaultRegistry()
	clone := base.Clone()
	clone.MustRegister("legend", components.Descriptor{Renderer: noopRenderer})

	if diff := cmp.Diff([]string{"sketchpad"}, base.Names()); diff != "" {
		t.Fatalf("base registry changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"legend", "sketchpad"}, clone.Names()); diff != "" {
		t.Fatalf("clone names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistrySketchpad(t *testing.T) {
	desc, ok := components.NewDefaultRegistry().Descriptor(" Sketchpad ")
	if !ok {
		t.Fatalf("sketchpad not registered")
	}
	if diff := cmp.Diff([]string{components.StylesheetName}, desc.Stylesheets); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
	if len(desc.Scripts) != 1 || desc.Scripts[0].Inline == "" {
		t.Fatalf("expected inline bootstrap script, got %#v", desc.Scripts)
	}
}

func TestDefaultIconClass(t *testing.T) {
	if got := components.DefaultIconClass("undo"); got != "fa fa-undo" {
		t.Fatalf("unexpected icon class %q", got)
	}
	if got := components.DefaultIconClass(" "); got != "" {
		t.Fatalf("expected empty class, got %q", got)
	}
}
