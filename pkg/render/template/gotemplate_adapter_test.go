package template_test

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/render/template/gotemplate"
	"github.com/goliatone/go-sketchpad/pkg/testsupport"
)

//go:embed testdata/templates/*.tmpl
var embeddedTemplates embed.FS

func renderGolden(t *testing.T, golden string, render func(io.Writer) (string, error)) {
	t.Helper()

	result, written := testsupport.CaptureTemplateOutput(t, render)
	if result != written {
		t.Fatalf("returned and written output differ\nresult: %q\nwriter: %q", result, written)
	}
	testsupport.AssertGoldenString(t, filepath.Join("testdata", golden), result)
}

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)
	renderGolden(t, "hello.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})
}

func TestGoTemplateEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t)
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	renderGolden(t, "use-global.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-global", nil, w)
	})
}

func TestGoTemplateEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t)
	err := engine.RegisterFilter("shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}
	if err := engine.RegisterFilter("shout", func(any, any) (any, error) { return nil, nil }); err == nil {
		t.Fatalf("expected duplicate filter error")
	}

	renderGolden(t, "use-filter.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("use-filter", map[string]any{"name": "Ada"}, w)
	})
}

func TestGoTemplateEngine_NumberFilterWithStruct(t *testing.T) {
	engine := newEngine(t)
	dims := geometry.Dimensions{Width: 800, Height: 600.5}

	renderGolden(t, "viewbox.golden", func(w io.Writer) (string, error) {
		return engine.RenderTemplate("viewbox.tmpl", dims, w)
	})
}

func TestGoTemplateEngine_RenderInline(t *testing.T) {
	engine := newEngine(t)
	got, err := engine.Render("{{ items|length }} items", map[string]any{"items": []any{1, 2, 3}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "3 items" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without templates")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}

	engine, err := gotemplate.New(gotemplate.WithFS(templatesFS))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}
