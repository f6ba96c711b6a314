package vanilla_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/fstest"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-sketchpad/pkg/config"
	"github.com/goliatone/go-sketchpad/pkg/model"
	"github.com/goliatone/go-sketchpad/pkg/render"
	"github.com/goliatone/go-sketchpad/pkg/renderers/vanilla"
	"github.com/goliatone/go-sketchpad/pkg/sketchpad"
)

func planField(t *testing.T, component config.Component, value []sketchpad.Shape) model.Field {
	t.Helper()
	if component.Key == "" {
		component.Key = "plan"
	}
	field, err := component.Field(value)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	return field
}

func renderField(t *testing.T, renderer *vanilla.Renderer, field model.Field, options render.RenderOptions) string {
	t.Helper()
	out, err := renderer.Render(context.Background(), field, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func newRenderer(t *testing.T, options ...vanilla.Option) *vanilla.Renderer {
	t.Helper()
	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	return renderer
}

func TestRendererToolbarButtons(t *testing.T) {
	renderer := newRenderer(t, vanilla.WithoutAssets())
	html := renderField(t, renderer, planField(t, config.Component{Label: "Floor plan"}, nil), render.RenderOptions{})

	counts := map[string]int{
		`data-sketchpad-group="modes"`:   5,
		`data-sketchpad-group="styles"`:  4,
		`data-sketchpad-group="actions"`: 3,
	}
	for needle, want := range counts {
		if got := strings.Count(html, needle); got != want {
			t.Fatalf("expected %d occurrences of %s, got %d\n%s", want, needle, got, html)
		}
	}

	for _, key := range []string{"pencil", "line", "rectangle", "circle", "pan", "undo", "redo", "clearAll"} {
		if !strings.Contains(html, `data-sketchpad-key="`+key+`"`) {
			t.Fatalf("missing toolbar button %q", key)
		}
	}
	if !strings.Contains(html, `class="sketchpad-button active" data-sketchpad-group="modes" data-sketchpad-key="pencil"`) {
		t.Fatalf("expected pencil to be the active mode:\n%s", html)
	}
	if strings.Count(html, "sketchpad-button active") != 1 {
		t.Fatalf("expected exactly one active button")
	}
	if !strings.Contains(html, `id="sp-plan"`) || !strings.Contains(html, `data-component="sketchpad"`) {
		t.Fatalf("expected component root:\n%s", html)
	}
	if !strings.Contains(html, `id="sp-plan-label">Floor plan</div>`) {
		t.Fatalf("expected label chrome:\n%s", html)
	}
	if !strings.Contains(html, `<input type="hidden" name="plan" value="[]" data-sketchpad-ref="value">`) {
		t.Fatalf("expected empty hidden value:\n%s", html)
	}
}

func TestRendererTranslatesTitles(t *testing.T) {
	renderer := newRenderer(t)
	translator := render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
		if locale == "de" && key == "sketchpad.undo" {
			return "Rückgängig", nil
		}
		return "", errors.New("missing")
	})

	html := renderField(t, renderer, planField(t, config.Component{}, nil), render.RenderOptions{
		Locale:     "de",
		Translator: translator,
	})

	if !strings.Contains(html, `title="Rückgängig"`) {
		t.Fatalf("expected translated undo title:\n%s", html)
	}
	if !strings.Contains(html, `title="Redo"`) {
		t.Fatalf("expected fallback redo title:\n%s", html)
	}
}

func TestRendererTemplateTranslator(t *testing.T) {
	files := fstest.MapFS{
		"templates/components/sketchpad.tmpl": &fstest.MapFile{
			Data: []byte(`<p data-locale="{{ current_locale(locale) }}">{{ translate(locale, "sketchpad.hint") }}</p>`),
		},
	}
	translator := render.TranslatorFunc(func(locale, key string, _ ...any) (string, error) {
		if locale == "fr" && key == "sketchpad.hint" {
			return "Dessinez ici", nil
		}
		return "", errors.New("missing")
	})
	renderer := newRenderer(t,
		vanilla.WithTemplatesFS(files),
		vanilla.WithTemplateTranslator(translator, render.TemplateI18nConfig{}),
		vanilla.WithoutAssets(),
	)

	html := renderField(t, renderer, planField(t, config.Component{}, nil), render.RenderOptions{Locale: "fr"})
	if !strings.Contains(html, `<p data-locale="fr">Dessinez ici</p>`) {
		t.Fatalf("expected translated partial:\n%s", html)
	}
}

func TestRendererIconClasses(t *testing.T) {
	renderer := newRenderer(t)
	field := planField(t, config.Component{}, nil)

	html := renderField(t, renderer, field, render.RenderOptions{})
	if !strings.Contains(html, `<i class="fa fa-trash" aria-hidden="true"></i>`) {
		t.Fatalf("expected default icon class:\n%s", html)
	}

	html = renderField(t, renderer, field, render.RenderOptions{
		IconClass: func(name string) string { return "bi bi-" + name },
	})
	if !strings.Contains(html, `<i class="bi bi-undo" aria-hidden="true"></i>`) {
		t.Fatalf("expected custom icon class:\n%s", html)
	}
	if strings.Contains(html, "fa fa-") {
		t.Fatalf("default icon classes leaked:\n%s", html)
	}
}

func TestRendererStyleInputs(t *testing.T) {
	renderer := newRenderer(t)
	html := renderField(t, renderer, planField(t, config.Component{
		DefaultStroke:    "#ff0000",
		DefaultFill:      "papayawhip",
		DefaultLineWidth: 2.5,
	}, nil), render.RenderOptions{})

	for _, want := range []string{
		`type="color" class="sketchpad-input" id="sp-plan-stroke-input" data-sketchpad-input="stroke" value="#ff0000"`,
		`type="text" class="sketchpad-input" id="sp-plan-fill-input" data-sketchpad-input="fill" value="papayawhip"`,
		`type="number" class="sketchpad-input" id="sp-plan-width-input" data-sketchpad-input="width" value="2.5"`,
		`data-stroke="#ff0000"`,
		`data-linewidth="2.5"`,
		`data-zoom="1"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in:\n%s", want, html)
		}
	}
}

func TestRendererValueAndHiddenFields(t *testing.T) {
	renderer := newRenderer(t)
	field := planField(t, config.Component{}, nil)
	value := []sketchpad.Shape{
		sketchpad.NewShape("line", map[string]any{"x1": 1.0, "y1": 2.0, "x2": 3.0, "y2": 4.0}),
	}

	html := renderField(t, renderer, field, render.RenderOptions{
		Values:       map[string]any{"plan": value},
		HiddenFields: map[string]string{"version": "3", "_csrf": "token"},
	})

	want := `value="[{&quot;mode&quot;:&quot;line&quot;,&quot;x1&quot;:1,&quot;x2&quot;:3,&quot;y1&quot;:2,&quot;y2&quot;:4}]"`
	if !strings.Contains(html, want) {
		t.Fatalf("expected escaped JSON value:\n%s", html)
	}
	csrf := strings.Index(html, `name="_csrf" value="token"`)
	version := strings.Index(html, `name="version" value="3"`)
	if csrf < 0 || version < 0 || csrf > version {
		t.Fatalf("expected sorted hidden fields:\n%s", html)
	}
}

func TestRendererFieldValueFallback(t *testing.T) {
	renderer := newRenderer(t)
	field := planField(t, config.Component{}, []sketchpad.Shape{
		sketchpad.NewShape("circle", map[string]any{"cx": 5.0}),
	})

	html := renderField(t, renderer, field, render.RenderOptions{})
	if !strings.Contains(html, `&quot;mode&quot;:&quot;circle&quot;`) {
		t.Fatalf("expected field value to be rendered:\n%s", html)
	}
}

func TestRendererThemeTokens(t *testing.T) {
	renderer := newRenderer(t)
	options := render.RenderOptions{Theme: &theme.RendererConfig{
		Theme: "acme",
		Tokens: map[string]string{
			"sketchpad.stroke": "#123456",
			"sketchpad.fill":   "#abcdef",
		},
		CSSVars: map[string]string{"--sketchpad-active": "#eee"},
	}}

	html := renderField(t, renderer, planField(t, config.Component{}, nil), options)
	for _, want := range []string{
		`data-stroke="#123456"`,
		`data-fill="#abcdef"`,
		`style="--sketchpad-active: #eee"`,
		`data-theme="acme"`,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %s in:\n%s", want, html)
		}
	}

	html = renderField(t, renderer, planField(t, config.Component{DefaultStroke: "#00ff00"}, nil), options)
	if !strings.Contains(html, `data-stroke="#00ff00"`) {
		t.Fatalf("explicit component stroke should win over theme token:\n%s", html)
	}
}

func TestRendererThemePartial(t *testing.T) {
	recorder := &recordingTemplateRenderer{}
	renderer := newRenderer(t, vanilla.WithTemplateRenderer(recorder), vanilla.WithoutAssets())

	_, err := renderer.Render(context.Background(), planField(t, config.Component{}, nil), render.RenderOptions{
		Theme: &theme.RendererConfig{Partials: map[string]string{
			"forms.sketchpad": "themes/acme/sketchpad.tmpl",
		}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(recorder.calls) != 1 || recorder.calls[0] != "themes/acme/sketchpad.tmpl" {
		t.Fatalf("theme partial not applied, got %v", recorder.calls)
	}

	recorder.calls = nil
	if _, err := renderer.Render(context.Background(), planField(t, config.Component{}, nil), render.RenderOptions{}); err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(recorder.calls) != 1 || recorder.calls[0] != "templates/components/sketchpad.tmpl" {
		t.Fatalf("expected default template, got %v", recorder.calls)
	}
}

func TestRendererAssets(t *testing.T) {
	field := planField(t, config.Component{}, nil)

	html := renderField(t, newRenderer(t), field, render.RenderOptions{})
	if !strings.HasPrefix(html, "<style>") || !strings.Contains(html, ".sketchpad-toolbar") {
		t.Fatalf("expected inline stylesheet first:\n%s", html)
	}
	if !strings.HasSuffix(html, "</script>") || !strings.Contains(html, "sketchpad:action") {
		t.Fatalf("expected bootstrap script last:\n%s", html)
	}

	html = renderField(t, newRenderer(t), field, render.RenderOptions{Theme: &theme.RendererConfig{
		AssetURL: func(key string) string {
			if key == vanilla.StylesheetName {
				return "/static/sketchpad.css"
			}
			return ""
		},
	}})
	if !strings.HasPrefix(html, `<link rel="stylesheet" href="/static/sketchpad.css">`) {
		t.Fatalf("expected linked stylesheet:\n%s", html)
	}

	html = renderField(t, newRenderer(t, vanilla.WithoutAssets()), field, render.RenderOptions{})
	if strings.Contains(html, "<style>") || strings.Contains(html, "<script") {
		t.Fatalf("expected no assets:\n%s", html)
	}
}

func TestRendererChromeClasses(t *testing.T) {
	renderer := newRenderer(t, vanilla.WithoutAssets(), vanilla.WithChromeClasses(vanilla.ChromeClasses{
		Field: "form-group sp-ignored",
	}))
	field := planField(t, config.Component{Label: "Plan"}, nil)
	field.Description = "Mark the damage"

	html := renderField(t, renderer, field, render.RenderOptions{})
	if !strings.HasPrefix(html, `<div class="form-group">`) {
		t.Fatalf("expected custom field class:\n%s", html)
	}
	if !strings.Contains(html, `<p class="sketchpad-description">Mark the damage</p>`) {
		t.Fatalf("expected description:\n%s", html)
	}
}

func TestRendererUnknownComponent(t *testing.T) {
	renderer := newRenderer(t)
	_, err := renderer.Render(context.Background(), model.Field{Name: "notes", Component: "textarea"}, render.RenderOptions{})
	if err == nil {
		t.Fatalf("expected error for unknown component")
	}
	if got := err.Error(); got != `vanilla renderer: component "textarea" not registered for field "notes"` {
		t.Fatalf("unexpected error: %s", got)
	}
}

func TestRendererRegistersByName(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(newRenderer(t, vanilla.WithoutAssets()))

	out, contentType, err := registry.Render(context.Background(), vanilla.Name, planField(t, config.Component{}, nil), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if contentType != "text/html; charset=utf-8" {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if !strings.Contains(string(out), `data-component="sketchpad"`) {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

type recordingTemplateRenderer struct {
	calls []string
}

func (r *recordingTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return r.RenderTemplate(name, data, out...)
}

func (r *recordingTemplateRenderer) RenderTemplate(name string, _ any, _ ...io.Writer) (string, error) {
	r.calls = append(r.calls, name)
	return "", nil
}

func (r *recordingTemplateRenderer) RenderString(string, any, ...io.Writer) (string, error) {
	return "", nil
}

func (r *recordingTemplateRenderer) RegisterFilter(string, func(input any, param any) (any, error)) error {
	return nil
}

func (r *recordingTemplateRenderer) GlobalContext(any) error {
	return nil
}
