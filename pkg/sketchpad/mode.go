package sketchpad

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-sketchpad/pkg/geometry"
)

// Mode is a drawing tool. Everything beyond the name is optional and
// discovered through the capability interfaces below when the mode is
// registered.
type Mode interface {
	Name() string
}

// StartHandler receives the logical point of a pointer-down.
type StartHandler interface {
	Start(g *Gesture, p geometry.Point)
}

// DragHandler receives every logical point while the pointer is down.
type DragHandler interface {
	Drag(g *Gesture, p geometry.Point)
}

// EndHandler receives the logical point of the pointer-up and may finish a
// shape, which the widget appends to the value.
type EndHandler interface {
	End(g *Gesture, p geometry.Point) (Shape, bool)
}

// Replayer turns a persisted shape back into primitives.
type Replayer interface {
	Replay(shape Shape) ([]Primitive, error)
}

// CursorProvider declares the cursors shown over the surface.
type CursorProvider interface {
	Cursor() Cursor
}

// SchemaProvider declares the record schema shapes of this mode must satisfy.
type SchemaProvider interface {
	Schema() *openapi3.Schema
}

// ButtonProvider overrides the toolbar button generated for the mode.
type ButtonProvider interface {
	Button() Button
}

// Cursor holds CSS cursor names. Empty values fall back to Hover, then to
// "default".
type Cursor struct {
	Hover   string `json:"hover,omitempty"`
	Clicked string `json:"clicked,omitempty"`
}

const defaultCursor = "default"

// hover returns the cursor shown while idle.
func (c Cursor) hover() string {
	if c.Hover != "" {
		return c.Hover
	}
	return defaultCursor
}

// pressed returns the cursor shown while a gesture is active.
func (c Cursor) pressed() string {
	if c.Clicked != "" {
		return c.Clicked
	}
	return c.hover()
}

type modeEntry struct {
	mode   Mode
	start  StartHandler
	drag   DragHandler
	end    EndHandler
	replay Replayer
	cursor Cursor
	schema *openapi3.Schema
	button Button
}

func newModeEntry(mode Mode) *modeEntry {
	e := &modeEntry{mode: mode}
	e.start, _ = mode.(StartHandler)
	e.drag, _ = mode.(DragHandler)
	e.end, _ = mode.(EndHandler)
	e.replay, _ = mode.(Replayer)
	if provider, ok := mode.(CursorProvider); ok {
		e.cursor = provider.Cursor()
	}
	if provider, ok := mode.(SchemaProvider); ok {
		e.schema = provider.Schema()
	}
	if provider, ok := mode.(ButtonProvider); ok {
		e.button = provider.Button()
	} else {
		e.button = Button{Key: mode.Name(), Title: titleCase(mode.Name()), Icon: mode.Name()}
	}
	e.button.Key = mode.Name()
	if e.button.TitleKey == "" {
		e.button.TitleKey = "sketchpad." + mode.Name()
	}
	return e
}

// Registry maps mode names to their resolved capabilities. Registration order
// is significant: the first mode is the initial one.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*modeEntry
	order   []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*modeEntry)}
}

// Register adds a mode. Names must be unique.
func (r *Registry) Register(mode Mode) error {
	if mode == nil {
		return fmt.Errorf("sketchpad: mode is required")
	}
	name := strings.TrimSpace(mode.Name())
	if name == "" {
		return fmt.Errorf("sketchpad: mode name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("sketchpad: mode %q already registered", name)
	}
	r.entries[name] = newModeEntry(mode)
	r.order = append(r.order, name)
	return nil
}

// Clone returns an independent registry holding the same modes in the same
// order. Registering into the clone leaves r untouched.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &Registry{
		entries: make(map[string]*modeEntry, len(r.entries)),
		order:   append([]string(nil), r.order...),
	}
	for name, entry := range r.entries {
		out.entries[name] = entry
	}
	return out
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(modes ...Mode) {
	for _, mode := range modes {
		if err := r.Register(mode); err != nil {
			panic(err)
		}
	}
}

// Has reports whether a mode is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.lookup(name)
	return ok
}

// Names lists modes in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Initial returns the first registered mode, or "" for an empty registry.
func (r *Registry) Initial() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if len(r.order) == 0 {
		return ""
	}
	return r.order[0]
}

// Cursor returns the cursor declared by a mode.
func (r *Registry) Cursor(name string) (Cursor, bool) {
	e, ok := r.lookup(name)
	if !ok {
		return Cursor{}, false
	}
	return e.cursor, true
}

// Buttons returns the toolbar buttons of all modes in registration order.
func (r *Registry) Buttons() []Button {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Button, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.entries[name].button)
	}
	return out
}

// Validate checks a shape against its mode: the mode must be registered and,
// when it declares a schema, the record must satisfy it.
func (r *Registry) Validate(shape Shape) error {
	e, ok := r.lookup(shape.Mode)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, shape.Mode)
	}
	if e.schema == nil {
		return nil
	}

	record, err := normalizeRecord(shape)
	if err != nil {
		return err
	}
	if err := e.schema.VisitJSON(record); err != nil {
		return fmt.Errorf("sketchpad: %s record: %w", shape.Mode, err)
	}
	return nil
}

// Replay produces the primitives of a shape. Modes without a Replayer draw
// nothing.
func (r *Registry) Replay(shape Shape) ([]Primitive, error) {
	e, ok := r.lookup(shape.Mode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, shape.Mode)
	}
	if e.replay == nil {
		return nil, nil
	}
	return e.replay.Replay(shape)
}

func (r *Registry) lookup(name string) (*modeEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// normalizeRecord round-trips the shape through JSON so schema validation sees
// the same value types a decoded payload would have.
func normalizeRecord(shape Shape) (map[string]any, error) {
	data, err := json.Marshal(shape.Record())
	if err != nil {
		return nil, fmt.Errorf("sketchpad: encode %s record: %w", shape.Mode, err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("sketchpad: decode %s record: %w", shape.Mode, err)
	}
	return out, nil
}

func titleCase(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
