package sketchpad

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"sync"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/geometry"
	"github.com/goliatone/go-sketchpad/pkg/render"
)

// Message keys passed to the translator.
const (
	MessageBackgroundLoadFailed = "sketchpad.backgroundLoadFailed"

	backgroundLoadFailedText = "Background image failed to load. Tagpad doesn't work without background image"
)

var errNoModes = errors.New("sketchpad: at least one mode must be registered")

// Widget is one sketchpad instance. All methods are safe for concurrent use;
// state is guarded by a mutex and the OnChange callback runs outside it.
type Widget struct {
	id        string
	logger    *slog.Logger
	registry  *Registry
	loader    background.Loader
	localizer render.Localizer
	sanitize  bool
	onChange  func([]Shape)

	ready    *Signal
	debounce *Debouncer
	ctx      context.Context
	cancel   context.CancelFunc

	mu          sync.Mutex
	closed      bool
	elements    Elements
	mode        string
	cursor      string
	style       Style
	transform   Transform
	viewport    *Viewport
	calibration background.Calibration
	history     History
	layers      []Primitive
	gesture     *Gesture
	size        geometry.Point
}

// New builds a widget. At least one mode must be registered through
// WithRegistry or WithModes.
func New(options ...Option) (*Widget, error) {
	cfg := defaultConfig()
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Widget{
		id:        cfg.id,
		logger:    cfg.logger.With(slog.String("widget", cfg.id)),
		registry:  cfg.registry,
		loader:    cfg.loader,
		localizer: cfg.localizer,
		sanitize:  cfg.sanitize,
		onChange:  cfg.onChange,
		ready:     NewSignal(),
		ctx:       ctx,
		cancel:    cancel,
		mode:      cfg.registry.Initial(),
		style:     cfg.style,
		viewport:  NewViewport(),
	}
	w.cursor = w.hoverCursor(w.mode)
	w.debounce = NewDebouncer(cfg.debounce, w.applyPendingSize)
	return w, nil
}

// ID returns the instance identifier.
func (w *Widget) ID() string { return w.id }

// Ready returns the background readiness signal.
func (w *Widget) Ready() *Signal { return w.ready }

// Registry returns the mode registry.
func (w *Widget) Registry() *Registry { return w.registry }

// Toolbar returns the button groups for this widget's modes.
func (w *Widget) Toolbar() []ButtonGroup { return Toolbar(w.registry) }

// Attach receives the host elements. It may be called again after a
// re-render; the current state is pushed to the new elements.
func (w *Widget) Attach(el Elements) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}

	w.elements = el
	w.markActiveLocked()
	for key, control := range el.Controls {
		if input, ok := control.(ValueControl); ok {
			if value := w.style.Value(key); value != "" {
				input.SetValue(value)
			}
		}
	}

	if el.Surface != nil {
		el.Surface.SetCursor(w.cursor)
	}
	if w.transform.Ready() {
		if el.Surface != nil {
			el.Surface.SetViewBox(w.viewport.ViewBoxAttr())
		}
		if el.Background != nil && w.calibration.Markup != "" {
			el.Background.SetContent(w.calibration.Markup)
		}
		w.renderLocked()
	}
	return nil
}

// LoadBackground fetches the background through the configured loader and
// calibrates it. Close cancels an in-flight load. A failed fetch writes the
// translated failure message into the background container and rejects the
// readiness signal.
func (w *Widget) LoadBackground(ctx context.Context, src background.Source) error {
	if w.loader == nil {
		return errors.New("sketchpad: no background loader configured")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(w.ctx, cancel)
	defer stop()

	doc, err := w.loader.Load(ctx, src)
	if err != nil {
		var loadErr *background.BackgroundLoadError
		if !errors.As(err, &loadErr) {
			location := ""
			if src != nil {
				location = src.Location()
			}
			err = &background.BackgroundLoadError{Location: location, Err: err}
		}
		return w.failLoad(err)
	}
	return w.SetBackgroundImage(doc.Raw())
}

// SetBackgroundImage calibrates the widget from a raster image or SVG payload.
// Malformed payloads are logged and leave the widget inert.
func (w *Widget) SetBackgroundImage(data []byte) error {
	calibration, err := background.Calibrate(data)
	if err != nil {
		w.logger.Warn("background cannot be calibrated", slog.Any("error", err))
		return err
	}
	return w.applyCalibration(calibration)
}

// SetBackgroundSize calibrates from the natural size of a raster image the
// host loaded itself.
func (w *Widget) SetBackgroundSize(width, height int) error {
	calibration, err := background.CalibrateSize(width, height)
	if err != nil {
		w.logger.Warn("background cannot be calibrated", slog.Any("error", err))
		return err
	}
	return w.applyCalibration(calibration)
}

func (w *Widget) applyCalibration(calibration background.Calibration) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}

	if calibration.Type == background.ImageTypeSVG && w.sanitize {
		calibration.Markup = background.Sanitize(calibration.Markup)
	}
	w.calibration = calibration
	w.transform.Calibrate(calibration.Dimensions)
	w.viewport.Reset(calibration.Dimensions)
	if w.size.X > 0 {
		w.transform.Stretch(w.size.X)
	}

	if w.elements.Background != nil && calibration.Markup != "" {
		w.elements.Background.SetContent(calibration.Markup)
	}
	if w.elements.Surface != nil {
		w.elements.Surface.SetViewBox(w.viewport.ViewBoxAttr())
	}
	w.renderLocked()
	w.mu.Unlock()

	w.ready.Resolve()
	w.logger.Info("background calibrated",
		slog.String("type", string(calibration.Type)),
		slog.String("viewBox", calibration.Dimensions.ViewBox()),
	)
	return nil
}

func (w *Widget) failLoad(err error) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return ErrClosed
	}
	if w.elements.Background != nil {
		message := w.localizer.T(MessageBackgroundLoadFailed, backgroundLoadFailedText)
		w.elements.Background.SetContent(html.EscapeString(message))
	}
	w.mu.Unlock()

	w.ready.Reject(err)
	w.logger.Error("background failed to load", slog.Any("error", err))
	return err
}

// Resize records the rendered size of the drawing area. The multiplier is
// recomputed once resize events have been quiet for the debounce window.
func (w *Widget) Resize(width, height float64) {
	w.mu.Lock()
	w.size = geometry.Pt(width, height)
	w.mu.Unlock()
	w.debounce.Trigger()
}

func (w *Widget) applyPendingSize() {
	w.mu.Lock()
	size := w.size
	w.mu.Unlock()
	w.StretchDrawingArea(size.X, size.Y)
}

// StretchDrawingArea recomputes the multiplier immediately. It reports whether
// the size was applied: sizes with a zero dimension, calls before calibration
// and calls after Close are ignored and report false.
func (w *Widget) StretchDrawingArea(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return false
	}
	w.size = geometry.Pt(width, height)
	return w.transform.Stretch(width)
}

// Multiplier returns rendered pixels per logical unit, zero before
// calibration.
func (w *Widget) Multiplier() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transform.Multiplier()
}

// Dimensions returns the logical drawing space and whether it is calibrated.
func (w *Widget) Dimensions() (geometry.Dimensions, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.transform.Dimensions(), w.transform.Ready()
}

// Calibration returns the outcome of the last background load.
func (w *Widget) Calibration() background.Calibration {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calibration
}

// ToLogical converts a device point into logical space through the visible
// window, so points stay under the pointer after zooming or panning.
func (w *Widget) ToLogical(device geometry.Point) (geometry.Point, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.toLogicalLocked(device)
}

func (w *Widget) toLogicalLocked(device geometry.Point) (geometry.Point, error) {
	return w.transform.ToView(device, w.viewport.Current())
}

// SelectMode switches the active mode. An active gesture is dropped without
// committing.
func (w *Widget) SelectMode(name string) error {
	if !w.registry.Has(name) {
		return fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if w.gesture != nil {
		w.dropGestureLocked()
	}
	w.mode = name
	w.markActiveLocked()
	w.setCursorLocked(w.hoverCursor(name))
	return nil
}

// Mode returns the active mode name.
func (w *Widget) Mode() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.mode
}

// Cursor returns the cursor currently shown over the surface.
func (w *Widget) Cursor() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// Style returns the drawing style new shapes pick up.
func (w *Widget) Style() Style {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

// SetStyle applies a toolbar style input (stroke, fill, width, circle).
func (w *Widget) SetStyle(key, value string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	style, err := w.style.With(key, value)
	if err != nil {
		return err
	}
	w.style = style
	return nil
}

// PointerDown starts a gesture. It is ignored while another gesture is
// active.
func (w *Widget) PointerDown(ev PointerEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if !w.ready.Ready() {
		return ErrNotReady
	}
	if w.gesture != nil {
		w.logger.Debug("pointer down ignored, gesture in progress",
			slog.String("kind", string(ev.Kind)), slog.Int("pointer", ev.ID))
		return nil
	}

	p, err := w.toLogicalLocked(ev.Point())
	if err != nil {
		return err
	}
	entry, ok := w.registry.lookup(w.mode)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMode, w.mode)
	}

	g := newGesture(ev, w.mode, w.style, w.panLocked)
	g.track(ev.Point(), p)
	w.gesture = g
	w.setCursorLocked(entry.cursor.pressed())

	if entry.start != nil {
		entry.start.Start(g, p)
	}
	w.syncGestureLocked(g, false)
	return nil
}

// PointerMove forwards a drag to the active mode. Events from pointers other
// than the one that started the gesture are ignored.
func (w *Widget) PointerMove(ev PointerEvent) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	g := w.gesture
	if g == nil || !g.owns(ev) {
		return nil
	}

	p, err := w.toLogicalLocked(ev.Point())
	if err != nil {
		return err
	}
	g.track(ev.Point(), p)
	if entry, ok := w.registry.lookup(g.mode); ok && entry.drag != nil {
		entry.drag.Drag(g, p)
	}
	w.syncGestureLocked(g, false)
	return nil
}

// PointerUp ends the gesture and commits the shape the mode produced, if any.
func (w *Widget) PointerUp(ev PointerEvent) error {
	w.mu.Lock()
	g := w.gesture
	if g == nil || !g.owns(ev) {
		w.mu.Unlock()
		return nil
	}

	p, err := w.toLogicalLocked(ev.Point())
	if err != nil {
		w.mu.Unlock()
		return err
	}
	g.track(ev.Point(), p)
	w.gesture = nil
	w.setCursorLocked(w.hoverCursor(g.mode))

	entry, _ := w.registry.lookup(g.mode)
	var (
		shape     Shape
		committed bool
	)
	if entry != nil && entry.end != nil {
		shape, committed = entry.end.End(g, p)
	}

	var changed []Shape
	if committed {
		if err := w.commitLocked(shape); err != nil {
			w.syncGestureLocked(g, true)
			w.mu.Unlock()
			return err
		}
		changed = w.history.Shapes()
	}
	w.syncGestureLocked(g, true)
	w.mu.Unlock()

	w.notify(changed)
	return nil
}

// PointerCancel drops the gesture without committing anything.
func (w *Widget) PointerCancel(ev PointerEvent) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.gesture == nil || !w.gesture.owns(ev) {
		return
	}
	w.dropGestureLocked()
}

func (w *Widget) dropGestureLocked() {
	g := w.gesture
	w.gesture = nil
	w.setCursorLocked(w.hoverCursor(g.mode))
	w.syncGestureLocked(g, true)
}

func (w *Widget) commitLocked(shape Shape) error {
	if err := w.registry.Validate(shape); err != nil {
		return err
	}
	primitives, err := w.registry.Replay(shape)
	if err != nil {
		return err
	}
	w.history.Commit(shape.Clone())
	w.layers = append(w.layers, primitives...)
	return nil
}

// syncGestureLocked pushes viewport and preview changes made by a mode to the
// surface. ended forces a redraw without the preview.
func (w *Widget) syncGestureLocked(g *Gesture, ended bool) {
	if g.panned {
		g.panned = false
		if w.elements.Surface != nil {
			w.elements.Surface.SetViewBox(w.viewport.ViewBoxAttr())
		}
	}
	if ended || len(g.preview) > 0 {
		w.renderLocked()
	}
}

func (w *Widget) panLocked(delta geometry.Point) {
	if err := w.viewport.Pan(delta, w.transform.ViewMultiplier(w.viewport.Current())); err != nil {
		w.logger.Debug("pan ignored", slog.Any("error", err))
	}
}

// SetValue replaces the shape list with a value pushed by the host. It is
// dropped with ErrNotReady until the background is calibrated and a surface
// is attached. Each record must name a registered mode and satisfy its
// schema.
func (w *Widget) SetValue(shapes []Shape) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if !w.ready.Ready() || w.elements.Surface == nil {
		w.logger.Debug("set value dropped, widget not ready")
		return ErrNotReady
	}

	layers, err := w.replayAllLocked(shapes)
	if err != nil {
		return err
	}
	w.history.Replace(shapes)
	w.layers = layers
	w.renderLocked()
	return nil
}

// Value returns a copy of the shape list.
func (w *Widget) Value() []Shape {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.history.Shapes()
}

// Draw clears the surface and replays shapes without changing the value.
func (w *Widget) Draw(shapes []Shape) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if !w.ready.Ready() {
		return ErrNotReady
	}
	layers, err := w.replayAllLocked(shapes)
	if err != nil {
		return err
	}
	w.layers = layers
	w.renderLocked()
	return nil
}

func (w *Widget) replayAllLocked(shapes []Shape) ([]Primitive, error) {
	var layers []Primitive
	for idx, shape := range shapes {
		if err := w.registry.Validate(shape); err != nil {
			return nil, &ValueError{Index: idx, Mode: shape.Mode, Err: err}
		}
		primitives, err := w.registry.Replay(shape)
		if err != nil {
			return nil, &ValueError{Index: idx, Mode: shape.Mode, Err: err}
		}
		layers = append(layers, primitives...)
	}
	return layers, nil
}

// redrawLocked replays the live list after undo/redo. Records already passed
// validation, so replay failures are only logged.
func (w *Widget) redrawLocked() {
	w.layers = w.layers[:0]
	for _, shape := range w.history.live {
		primitives, err := w.registry.Replay(shape)
		if err != nil {
			w.logger.Warn("shape replay failed", slog.String("mode", shape.Mode), slog.Any("error", err))
			continue
		}
		w.layers = append(w.layers, primitives...)
	}
	w.renderLocked()
}

// Undo removes the last shape. It reports false when there was nothing to
// undo or the widget is closed.
func (w *Widget) Undo() bool {
	w.mu.Lock()
	if w.closed || !w.history.Undo() {
		w.mu.Unlock()
		return false
	}
	w.redrawLocked()
	changed := w.history.Shapes()
	w.mu.Unlock()

	w.notify(changed)
	return true
}

// Redo restores the most recently undone shape. It reports false when the
// deleted stack is empty or the widget is closed.
func (w *Widget) Redo() bool {
	w.mu.Lock()
	if w.closed || !w.history.Redo() {
		w.mu.Unlock()
		return false
	}
	w.redrawLocked()
	changed := w.history.Shapes()
	w.mu.Unlock()

	w.notify(changed)
	return true
}

// ClearAll empties the shape list and the deleted stack. The viewport and
// calibration are untouched. A closed widget is left as it is.
func (w *Widget) ClearAll() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	hadShapes := w.history.Len() > 0
	w.history.Clear()
	w.layers = nil
	if w.elements.Surface != nil {
		w.elements.Surface.Clear()
	}
	w.mu.Unlock()

	if hadShapes {
		w.notify([]Shape{})
	}
}

// CanUndo reports whether Undo would change the value.
func (w *Widget) CanUndo() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.history.Len() > 0
}

// CanRedo reports whether Redo would change the value.
func (w *Widget) CanRedo() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.history.Deleted() > 0
}

// Action dispatches a toolbar action button by key.
func (w *Widget) Action(key string) error {
	w.mu.Lock()
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return ErrClosed
	}

	switch key {
	case ActionUndo:
		w.Undo()
	case ActionRedo:
		w.Redo()
	case ActionClearAll:
		w.ClearAll()
	default:
		return fmt.Errorf("sketchpad: unknown action %q", key)
	}
	return nil
}

// Pan drags the visible window by a device delta.
func (w *Widget) Pan(dx, dy float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if !w.transform.Ready() {
		return ErrNotReady
	}
	if err := w.viewport.Pan(geometry.Pt(dx, dy), w.transform.ViewMultiplier(w.viewport.Current())); err != nil {
		return err
	}
	w.syncViewBoxLocked()
	return nil
}

// Zoom scales the visible window around its centre. Factors above 1 zoom in.
func (w *Widget) Zoom(factor float64) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return ErrClosed
	}
	if !w.transform.Ready() {
		return ErrNotReady
	}
	if err := w.viewport.Zoom(factor, w.viewport.Current().Center()); err != nil {
		return err
	}
	w.syncViewBoxLocked()
	return nil
}

// ResetZoom shows the whole background again.
func (w *Widget) ResetZoom() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.viewport.ResetZoom()
	w.syncViewBoxLocked()
}

// SetTotalMultiplier records the zoom level displayed to the user.
func (w *Widget) SetTotalMultiplier(multiplier float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.viewport.SetTotalMultiplier(multiplier)
}

// ZoomInfo returns the viewport state.
func (w *Widget) ZoomInfo() ZoomInfo {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.viewport.Info()
}

func (w *Widget) syncViewBoxLocked() {
	if w.elements.Surface != nil && w.viewport.Current().Valid() {
		w.elements.Surface.SetViewBox(w.viewport.ViewBoxAttr())
	}
}

// Layers returns a copy of the committed primitives in drawing order.
func (w *Widget) Layers() []Primitive {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Primitive(nil), w.layers...)
}

// SVG returns the drawn shapes as a standalone, responsive SVG document using
// the default (unzoomed) viewBox.
func (w *Widget) SVG() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.transform.Ready() {
		return "", ErrNotReady
	}
	return RenderSVG(w.viewport.Info().ViewBox.Default, "cursor: pointer", w.layers), nil
}

// Close cancels in-flight background loads and pending resizes. Later calls
// that mutate state return ErrClosed, or report no change where they return
// a bool.
func (w *Widget) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.gesture = nil
	w.mu.Unlock()

	w.cancel()
	w.debounce.Stop()
	w.ready.Reject(ErrClosed)
	w.logger.Debug("widget closed")
	return nil
}

func (w *Widget) notify(shapes []Shape) {
	if shapes == nil || w.onChange == nil {
		return
	}
	w.onChange(shapes)
}

func (w *Widget) renderLocked() {
	surface := w.elements.Surface
	if surface == nil {
		return
	}
	surface.Clear()
	if len(w.layers) > 0 {
		surface.Draw(w.layers...)
	}
	if w.gesture != nil && len(w.gesture.preview) > 0 {
		surface.Draw(w.gesture.preview...)
	}
}

func (w *Widget) markActiveLocked() {
	for _, name := range w.registry.Names() {
		if control, ok := w.elements.Controls[name]; ok && control != nil {
			control.SetActive(name == w.mode)
		}
	}
}

func (w *Widget) setCursorLocked(cursor string) {
	w.cursor = cursor
	if w.elements.Surface != nil {
		w.elements.Surface.SetCursor(cursor)
	}
}

func (w *Widget) hoverCursor(mode string) string {
	cursor, _ := w.registry.Cursor(mode)
	return cursor.hover()
}
