package sketchpad

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-sketchpad/pkg/background"
	"github.com/goliatone/go-sketchpad/pkg/render"
)

// Option configures a Widget before construction.
type Option func(*config)

type config struct {
	id        string
	logger    *slog.Logger
	registry  *Registry
	modes     []Mode
	loader    background.Loader
	localizer render.Localizer
	style     Style
	onChange  func([]Shape)
	sanitize  bool
	debounce  time.Duration
}

func defaultConfig() *config {
	return &config{
		style:    DefaultStyle(),
		debounce: DefaultResizeDebounce,
	}
}

// WithID sets the instance identifier used in logs and DOM ids. A random UUID
// is used otherwise.
func WithID(id string) Option {
	return func(cfg *config) {
		cfg.id = strings.TrimSpace(id)
	}
}

// WithLogger injects a structured logger. Logs are discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithRegistry uses an existing mode registry.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		cfg.registry = registry
	}
}

// WithModes registers modes in order, after any registry supplied through
// WithRegistry. A supplied registry is cloned first and never modified.
func WithModes(modes ...Mode) Option {
	return func(cfg *config) {
		cfg.modes = append(cfg.modes, modes...)
	}
}

// WithLoader sets the loader used by LoadBackground.
func WithLoader(loader background.Loader) Option {
	return func(cfg *config) {
		cfg.loader = loader
	}
}

// WithTranslator wires the t(key) helper used for user-facing messages.
func WithTranslator(translator render.Translator, locale string) Option {
	return func(cfg *config) {
		cfg.localizer.Translator = translator
		cfg.localizer.Locale = locale
	}
}

// WithMissingTranslationHandler customises untranslated messages.
func WithMissingTranslationHandler(handler render.MissingTranslationHandler) Option {
	return func(cfg *config) {
		cfg.localizer.OnMissing = handler
	}
}

// WithStyle seeds the drawing style.
func WithStyle(style Style) Option {
	return func(cfg *config) {
		cfg.style = style
	}
}

// WithOnChange registers the callback receiving the value after every change
// made through the widget (new shapes, undo, redo, clear all).
func WithOnChange(fn func([]Shape)) Option {
	return func(cfg *config) {
		cfg.onChange = fn
	}
}

// WithSanitizer toggles bluemonday sanitisation of SVG backgrounds before they
// are inserted into the background container.
func WithSanitizer(enabled bool) Option {
	return func(cfg *config) {
		cfg.sanitize = enabled
	}
}

// WithResizeDebounce overrides DefaultResizeDebounce.
func WithResizeDebounce(window time.Duration) Option {
	return func(cfg *config) {
		if window > 0 {
			cfg.debounce = window
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (cfg *config) resolve() error {
	if cfg.id == "" {
		cfg.id = uuid.NewString()
	}
	if cfg.logger == nil {
		cfg.logger = discardLogger()
	}
	switch {
	case cfg.registry == nil:
		cfg.registry = NewRegistry()
	case len(cfg.modes) > 0:
		cfg.registry = cfg.registry.Clone()
	}
	for _, mode := range cfg.modes {
		if err := cfg.registry.Register(mode); err != nil {
			return err
		}
	}
	if cfg.registry.Initial() == "" {
		return errNoModes
	}
	return nil
}
