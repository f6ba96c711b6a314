package sketchpad

import (
	"errors"
	"fmt"
)

var (
	// ErrNotReady is returned by operations that need a calibrated background
	// (and, for SetValue, an attached surface).
	ErrNotReady = errors.New("sketchpad: background not ready")
	// ErrUnknownMode is returned when a mode name is not registered.
	ErrUnknownMode = errors.New("sketchpad: unknown mode")
	// ErrClosed is returned once the widget has been closed.
	ErrClosed = errors.New("sketchpad: widget closed")
)

// ValueError reports a shape record rejected by SetValue.
type ValueError struct {
	Index int
	Mode  string
	Err   error
}

func (e *ValueError) Error() string {
	if e.Mode == "" {
		return fmt.Sprintf("sketchpad: value[%d]: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("sketchpad: value[%d] (%s): %v", e.Index, e.Mode, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}
