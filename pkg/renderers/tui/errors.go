package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrInvalidPoint is reported for point input that is not "x,y".
	ErrInvalidPoint = errors.New("tui: point must be written as x,y")
)
