package background

import "fmt"

// MalformedBackgroundError reports a background payload that cannot be
// calibrated: SVG markup without an <svg> element, unparsable XML or an
// undecodable raster image.
type MalformedBackgroundError struct {
	Reason string
	Err    error
}

func (e *MalformedBackgroundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("background: malformed background: %s: %v", e.Reason, e.Err)
	}
	return "background: malformed background: " + e.Reason
}

func (e *MalformedBackgroundError) Unwrap() error {
	return e.Err
}

// BackgroundLoadError reports a failure to fetch the background payload.
type BackgroundLoadError struct {
	Location string
	Err      error
}

func (e *BackgroundLoadError) Error() string {
	return fmt.Sprintf("background: load %q: %v", e.Location, e.Err)
}

func (e *BackgroundLoadError) Unwrap() error {
	return e.Err
}
