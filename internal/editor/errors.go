package editor

import "errors"

// ErrNoFileSpecified is recorded when a prompt is confirmed with an empty
// path. Like I/O failures it is converted to a status message rather than
// propagated; the text is user-facing.
var ErrNoFileSpecified = errors.New("No file specified")

// IOError wraps a filesystem failure during an interactive open or save. It
// never escapes Apply; the editor records it in the message log and the
// session continues.
type IOError struct {
	Err error
}

func (e *IOError) Error() string {
	return "IO error: " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
