package ui

import (
	"errors"
	"fmt"
)

// ErrUnrecognizedInput matches any UnrecognizedInputError via errors.Is.
var ErrUnrecognizedInput = errors.New("unrecognized input event")

// UnrecognizedInputError reports a raw event the front end could not decode
// into an intent. It indicates a front-end defect rather than a user
// mistake, so the driver loop treats it as fatal.
type UnrecognizedInputError struct {
	// Event describes the undecodable event.
	Event string
}

func (e *UnrecognizedInputError) Error() string {
	return fmt.Sprintf("unrecognized input event %q", e.Event)
}

// Is reports a match against ErrUnrecognizedInput.
func (e *UnrecognizedInputError) Is(target error) bool {
	return target == ErrUnrecognizedInput
}

// InitError reports a front-end component that failed to initialize.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
