// Package ui defines the contract between the editor core and a front end.
// The core and the driver loop depend only on this interface, never on a
// concrete display implementation.
package ui

import "github.com/dshills/quill/internal/editor"

// UI is the surface a front end must provide. The exclusive terminal or
// display resource is acquired by the concrete constructor and released by
// Finish; both happen exactly once per process.
type UI interface {
	// Render projects the editor state onto the display. It is read-only
	// and must not mutate the state.
	Render(st *editor.Editor) error

	// PollInput blocks up to a bounded timeout and returns the next
	// decoded intent, or an Input of KindNone on timeout. Events that
	// cannot be classified fail with an UnrecognizedInputError rather
	// than being silently dropped.
	PollInput() (editor.Input, error)

	// Finish releases the resources acquired by the constructor. It is
	// called once at shutdown on both success and failure paths.
	Finish() error

	// OnPanic restores the terminal synchronously. It is invoked during
	// unwind and must not rely on normal control flow.
	OnPanic()
}
