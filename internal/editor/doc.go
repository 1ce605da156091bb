// Package editor implements the modal editing state machine at the heart of
// quill: the document buffer, cursor, interaction mode, file association, and
// status message log.
//
// All mutation flows through a single entry point, Apply, which interprets an
// abstract Input according to the current Mode. The package knows nothing
// about terminals or key codes; front ends decode raw events into Inputs and
// project the resulting state however they like.
//
// The state machine is single-owner by design. Exactly one driver loop holds
// the Editor and feeds it one Input per turn, so no locking is needed.
package editor
