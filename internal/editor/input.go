package editor

import "fmt"

// Kind identifies an abstract user intent.
type Kind uint8

const (
	// KindNone is a no-op, reported by front ends on an input poll timeout.
	KindNone Kind = iota

	// KindInsertChar inserts the payload rune at the active input point.
	KindInsertChar

	// KindBackspace deletes the character before the active input point.
	KindBackspace

	// KindEnter inserts a newline in editing mode or confirms a prompt.
	KindEnter

	// KindCancel requests application exit from any mode.
	KindCancel

	// KindMoveCursorLeft moves the cursor one character left.
	KindMoveCursorLeft

	// KindMoveCursorRight moves the cursor one character right.
	KindMoveCursorRight

	// KindBeginSave enters the save-as prompt.
	KindBeginSave

	// KindBeginOpen enters the open-file prompt.
	KindBeginOpen

	// KindBeginNewFile resets the buffer to an empty, unassociated file.
	KindBeginNewFile

	// KindDismissMessage hides the currently visible status message.
	KindDismissMessage
)

// String returns a human-readable name for the intent kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindInsertChar:
		return "InsertChar"
	case KindBackspace:
		return "Backspace"
	case KindEnter:
		return "Enter"
	case KindCancel:
		return "Cancel"
	case KindMoveCursorLeft:
		return "MoveCursorLeft"
	case KindMoveCursorRight:
		return "MoveCursorRight"
	case KindBeginSave:
		return "BeginSave"
	case KindBeginOpen:
		return "BeginOpen"
	case KindBeginNewFile:
		return "BeginNewFile"
	case KindDismissMessage:
		return "DismissMessage"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Input is a single abstract user intent, decoupled from any physical
// keyboard encoding. Front ends decode raw terminal events into Inputs; the
// state machine consumes nothing else.
type Input struct {
	// Kind identifies the intent.
	Kind Kind

	// Rune is the character payload for KindInsertChar.
	Rune rune
}

// None returns the no-op input.
func None() Input { return Input{Kind: KindNone} }

// InsertChar returns an input that inserts r.
func InsertChar(r rune) Input { return Input{Kind: KindInsertChar, Rune: r} }

// Backspace returns the backspace input.
func Backspace() Input { return Input{Kind: KindBackspace} }

// Enter returns the enter input.
func Enter() Input { return Input{Kind: KindEnter} }

// Cancel returns the quit input.
func Cancel() Input { return Input{Kind: KindCancel} }

// MoveCursorLeft returns the cursor-left input.
func MoveCursorLeft() Input { return Input{Kind: KindMoveCursorLeft} }

// MoveCursorRight returns the cursor-right input.
func MoveCursorRight() Input { return Input{Kind: KindMoveCursorRight} }

// BeginSave returns the input that opens the save-as prompt.
func BeginSave() Input { return Input{Kind: KindBeginSave} }

// BeginOpen returns the input that opens the open-file prompt.
func BeginOpen() Input { return Input{Kind: KindBeginOpen} }

// BeginNewFile returns the input that resets the buffer.
func BeginNewFile() Input { return Input{Kind: KindBeginNewFile} }

// DismissMessage returns the input that hides the visible message.
func DismissMessage() Input { return Input{Kind: KindDismissMessage} }

// String returns a readable representation, including the rune payload for
// character inserts.
func (in Input) String() string {
	if in.Kind == KindInsertChar {
		return fmt.Sprintf("InsertChar(%q)", in.Rune)
	}
	return in.Kind.String()
}
