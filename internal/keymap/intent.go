package keymap

import "github.com/dshills/quill/internal/editor"

// Intent names bindable from a keymap. Character insertion is not an intent:
// any printable rune with no binding inserts itself.
const (
	IntentQuit      = "app.quit"
	IntentSave      = "file.save"
	IntentOpen      = "file.open"
	IntentNew       = "file.new"
	IntentDismiss   = "message.dismiss"
	IntentMoveLeft  = "cursor.moveLeft"
	IntentMoveRight = "cursor.moveRight"
	IntentBackspace = "editor.backspace"
	IntentEnter     = "editor.enter"
)

// InputForIntent converts an intent name to the editor input it triggers.
func InputForIntent(intent string) (editor.Input, bool) {
	switch intent {
	case IntentQuit:
		return editor.Cancel(), true
	case IntentSave:
		return editor.BeginSave(), true
	case IntentOpen:
		return editor.BeginOpen(), true
	case IntentNew:
		return editor.BeginNewFile(), true
	case IntentDismiss:
		return editor.DismissMessage(), true
	case IntentMoveLeft:
		return editor.MoveCursorLeft(), true
	case IntentMoveRight:
		return editor.MoveCursorRight(), true
	case IntentBackspace:
		return editor.Backspace(), true
	case IntentEnter:
		return editor.Enter(), true
	default:
		return editor.None(), false
	}
}
