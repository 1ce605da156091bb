package keymap

// Default returns the built-in bindings.
func Default() *Keymap {
	return New("default", []Binding{
		{Keys: "C-c", Intent: IntentQuit, Description: "Quit"},
		{Keys: "C-s", Intent: IntentSave, Description: "Save file"},
		{Keys: "C-o", Intent: IntentOpen, Description: "Open file"},
		{Keys: "C-n", Intent: IntentNew, Description: "New file"},
		{Keys: "C-x", Intent: IntentDismiss, Description: "Dismiss message"},
		{Keys: "Enter", Intent: IntentEnter, Description: "Newline / confirm prompt"},
		{Keys: "Backspace", Intent: IntentBackspace, Description: "Delete backwards"},
		{Keys: "Left", Intent: IntentMoveLeft, Description: "Move cursor left"},
		{Keys: "Right", Intent: IntentMoveRight, Description: "Move cursor right"},
	})
}
