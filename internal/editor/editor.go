package editor

import "fmt"

// Mode is the current interaction context. It determines how Apply
// interprets an Input.
type Mode uint8

const (
	// ModeEditing routes input to the document buffer.
	ModeEditing Mode = iota

	// ModePromptOpen routes input to the filename prompt for opening.
	ModePromptOpen

	// ModePromptSave routes input to the filename prompt for saving.
	ModePromptSave
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModePromptOpen:
		return "prompt-open"
	case ModePromptSave:
		return "prompt-save"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// IsPrompt returns true if the mode collects a filename rather than
// editing the document.
func (m Mode) IsPrompt() bool {
	return m == ModePromptOpen || m == ModePromptSave
}

// Editor is the application state: document, cursor, mode, file association,
// and message log. It is mutated exclusively through Apply and read through
// accessors; it is not safe for concurrent use and does not need to be.
//
// The document and prompt text are held as rune slices so the cursor always
// counts characters, not bytes.
type Editor struct {
	doc        []rune
	cursor     int
	mode       Mode
	filePath   string
	hasFile    bool
	pending    []rune
	messages   []string
	msgVisible bool
	exited     bool
	fs         FileStore
}

// New creates an editor with an empty, unassociated buffer. A nil store
// defaults to the local filesystem.
func New(fs FileStore) *Editor {
	if fs == nil {
		fs = OSFileStore{}
	}
	return &Editor{fs: fs}
}

// Apply interprets a single input according to the current mode. It is total
// over the Input set: every kind is handled in every mode, and file-operation
// failures are recorded as messages rather than returned.
func (e *Editor) Apply(in Input) {
	switch in.Kind {
	case KindNone:
		// Poll timeout; nothing to do.

	case KindCancel:
		e.exited = true

	case KindDismissMessage:
		e.msgVisible = false

	case KindInsertChar:
		e.insertRune(in.Rune)

	case KindBackspace:
		e.backspace()

	case KindEnter:
		e.enter()

	case KindMoveCursorLeft:
		if e.mode == ModeEditing {
			e.moveCursorLeft()
		}

	case KindMoveCursorRight:
		if e.mode == ModeEditing {
			e.moveCursorRight()
		}

	case KindBeginSave:
		if e.mode == ModeEditing {
			e.beginPrompt(ModePromptSave)
		}

	case KindBeginOpen:
		if e.mode == ModeEditing {
			e.beginPrompt(ModePromptOpen)
		}

	case KindBeginNewFile:
		if e.mode == ModeEditing {
			e.newFile()
		}
	}
}

// insertRune routes a character to the document or the prompt text.
func (e *Editor) insertRune(r rune) {
	if e.mode.IsPrompt() {
		e.pending = append(e.pending, r)
		return
	}
	e.doc = append(e.doc, 0)
	copy(e.doc[e.cursor+1:], e.doc[e.cursor:])
	e.doc[e.cursor] = r
	e.cursor++
}

// backspace removes the character before the active input point. At the
// start of the document or an empty prompt it is a no-op.
func (e *Editor) backspace() {
	if e.mode.IsPrompt() {
		if len(e.pending) > 0 {
			e.pending = e.pending[:len(e.pending)-1]
		}
		return
	}
	if e.cursor == 0 {
		return
	}
	copy(e.doc[e.cursor-1:], e.doc[e.cursor:])
	e.doc = e.doc[:len(e.doc)-1]
	e.cursor--
}

// enter inserts a newline in editing mode; in a prompt mode it confirms the
// pending path, performs the file operation, and always returns to editing.
func (e *Editor) enter() {
	switch e.mode {
	case ModeEditing:
		e.insertRune('\n')

	case ModePromptSave:
		err := e.saveFile(string(e.pending))
		e.leavePrompt()
		if err != nil {
			e.AddMessage(err.Error())
		}

	case ModePromptOpen:
		err := e.openFile(string(e.pending))
		e.leavePrompt()
		if err != nil {
			e.AddMessage(err.Error())
		}
	}
}

// beginPrompt enters a prompt mode. The save prompt is seeded with the
// current file path so a plain Enter re-saves in place; the open prompt
// starts empty. Prompt transitions dismiss any visible message.
func (e *Editor) beginPrompt(m Mode) {
	e.mode = m
	e.pending = nil
	if m == ModePromptSave && e.hasFile {
		e.pending = []rune(e.filePath)
	}
	e.msgVisible = false
}

// leavePrompt returns to editing mode, clearing the pending path and any
// visible message.
func (e *Editor) leavePrompt() {
	e.mode = ModeEditing
	e.pending = nil
	e.msgVisible = false
}

func (e *Editor) moveCursorLeft() {
	if e.cursor > 0 {
		e.cursor--
	}
}

func (e *Editor) moveCursorRight() {
	if e.cursor < len(e.doc) {
		e.cursor++
	}
}

// newFile resets the buffer to empty and drops the file association.
func (e *Editor) newFile() {
	e.doc = nil
	e.cursor = 0
	e.filePath = ""
	e.hasFile = false
}

// saveFile writes the document to path and records the association.
func (e *Editor) saveFile(path string) error {
	if path == "" {
		return ErrNoFileSpecified
	}
	if err := e.fs.WriteFile(path, string(e.doc)); err != nil {
		return &IOError{Err: err}
	}
	e.filePath = path
	e.hasFile = true
	return nil
}

// openFile replaces the document with the contents of path. On failure the
// document, cursor, and file association are untouched.
func (e *Editor) openFile(path string) error {
	if path == "" {
		return ErrNoFileSpecified
	}
	contents, err := e.fs.ReadFile(path)
	if err != nil {
		return &IOError{Err: err}
	}
	e.doc = []rune(contents)
	e.cursor = 0
	e.filePath = path
	e.hasFile = true
	return nil
}

// OpenFile loads path into the buffer, replacing its contents. It serves
// files named on the command line; interactive opens go through the prompt
// flow in Apply.
func (e *Editor) OpenFile(path string) error {
	return e.openFile(path)
}

// Document returns the buffer contents.
func (e *Editor) Document() string {
	return string(e.doc)
}

// Cursor returns the cursor position as a character offset into the
// document, always within [0, character count].
func (e *Editor) Cursor() int {
	return e.cursor
}

// Mode returns the current interaction mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// FilePath returns the path the buffer was last loaded from or saved to.
// The second result is false while the buffer is unassociated with a file.
func (e *Editor) FilePath() (string, bool) {
	return e.filePath, e.hasFile
}

// PendingPath returns the filename text typed so far in a prompt mode, and
// the empty string in editing mode.
func (e *Editor) PendingPath() string {
	return string(e.pending)
}

// Exited reports whether a quit has been requested. Once true the driver
// loop must stop after the current turn.
func (e *Editor) Exited() bool {
	return e.exited
}
