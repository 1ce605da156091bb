package terminal

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/quill/internal/editor"
)

var (
	stylePrompt = tcell.StyleDefault.Bold(true)
	styleError  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Reverse(true)
)

// Render projects the editor state onto the screen: an optional prompt bar,
// an optional error bar, the document, and a status line. The hardware
// cursor follows the active input point.
func (t *Terminal) Render(st *editor.Editor) error {
	s := t.screen
	s.Clear()
	width, height := s.Size()

	row := 0

	// Prompt bar while a filename is being collected.
	if st.Mode().IsPrompt() {
		label := "Open file..."
		if st.Mode() == editor.ModePromptSave {
			label = "Save as..."
		}
		drawText(s, 0, row, width, stylePrompt, label)
		pendingEnd := drawText(s, 0, row+1, width, tcell.StyleDefault, st.PendingPath())
		s.ShowCursor(pendingEnd, row+1)
		row += 2
	}

	// Error bar while a message is visible.
	if msg, ok := st.LatestMessage(); ok {
		drawText(s, 0, row, width, styleError, "Error: "+msg)
		row++
	}

	// Document content down to the status line.
	contentTop := row
	lines := strings.Split(st.Document(), "\n")
	for i, line := range lines {
		y := contentTop + i
		if y >= height-1 {
			break
		}
		drawText(s, 0, y, width, tcell.StyleDefault, line)
	}

	if st.Mode() == editor.ModeEditing {
		cx, cy := cursorCell(st.Document(), st.Cursor())
		if contentTop+cy < height-1 {
			s.ShowCursor(cx, contentTop+cy)
		} else {
			s.HideCursor()
		}
	}

	// Status line: associated file name, or "New file".
	name, ok := st.FilePath()
	if !ok {
		name = "New file"
	}
	for x := 0; x < width; x++ {
		s.SetContent(x, height-1, ' ', nil, styleStatus)
	}
	drawText(s, 0, height-1, width, styleStatus, name)

	s.Show()
	return nil
}

// drawText draws text at (x, y) clipped to maxWidth cells and returns the
// column after the last cell drawn.
func drawText(s tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if x+w > maxWidth {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// cursorCell converts a character offset into screen cells: the line index
// and the display-width column within that line.
func cursorCell(doc string, cursor int) (x, y int) {
	for i, r := range []rune(doc) {
		if i >= cursor {
			break
		}
		if r == '\n' {
			x = 0
			y++
			continue
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		x += w
	}
	return x, y
}
