package terminal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/quill/internal/editor"
	"github.com/dshills/quill/internal/keymap"
	"github.com/dshills/quill/internal/ui"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()

	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := New(keymap.Default(), WithScreen(sim), WithPollTimeout(500*time.Millisecond))
	if err != nil {
		t.Fatalf("terminal setup failed: %v", err)
	}
	t.Cleanup(func() { _ = term.Finish() })

	return term, sim
}

// waitInput polls until something other than a timeout no-op arrives.
func waitInput(t *testing.T, term *Terminal) (editor.Input, error) {
	t.Helper()

	for i := 0; i < 20; i++ {
		in, err := term.PollInput()
		if err != nil || in.Kind != editor.KindNone {
			return in, err
		}
	}
	t.Fatal("no input arrived")
	return editor.None(), nil
}

// rowString reads a screen row as text, trailing blanks trimmed.
func rowString(t *testing.T, sim tcell.SimulationScreen, y int) string {
	t.Helper()

	cells, width, height := sim.GetContents()
	if y >= height {
		t.Fatalf("row %d out of range (%d)", y, height)
	}

	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteString(string(cell.Runes))
	}
	return strings.TrimRight(sb.String(), " ")
}

func TestPollInputTimeout(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := New(keymap.Default(), WithScreen(sim), WithPollTimeout(10*time.Millisecond))
	if err != nil {
		t.Fatalf("terminal setup failed: %v", err)
	}
	defer func() { _ = term.Finish() }()

	in, err := term.PollInput()
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if in.Kind != editor.KindNone {
		t.Errorf("expected no-op input on timeout, got %s", in)
	}
}

func TestDecodeRune(t *testing.T) {
	term, sim := newTestTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	in, err := waitInput(t, term)
	if err != nil {
		t.Fatalf("poll failed: %v", err)
	}
	if in.Kind != editor.KindInsertChar || in.Rune != 'a' {
		t.Errorf("expected InsertChar('a'), got %s", in)
	}
}

func TestDecodeBoundKeys(t *testing.T) {
	term, sim := newTestTerminal(t)

	tests := []struct {
		name string
		key  tcell.Key
		r    rune
		mod  tcell.ModMask
		want editor.Kind
	}{
		{"ctrl-c", tcell.KeyCtrlC, 'c', tcell.ModCtrl, editor.KindCancel},
		{"ctrl-s", tcell.KeyCtrlS, 's', tcell.ModCtrl, editor.KindBeginSave},
		{"ctrl-o", tcell.KeyCtrlO, 'o', tcell.ModCtrl, editor.KindBeginOpen},
		{"ctrl-n", tcell.KeyCtrlN, 'n', tcell.ModCtrl, editor.KindBeginNewFile},
		{"ctrl-x", tcell.KeyCtrlX, 'x', tcell.ModCtrl, editor.KindDismissMessage},
		{"enter", tcell.KeyEnter, '\r', tcell.ModNone, editor.KindEnter},
		{"backspace", tcell.KeyBackspace2, 0, tcell.ModNone, editor.KindBackspace},
		{"left", tcell.KeyLeft, 0, tcell.ModNone, editor.KindMoveCursorLeft},
		{"right", tcell.KeyRight, 0, tcell.ModNone, editor.KindMoveCursorRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sim.InjectKey(tc.key, tc.r, tc.mod)

			in, err := waitInput(t, term)
			if err != nil {
				t.Fatalf("poll failed: %v", err)
			}
			if in.Kind != tc.want {
				t.Errorf("expected %s, got %s", tc.want, in)
			}
		})
	}
}

func TestUnrecognizedKeyFails(t *testing.T) {
	term, sim := newTestTerminal(t)

	sim.InjectKey(tcell.KeyF5, 0, tcell.ModNone)

	_, err := waitInput(t, term)
	if err == nil {
		t.Fatal("expected an error for an unbindable key")
	}
	if !errors.Is(err, ui.ErrUnrecognizedInput) {
		t.Errorf("expected ErrUnrecognizedInput, got %v", err)
	}
}

func TestChordFor(t *testing.T) {
	tests := []struct {
		name      string
		ev        *tcell.EventKey
		chord     string
		printable bool
	}{
		{"plain rune", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), "h", true},
		{"wide rune", tcell.NewEventKey(tcell.KeyRune, '世', tcell.ModNone), "世", true},
		{"ctrl rune", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModCtrl), "C-s", false},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "A-x", false},
		{"ctrl key code", tcell.NewEventKey(tcell.KeyCtrlG, 'g', tcell.ModCtrl), "C-g", false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, '\r', tcell.ModNone), "Enter", false},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "Backspace", false},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "Esc", false},
		{"arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "Left", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			chord, _, printable := chordFor(tc.ev)
			if chord != tc.chord {
				t.Errorf("expected chord %q, got %q", tc.chord, chord)
			}
			if printable != tc.printable {
				t.Errorf("expected printable=%v, got %v", tc.printable, printable)
			}
		})
	}
}

func TestRenderStatusLine(t *testing.T) {
	term, sim := newTestTerminal(t)
	sim.SetSize(40, 10)

	st := editor.New(nil)
	if err := term.Render(st); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := rowString(t, sim, 9); got != "New file" {
		t.Errorf("expected status %q, got %q", "New file", got)
	}
}

func TestRenderDocument(t *testing.T) {
	term, sim := newTestTerminal(t)
	sim.SetSize(40, 10)

	st := editor.New(nil)
	for _, r := range "hello\nworld" {
		if r == '\n' {
			st.Apply(editor.Enter())
			continue
		}
		st.Apply(editor.InsertChar(r))
	}

	if err := term.Render(st); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := rowString(t, sim, 0); got != "hello" {
		t.Errorf("expected first line %q, got %q", "hello", got)
	}
	if got := rowString(t, sim, 1); got != "world" {
		t.Errorf("expected second line %q, got %q", "world", got)
	}
}

func TestRenderPromptBar(t *testing.T) {
	term, sim := newTestTerminal(t)
	sim.SetSize(40, 10)

	st := editor.New(nil)
	st.Apply(editor.BeginSave())
	for _, r := range "a.txt" {
		st.Apply(editor.InsertChar(r))
	}

	if err := term.Render(st); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := rowString(t, sim, 0); got != "Save as..." {
		t.Errorf("expected prompt label %q, got %q", "Save as...", got)
	}
	if got := rowString(t, sim, 1); got != "a.txt" {
		t.Errorf("expected pending path %q, got %q", "a.txt", got)
	}
}

func TestRenderErrorBar(t *testing.T) {
	term, sim := newTestTerminal(t)
	sim.SetSize(40, 10)

	st := editor.New(nil)
	st.Apply(editor.BeginSave())
	st.Apply(editor.Enter()) // empty path: records "No file specified"

	if err := term.Render(st); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if got := rowString(t, sim, 0); got != "Error: No file specified" {
		t.Errorf("unexpected error bar: %q", got)
	}
}

func TestFinishIdempotent(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := New(keymap.Default(), WithScreen(sim))
	if err != nil {
		t.Fatalf("terminal setup failed: %v", err)
	}

	if err := term.Finish(); err != nil {
		t.Errorf("first finish failed: %v", err)
	}
	if err := term.Finish(); err != nil {
		t.Errorf("second finish failed: %v", err)
	}
}

func TestCursorCell(t *testing.T) {
	tests := []struct {
		doc    string
		cursor int
		x, y   int
	}{
		{"", 0, 0, 0},
		{"ab", 1, 1, 0},
		{"ab", 2, 2, 0},
		{"a\nb", 2, 0, 1},
		{"a\nb", 3, 1, 1},
		{"世b", 1, 2, 0}, // wide rune occupies two cells
	}

	for _, tc := range tests {
		x, y := cursorCell(tc.doc, tc.cursor)
		if x != tc.x || y != tc.y {
			t.Errorf("cursorCell(%q, %d) = (%d, %d), want (%d, %d)",
				tc.doc, tc.cursor, x, y, tc.x, tc.y)
		}
	}
}
