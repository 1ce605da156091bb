package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// chordFor returns the canonical chord notation for a key event, along with
// the raw rune and whether the event is a bare printable character.
//
// Ctrl+letter arrives from tcell as a dedicated key code in the C0 range, so
// the named cases must come first: Enter, Tab, and Backspace share codes with
// Ctrl-M, Ctrl-I, and Ctrl-H.
func chordFor(ev *tcell.EventKey) (chord string, r rune, printable bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r = ev.Rune()
		mods := ev.Modifiers() &^ tcell.ModShift
		switch {
		case mods&tcell.ModCtrl != 0:
			return "C-" + string(unicode.ToLower(r)), r, false
		case mods&tcell.ModAlt != 0:
			return "A-" + string(unicode.ToLower(r)), r, false
		case mods&tcell.ModMeta != 0:
			return "M-" + string(unicode.ToLower(r)), r, false
		default:
			return string(r), r, unicode.IsPrint(r)
		}
	case tcell.KeyEnter:
		return "Enter", 0, false
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "Backspace", 0, false
	case tcell.KeyTab:
		return "Tab", 0, false
	case tcell.KeyEscape:
		return "Esc", 0, false
	case tcell.KeyDelete:
		return "Del", 0, false
	case tcell.KeyLeft:
		return "Left", 0, false
	case tcell.KeyRight:
		return "Right", 0, false
	case tcell.KeyUp:
		return "Up", 0, false
	case tcell.KeyDown:
		return "Down", 0, false
	case tcell.KeyHome:
		return "Home", 0, false
	case tcell.KeyEnd:
		return "End", 0, false
	case tcell.KeyPgUp:
		return "PgUp", 0, false
	case tcell.KeyPgDn:
		return "PgDn", 0, false
	default:
		if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
			return "C-" + string(rune('a'+ev.Key()-tcell.KeyCtrlA)), 0, false
		}
		return "", 0, false
	}
}
