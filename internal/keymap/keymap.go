// Package keymap maps key chords to named editor intents. Bindings come from
// the built-in defaults and, optionally, a user JSON file layered on top.
package keymap

// Binding maps a single key chord to a named intent.
type Binding struct {
	// Keys is the chord in canonical notation: a bare rune ("a"), a
	// special key name ("Enter", "Backspace", "Left"), or a modified key
	// ("C-s" for Ctrl+S, "A-x" for Alt+X).
	Keys string `json:"keys"`

	// Intent is the intent name the chord resolves to (see intent.go).
	Intent string `json:"intent"`

	// Description is shown in help output.
	Description string `json:"description,omitempty"`
}

// Keymap is an ordered set of bindings. Later bindings override earlier ones
// for the same chord.
type Keymap struct {
	// Name identifies the keymap for diagnostics.
	Name string

	bindings []Binding
	index    map[string]string
}

// New creates a keymap from bindings.
func New(name string, bindings []Binding) *Keymap {
	km := &Keymap{
		Name:     name,
		bindings: make([]Binding, 0, len(bindings)),
		index:    make(map[string]string, len(bindings)),
	}
	for _, b := range bindings {
		km.add(b)
	}
	return km
}

func (km *Keymap) add(b Binding) {
	if b.Keys == "" || b.Intent == "" {
		return
	}
	if _, exists := km.index[b.Keys]; !exists {
		km.bindings = append(km.bindings, b)
	} else {
		for i := range km.bindings {
			if km.bindings[i].Keys == b.Keys {
				km.bindings[i] = b
				break
			}
		}
	}
	km.index[b.Keys] = b.Intent
}

// With returns a copy of the keymap with the given bindings layered on top.
func (km *Keymap) With(bindings ...Binding) *Keymap {
	merged := New(km.Name, km.bindings)
	for _, b := range bindings {
		merged.add(b)
	}
	return merged
}

// Resolve returns the intent bound to the chord.
func (km *Keymap) Resolve(chord string) (string, bool) {
	intent, ok := km.index[chord]
	return intent, ok
}

// Bindings returns the bindings in order, for help output.
func (km *Keymap) Bindings() []Binding {
	out := make([]Binding, len(km.bindings))
	copy(out, km.bindings)
	return out
}
