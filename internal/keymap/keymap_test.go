package keymap

import (
	"strings"
	"testing"

	"github.com/dshills/quill/internal/editor"
)

func TestDefaultBindingsResolve(t *testing.T) {
	km := Default()

	tests := []struct {
		chord  string
		intent string
	}{
		{"C-c", IntentQuit},
		{"C-s", IntentSave},
		{"C-o", IntentOpen},
		{"C-n", IntentNew},
		{"C-x", IntentDismiss},
		{"Enter", IntentEnter},
		{"Backspace", IntentBackspace},
		{"Left", IntentMoveLeft},
		{"Right", IntentMoveRight},
	}

	for _, tc := range tests {
		intent, ok := km.Resolve(tc.chord)
		if !ok {
			t.Errorf("chord %s not bound", tc.chord)
			continue
		}
		if intent != tc.intent {
			t.Errorf("chord %s resolved to %s, want %s", tc.chord, intent, tc.intent)
		}
	}
}

func TestUnboundChord(t *testing.T) {
	km := Default()
	if _, ok := km.Resolve("C-z"); ok {
		t.Error("C-z should not be bound by default")
	}
}

func TestEveryDefaultIntentHasAnInput(t *testing.T) {
	for _, b := range Default().Bindings() {
		if _, ok := InputForIntent(b.Intent); !ok {
			t.Errorf("binding %s names unknown intent %s", b.Keys, b.Intent)
		}
	}
}

func TestInputForIntent(t *testing.T) {
	in, ok := InputForIntent(IntentSave)
	if !ok || in.Kind != editor.KindBeginSave {
		t.Errorf("expected BeginSave, got %s (%v)", in, ok)
	}

	if _, ok := InputForIntent("no.such.intent"); ok {
		t.Error("unknown intent should not resolve")
	}
}

func TestWithOverrides(t *testing.T) {
	km := Default().With(
		Binding{Keys: "C-q", Intent: IntentQuit},
		Binding{Keys: "C-c", Intent: IntentDismiss},
	)

	if intent, _ := km.Resolve("C-q"); intent != IntentQuit {
		t.Errorf("added binding missing: %s", intent)
	}
	if intent, _ := km.Resolve("C-c"); intent != IntentDismiss {
		t.Errorf("override not applied: %s", intent)
	}

	// The original keymap is untouched.
	if intent, _ := Default().Resolve("C-c"); intent != IntentQuit {
		t.Errorf("Default mutated: %s", intent)
	}
}

func TestLoadReader(t *testing.T) {
	config := `{
		"name": "custom",
		"bindings": [
			{"keys": "C-w", "intent": "file.save", "description": "Save"},
			{"keys": "C-c", "intent": "message.dismiss"}
		]
	}`

	km, err := LoadReader(strings.NewReader(config))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if km.Name != "custom" {
		t.Errorf("expected name custom, got %s", km.Name)
	}
	if intent, _ := km.Resolve("C-w"); intent != IntentSave {
		t.Errorf("file binding missing: %s", intent)
	}
	if intent, _ := km.Resolve("C-c"); intent != IntentDismiss {
		t.Errorf("file override not applied: %s", intent)
	}
	// Defaults not overridden survive.
	if intent, _ := km.Resolve("C-s"); intent != IntentSave {
		t.Errorf("default binding lost: %s", intent)
	}
}

func TestLoadReaderRejectsBadJSON(t *testing.T) {
	if _, err := LoadReader(strings.NewReader("{not json")); err == nil {
		t.Error("expected decode error")
	}
}
