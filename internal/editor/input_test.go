package editor

import "testing"

func TestInputConstructors(t *testing.T) {
	tests := []struct {
		input Input
		kind  Kind
	}{
		{None(), KindNone},
		{InsertChar('a'), KindInsertChar},
		{Backspace(), KindBackspace},
		{Enter(), KindEnter},
		{Cancel(), KindCancel},
		{MoveCursorLeft(), KindMoveCursorLeft},
		{MoveCursorRight(), KindMoveCursorRight},
		{BeginSave(), KindBeginSave},
		{BeginOpen(), KindBeginOpen},
		{BeginNewFile(), KindBeginNewFile},
		{DismissMessage(), KindDismissMessage},
	}

	for _, tc := range tests {
		if tc.input.Kind != tc.kind {
			t.Errorf("expected kind %s, got %s", tc.kind, tc.input.Kind)
		}
	}
}

func TestInputString(t *testing.T) {
	if got := InsertChar('x').String(); got != `InsertChar('x')` {
		t.Errorf("unexpected string: %s", got)
	}
	if got := Cancel().String(); got != "Cancel" {
		t.Errorf("unexpected string: %s", got)
	}
	if got := None().String(); got != "None" {
		t.Errorf("unexpected string: %s", got)
	}
}
