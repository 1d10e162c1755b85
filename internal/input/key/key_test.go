package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyNone, "None"},
		{KeyEscape, "Escape"},
		{KeyBackTab, "BackTab"},
		{KeyRune, "Rune"},
		{KeyF1, "F1"},
		{KeyF7, "F7"},
		{KeyF12, "F12"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyIsSpecial(t *testing.T) {
	if KeyRune.IsSpecial() {
		t.Error("KeyRune reported special")
	}
	if KeyNone.IsSpecial() {
		t.Error("KeyNone reported special")
	}
	if !KeyEscape.IsSpecial() {
		t.Error("KeyEscape not reported special")
	}
}
