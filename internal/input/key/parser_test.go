package key

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		notation string
		want     []Event
	}{
		{"<C-b><C-a>x", []Event{
			NewRuneEvent('b', ModCtrl),
			NewRuneEvent('a', ModCtrl),
			NewRuneEvent('x', ModNone),
		}},
		{"xxd", []Event{
			NewRuneEvent('x', ModNone),
			NewRuneEvent('x', ModNone),
			NewRuneEvent('d', ModNone),
		}},
		{"ZZ", []Event{
			NewRuneEvent('Z', ModShift),
			NewRuneEvent('Z', ModShift),
		}},
		{":", []Event{NewRuneEvent(':', ModNone)}},
		{"dd x", []Event{
			NewRuneEvent('d', ModNone),
			NewRuneEvent('d', ModNone),
		}},
		{"<ESC>", []Event{NewSpecialEvent(KeyEscape, ModNone)}},
		{"<esc>", []Event{NewSpecialEvent(KeyEscape, ModNone)}},
		{"<CR><BS><DEL>", []Event{
			NewSpecialEvent(KeyEnter, ModNone),
			NewSpecialEvent(KeyBackspace, ModNone),
			NewSpecialEvent(KeyDelete, ModNone),
		}},
		{"<TAB>", []Event{NewSpecialEvent(KeyTab, ModNone)}},
		{"<S-TAB>", []Event{NewSpecialEvent(KeyBackTab, ModShift)}},
		{"<LEFT><DOWN><UP><RIGHT>", []Event{
			NewSpecialEvent(KeyLeft, ModNone),
			NewSpecialEvent(KeyDown, ModNone),
			NewSpecialEvent(KeyUp, ModNone),
			NewSpecialEvent(KeyRight, ModNone),
		}},
		{"<F1>", []Event{NewSpecialEvent(KeyF1, ModNone)}},
		{"<f12>", []Event{NewSpecialEvent(KeyF12, ModNone)}},
		{"<M-x>", []Event{NewRuneEvent('x', ModAlt)}},
		{"<C-B>", []Event{NewRuneEvent('B', ModCtrl)}},
		{"<c-r>", []Event{NewRuneEvent('r', ModCtrl)}},
	}
	for _, tt := range tests {
		t.Run(tt.notation, func(t *testing.T) {
			got, err := Parse(tt.notation)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.notation, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.notation, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	notations := []string{
		">",
		"a>b",
		"<a<b>",
		"<C-",
		"<>",
		"<S-a>",
		"<C-ab>",
		"<C->",
		"<Cx>",
		"<F0>",
		"<F13>",
		"<Fx>",
		"^",
		"a^",
		"é",
	}
	for _, notation := range notations {
		if _, err := Parse(notation); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", notation)
		}
	}
}
