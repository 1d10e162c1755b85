package editor

import "testing"

func TestSelectionRange(t *testing.T) {
	headAfterAnchor := NewSelection(0, 5)
	if start, end := headAfterAnchor.Range(); start != 0 || end != 5 {
		t.Errorf("Range = (%d, %d), want (0, 5)", start, end)
	}

	headBeforeAnchor := NewSelection(5, 0)
	if start, end := headBeforeAnchor.Range(); start != 0 || end != 5 {
		t.Errorf("Range = (%d, %d), want (0, 5)", start, end)
	}
}

func TestSelectionWithHead(t *testing.T) {
	sel := SelectionAt(5)
	if start, end := sel.Range(); start != 5 || end != 5 {
		t.Errorf("Range = (%d, %d), want (5, 5)", start, end)
	}

	sel = sel.WithHead(6)
	if start, end := sel.Range(); start != 5 || end != 6 {
		t.Errorf("Range = (%d, %d), want (5, 6)", start, end)
	}

	sel = sel.WithHead(4)
	if start, end := sel.Range(); start != 4 || end != 5 {
		t.Errorf("Range = (%d, %d), want (4, 5)", start, end)
	}
}

func TestSelectionContains(t *testing.T) {
	sel := NewSelection(7, 3)

	for pos, want := range map[int]bool{2: false, 3: true, 5: true, 7: true, 8: false} {
		if got := sel.Contains(pos); got != want {
			t.Errorf("Contains(%d) = %v, want %v", pos, got, want)
		}
	}
}
