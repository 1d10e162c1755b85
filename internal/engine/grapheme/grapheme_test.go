package grapheme

import "testing"

func TestNextBoundaryASCII(t *testing.T) {
	s := "lala\n"

	tests := []struct {
		pos  int
		want int
	}{
		{0, 1},
		{3, 4},
		{4, 5},
		{5, 5}, // clamped at end
		{9, 5},
	}

	for _, tt := range tests {
		if got := NextBoundary(s, tt.pos); got != tt.want {
			t.Errorf("NextBoundary(%q, %d) = %d, want %d", s, tt.pos, got, tt.want)
		}
	}
}

func TestPrevBoundaryASCII(t *testing.T) {
	s := "lala\n"

	tests := []struct {
		pos  int
		want int
	}{
		{5, 4},
		{4, 3},
		{1, 0},
		{0, 0}, // clamped at start
	}

	for _, tt := range tests {
		if got := PrevBoundary(s, tt.pos); got != tt.want {
			t.Errorf("PrevBoundary(%q, %d) = %d, want %d", s, tt.pos, got, tt.want)
		}
	}
}

func TestNthBoundaries(t *testing.T) {
	s := "abcdef"

	if got := NthNextBoundary(s, 1, 3); got != 4 {
		t.Errorf("NthNextBoundary = %d, want 4", got)
	}
	if got := NthNextBoundary(s, 1, 100); got != 6 {
		t.Errorf("NthNextBoundary clamped = %d, want 6", got)
	}
	if got := NthPrevBoundary(s, 5, 2); got != 3 {
		t.Errorf("NthPrevBoundary = %d, want 3", got)
	}
	if got := NthPrevBoundary(s, 5, 100); got != 0 {
		t.Errorf("NthPrevBoundary clamped = %d, want 0", got)
	}
	if got := NthNextBoundary(s, 2, 0); got != 2 {
		t.Errorf("NthNextBoundary with n=0 = %d, want 2", got)
	}
}

func TestBoundariesCombining(t *testing.T) {
	// "e" + COMBINING ACUTE ACCENT forms one cluster of two chars.
	s := "aéb"

	if got := NextBoundary(s, 1); got != 3 {
		t.Errorf("NextBoundary over combining cluster = %d, want 3", got)
	}
	if got := PrevBoundary(s, 3); got != 1 {
		t.Errorf("PrevBoundary over combining cluster = %d, want 1", got)
	}
	// Mid-cluster positions snap to the enclosing boundaries.
	if got := NextBoundary(s, 2); got != 3 {
		t.Errorf("NextBoundary mid-cluster = %d, want 3", got)
	}
	if got := PrevBoundary(s, 2); got != 1 {
		t.Errorf("PrevBoundary mid-cluster = %d, want 1", got)
	}
}

func TestBoundariesEmoji(t *testing.T) {
	// Family emoji: four code points joined by ZWJ, one cluster.
	family := "\U0001F468‍\U0001F469‍\U0001F466"
	s := "x" + family + "y"
	clusterChars := 5

	if got := NextBoundary(s, 1); got != 1+clusterChars {
		t.Errorf("NextBoundary over ZWJ cluster = %d, want %d", got, 1+clusterChars)
	}
	if got := PrevBoundary(s, 1+clusterChars); got != 1 {
		t.Errorf("PrevBoundary over ZWJ cluster = %d, want 1", got)
	}
}
