package grapheme

import "github.com/rivo/uniseg"

// NextBoundary returns the char offset of the first grapheme boundary
// after pos, clamped to the char length of s.
func NextBoundary(s string, pos int) int {
	return NthNextBoundary(s, pos, 1)
}

// PrevBoundary returns the char offset of the last grapheme boundary
// before pos, clamped to 0.
func PrevBoundary(s string, pos int) int {
	return NthPrevBoundary(s, pos, 1)
}

// NthNextBoundary returns the char offset of the nth grapheme boundary
// after pos. A pos inside a cluster snaps forward to the cluster's end
// first. The result is clamped to the char length of s.
func NthNextBoundary(s string, pos, n int) int {
	if n <= 0 {
		return pos
	}

	cum := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cum += len(gr.Runes())
		if cum > pos {
			n--
			if n == 0 {
				return cum
			}
		}
	}

	return cum
}

// NthPrevBoundary returns the char offset of the nth grapheme boundary
// before pos. A pos inside a cluster snaps back to the cluster's start
// first. The result is clamped to 0.
func NthPrevBoundary(s string, pos, n int) int {
	if n <= 0 {
		return pos
	}

	bounds := []int{0}
	cum := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cum += len(gr.Runes())
		if cum >= pos {
			break
		}
		bounds = append(bounds, cum)
	}

	if n >= len(bounds) {
		return 0
	}
	return bounds[len(bounds)-n]
}
