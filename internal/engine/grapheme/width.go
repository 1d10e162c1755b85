package grapheme

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ClusterWidth returns the display width of a single grapheme cluster.
// Zero-width results fall back to the rune width tables, then to 1.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	if w := uniseg.StringWidth(cluster); w > 0 {
		return w
	}

	r, size := utf8.DecodeRuneInString(cluster)
	if size == len(cluster) {
		if w := runewidth.RuneWidth(r); w > 0 {
			return w
		}
	}
	return 1
}

// Width returns the display width of s.
func Width(s string) int {
	return WidthTo(s, utf8.RuneCountInString(s))
}

// WidthTo returns the display width of the first chars characters of s.
// A chars offset inside a cluster counts only the boundaries before it.
func WidthTo(s string, chars int) int {
	if chars <= 0 {
		return 0
	}

	width := 0
	cum := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		clusterChars := len(gr.Runes())
		if cum+clusterChars > chars {
			break
		}
		width += clusterWidthOf(gr)
		cum += clusterChars
		if cum == chars {
			break
		}
	}

	return width
}

// CharAtWidth returns the char offset of the last grapheme boundary whose
// prefix width does not exceed width. Vertical movement uses this to
// restore a remembered column in the target line.
func CharAtWidth(s string, width int) int {
	if width <= 0 {
		return 0
	}

	w := 0
	cum := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cw := clusterWidthOf(gr)
		if w+cw > width {
			break
		}
		w += cw
		cum += len(gr.Runes())
		if w == width {
			break
		}
	}

	return cum
}

func clusterWidthOf(gr *uniseg.Graphemes) int {
	if w := gr.Width(); w > 0 {
		return w
	}

	runes := gr.Runes()
	if len(runes) == 1 {
		if w := runewidth.RuneWidth(runes[0]); w > 0 {
			return w
		}
	}
	return 1
}
