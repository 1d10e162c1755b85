// Package grapheme provides grapheme cluster boundaries and display
// widths for line strings.
//
// Cursor movement never lands inside a grapheme cluster: a combining
// sequence, emoji ZWJ chain, or regional-indicator pair moves as one unit.
// Offsets are char offsets (code points) into the given string, matching
// the rope's position model.
//
// Widths are display cells. A cluster's width comes from Unicode width
// rules; anything the tables call zero-width (controls, a lone combining
// mark) counts as one cell so every char keeps a column.
package grapheme
