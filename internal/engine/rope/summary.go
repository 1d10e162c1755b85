package rope

import "unicode/utf8"

// Summary holds aggregated metrics for a text span. It is the monoid
// combined up the tree; every node's summary is the sum of its children.
type Summary struct {
	// Bytes is the UTF-8 byte count.
	Bytes int

	// Chars is the Unicode code point count. All public rope offsets
	// are measured in chars.
	Chars int

	// Newlines is the number of '\n' characters.
	Newlines int
}

// Add combines two summaries.
func (s Summary) Add(other Summary) Summary {
	return Summary{
		Bytes:    s.Bytes + other.Bytes,
		Chars:    s.Chars + other.Chars,
		Newlines: s.Newlines + other.Newlines,
	}
}

// IsZero reports whether the summary describes empty text.
func (s Summary) IsZero() bool {
	return s.Bytes == 0
}

// ascii reports whether the span is known to be pure ASCII, in which
// case char offsets and byte offsets coincide.
func (s Summary) ascii() bool {
	return s.Bytes == s.Chars
}

// computeSummary calculates metrics for a string.
func computeSummary(s string) Summary {
	sum := Summary{Bytes: len(s)}
	for _, r := range s {
		sum.Chars++
		if r == '\n' {
			sum.Newlines++
		}
	}
	return sum
}

// charToByte converts a char offset within s to a byte offset.
// Offsets past the end clamp to len(s).
func charToByte(s string, chars int) int {
	if chars <= 0 {
		return 0
	}
	for i := range s {
		if chars == 0 {
			return i
		}
		chars--
	}
	return len(s)
}

// byteToChar converts a byte offset within s to a char offset.
// The offset must sit on a rune boundary.
func byteToChar(s string, bytes int) int {
	if bytes <= 0 {
		return 0
	}
	if bytes >= len(s) {
		return utf8.RuneCountInString(s)
	}
	return utf8.RuneCountInString(s[:bytes])
}

// findNthNewline returns the byte position of the nth newline (1-indexed),
// or -1 when s holds fewer than n newlines.
func findNthNewline(s string, n int) int {
	if n <= 0 {
		return -1
	}
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
			if count == n {
				return i
			}
		}
	}
	return -1
}

// countNewlines returns the number of '\n' bytes in s.
func countNewlines(s string) int {
	count := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			count++
		}
	}
	return count
}
