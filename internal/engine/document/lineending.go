package document

import "strings"

// LineEnding specifies the line ending style of a document on disk.
// Text in memory always uses LF; the original style is restored on save.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the escaped representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// DetectLineEnding inspects s and reports its line ending style, judged
// by the first line break found. Text without carriage returns is LF.
func DetectLineEnding(s string) LineEnding {
	i := strings.IndexByte(s, '\r')
	if i < 0 {
		return LineEndingLF
	}
	if i+1 < len(s) && s[i+1] == '\n' {
		return LineEndingCRLF
	}
	return LineEndingCR
}

// normalizeToLF converts CRLF and lone CR line breaks to LF.
func normalizeToLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
