package rope

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Rope is an immutable rope data structure for efficient text storage.
// Operations return new Rope values; the original is never modified, so
// snapshots are O(1) copies sharing structure.
//
// All public offsets are char offsets (Unicode code points), not bytes.
type Rope struct {
	root *Node
}

// New creates an empty rope.
func New() Rope {
	return Rope{root: newLeafNode()}
}

// FromString creates a rope from a string.
func FromString(s string) Rope {
	if len(s) == 0 {
		return New()
	}

	return buildFromChunks(splitIntoChunks(s))
}

// FromReader creates a rope from an io.Reader.
func FromReader(r io.Reader) (Rope, error) {
	var builder Builder
	if _, err := builder.ReadFrom(r); err != nil {
		return Rope{}, err
	}
	return builder.Build(), nil
}

// buildFromChunks builds a balanced rope from a slice of chunks.
func buildFromChunks(chunks []Chunk) Rope {
	if len(chunks) == 0 {
		return New()
	}

	var leaves []*Node
	for i := 0; i < len(chunks); i += MaxChunksPerLeaf {
		end := i + MaxChunksPerLeaf
		if end > len(chunks) {
			end = len(chunks)
		}
		leafChunks := make([]Chunk, end-i)
		copy(leafChunks, chunks[i:end])
		leaves = append(leaves, newLeafNodeWithChunks(leafChunks))
	}

	nodes := leaves
	for len(nodes) > 1 {
		var parents []*Node
		for i := 0; i < len(nodes); i += MaxChildren {
			end := i + MaxChildren
			if end > len(nodes) {
				end = len(nodes)
			}
			children := make([]*Node, end-i)
			copy(children, nodes[i:end])
			parents = append(parents, newInternalNode(children))
		}
		nodes = parents
	}

	return Rope{root: nodes[0]}
}

// Len returns the total char length.
func (r Rope) Len() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Chars
}

// LenBytes returns the total UTF-8 byte length.
func (r Rope) LenBytes() int {
	if r.root == nil {
		return 0
	}
	return r.root.summary.Bytes
}

// LineCount returns the number of lines (newlines + 1).
func (r Rope) LineCount() int {
	if r.root == nil {
		return 1
	}
	return r.root.summary.Newlines + 1
}

// IsEmpty reports whether the rope contains no text.
func (r Rope) IsEmpty() bool {
	return r.Len() == 0
}

// String returns the full text as a string.
// Use sparingly for large ropes.
func (r Rope) String() string {
	if r.root == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(r.LenBytes())
	r.root.appendTo(&sb)
	return sb.String()
}

// Slice returns the text in the char range [start, end).
// The range is clamped to the rope bounds.
func (r Rope) Slice(start, end int) string {
	if r.root == nil || start >= end {
		return ""
	}
	if start < 0 {
		start = 0
	}
	return r.root.textInRange(start, end)
}

// RuneAt returns the rune at the given char offset.
// The second return is false when the offset is out of range.
func (r Rope) RuneAt(pos int) (rune, bool) {
	if r.root == nil || pos < 0 || pos >= r.Len() {
		return 0, false
	}

	node := r.root
	for !node.IsLeaf() {
		idx, rel := node.findChildByChar(pos)
		node = node.children[idx]
		pos = rel
	}

	for _, chunk := range node.chunks {
		if pos < chunk.Chars() {
			ru, _ := utf8.DecodeRuneInString(chunk.String()[chunk.byteOffset(pos):])
			return ru, true
		}
		pos -= chunk.Chars()
	}

	return 0, false
}

// Insert inserts text at the given char offset.
// Offsets past the end append. Returns a new rope; the original is unchanged.
func (r Rope) Insert(pos int, text string) Rope {
	if len(text) == 0 {
		return r
	}

	if r.root == nil || r.Len() == 0 {
		return FromString(text)
	}

	if pos <= 0 {
		return FromString(text).Concat(r)
	}

	if pos >= r.Len() {
		return r.Concat(FromString(text))
	}

	left, right := r.Split(pos)
	return left.Concat(FromString(text)).Concat(right)
}

// Delete removes text in the char range [start, end), clamped to the
// rope bounds. Returns a new rope; the original is unchanged.
func (r Rope) Delete(start, end int) Rope {
	if r.root == nil || start >= end {
		return r
	}

	length := r.Len()
	if start < 0 {
		start = 0
	}
	if start >= length {
		return r
	}
	if end > length {
		end = length
	}

	if start == 0 && end >= length {
		return New()
	}
	if start == 0 {
		_, right := r.Split(end)
		return right
	}
	if end >= length {
		left, _ := r.Split(start)
		return left
	}

	left, temp := r.Split(start)
	_, right := temp.Split(end - start)

	return left.Concat(right)
}

// Split splits the rope at a char offset, returning two ropes.
// Left contains [0, offset), right contains [offset, end).
func (r Rope) Split(offset int) (Rope, Rope) {
	if r.root == nil || offset <= 0 {
		return New(), r
	}
	if offset >= r.Len() {
		return r, New()
	}

	leftRoot, rightRoot := r.root.split(offset)
	return Rope{root: leftRoot}, Rope{root: rightRoot}
}

// Concat concatenates two ropes.
// Returns a new rope; the originals are unchanged.
func (r Rope) Concat(other Rope) Rope {
	if r.root == nil || r.Len() == 0 {
		return other
	}
	if other.root == nil || other.Len() == 0 {
		return r
	}

	return Rope{root: concat(r.root, other.root)}
}

// CharToLine returns the index of the line containing the given char
// offset. Offsets at or past the end resolve to the last line.
func (r Rope) CharToLine(pos int) int {
	if r.root == nil || pos <= 0 {
		return 0
	}
	if pos > r.Len() {
		pos = r.Len()
	}

	node := r.root
	line := 0

	for !node.IsLeaf() {
		idx, rel := node.findChildByChar(pos)
		for i := 0; i < idx; i++ {
			line += node.childSummaries[i].Newlines
		}
		node = node.children[idx]
		pos = rel
	}

	for _, chunk := range node.chunks {
		if pos <= 0 {
			break
		}
		if pos >= chunk.Chars() {
			line += chunk.Summary().Newlines
			pos -= chunk.Chars()
			continue
		}
		line += countNewlines(chunk.String()[:chunk.byteOffset(pos)])
		break
	}

	return line
}

// LineToChar returns the char offset of the first char of the given line.
// Lines at or past LineCount resolve to the rope length, so the exclusive
// end of line i is LineToChar(i+1).
func (r Rope) LineToChar(line int) int {
	if r.root == nil || line <= 0 {
		return 0
	}
	if line >= r.LineCount() {
		return r.Len()
	}

	node := r.root
	chars := 0
	n := line // position right after the nth newline

	for !node.IsLeaf() {
		for i, s := range node.childSummaries {
			if n <= s.Newlines {
				node = node.children[i]
				break
			}
			n -= s.Newlines
			chars += s.Chars
		}
	}

	for _, chunk := range node.chunks {
		s := chunk.Summary()
		if n <= s.Newlines {
			at := findNthNewline(chunk.String(), n)
			return chars + byteToChar(chunk.String(), at+1)
		}
		n -= s.Newlines
		chars += s.Chars
	}

	return chars
}

// Line returns the text of the given line, including its trailing
// newline. Only the final line lacks one.
func (r Rope) Line(i int) string {
	return r.Slice(r.LineToChar(i), r.LineToChar(i+1))
}

// LineChars returns the char length of the given line, counting its
// trailing newline.
func (r Rope) LineChars(i int) int {
	return r.LineToChar(i+1) - r.LineToChar(i)
}

// WriteTo writes the full text to w. It implements io.WriterTo.
func (r Rope) WriteTo(w io.Writer) (int64, error) {
	var total int64

	iter := r.Chunks()
	for iter.Next() {
		n, err := io.WriteString(w, iter.Chunk().String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// Equal reports whether two ropes contain the same text, regardless of
// how that text is chunked.
func (r Rope) Equal(other Rope) bool {
	if r.Len() != other.Len() || r.LenBytes() != other.LenBytes() {
		return false
	}

	a := r.Chunks()
	b := other.Chunks()
	var sa, sb string

	for {
		if len(sa) == 0 {
			if !a.Next() {
				break
			}
			sa = a.Chunk().String()
		}
		if len(sb) == 0 {
			if !b.Next() {
				return false
			}
			sb = b.Chunk().String()
		}

		n := min(len(sa), len(sb))
		if sa[:n] != sb[:n] {
			return false
		}
		sa, sb = sa[n:], sb[n:]
	}

	return len(sb) == 0 && !b.Next()
}

// Height returns the height of the rope tree.
// Useful for debugging and testing balance.
func (r Rope) Height() int {
	if r.root == nil {
		return 0
	}
	return int(r.root.height) + 1
}

// ChunkCount returns the total number of chunks in the rope.
func (r Rope) ChunkCount() int {
	if r.root == nil {
		return 0
	}
	return countChunks(r.root)
}

func countChunks(n *Node) int {
	if n.IsLeaf() {
		return len(n.chunks)
	}
	count := 0
	for _, child := range n.children {
		count += countChunks(child)
	}
	return count
}
