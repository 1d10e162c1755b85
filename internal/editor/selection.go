package editor

// Selection is an inclusive span of text between a fixed anchor and a
// movable head. The head may sit before the anchor.
type Selection struct {
	anchor int
	head   int
}

// NewSelection creates a selection spanning anchor to head.
func NewSelection(anchor, head int) Selection {
	return Selection{anchor: anchor, head: head}
}

// SelectionAt creates an empty selection anchored at pos.
func SelectionAt(pos int) Selection {
	return Selection{anchor: pos, head: pos}
}

// Anchor returns the fixed end of the selection.
func (s Selection) Anchor() int {
	return s.anchor
}

// Head returns the movable end of the selection.
func (s Selection) Head() int {
	return s.head
}

// WithHead returns the selection with its head moved to pos.
func (s Selection) WithHead(pos int) Selection {
	s.head = pos
	return s
}

// Range returns the selection's bounds in order. Both ends are inclusive.
func (s Selection) Range() (start, end int) {
	if s.anchor >= s.head {
		return s.head, s.anchor
	}
	return s.anchor, s.head
}

// Contains reports whether pos falls inside the selection.
func (s Selection) Contains(pos int) bool {
	start, end := s.Range()
	return pos >= start && pos <= end
}
