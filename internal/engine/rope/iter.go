package rope

// chunkIterFrame represents a position in the tree traversal.
type chunkIterFrame struct {
	node     *Node
	childIdx int // next child index to visit (internal nodes)
	chunkIdx int // next chunk index to visit (leaf nodes)
}

// ChunkIterator iterates over the chunks of a rope in text order.
type ChunkIterator struct {
	rope    Rope
	stack   []chunkIterFrame
	started bool
	chunk   Chunk
}

// Chunks returns an iterator over all chunks in the rope.
func (r Rope) Chunks() *ChunkIterator {
	return &ChunkIterator{
		rope:  r,
		stack: make([]chunkIterFrame, 0, 8),
	}
}

// Next advances to the next non-empty chunk.
// Returns false when iteration is complete.
func (it *ChunkIterator) Next() bool {
	if !it.started {
		it.started = true
		if it.rope.root == nil {
			return false
		}
		it.stack = append(it.stack, chunkIterFrame{node: it.rope.root})
		return it.findNextChunk()
	}

	if len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		if frame.node.IsLeaf() {
			frame.chunkIdx++
		}
	}
	return it.findNextChunk()
}

func (it *ChunkIterator) findNextChunk() bool {
	for len(it.stack) > 0 {
		frame := &it.stack[len(it.stack)-1]
		node := frame.node

		if node.IsLeaf() {
			for frame.chunkIdx < len(node.chunks) {
				chunk := node.chunks[frame.chunkIdx]
				if !chunk.IsEmpty() {
					it.chunk = chunk
					return true
				}
				frame.chunkIdx++
			}
			it.pop()
			continue
		}

		if frame.childIdx < len(node.children) {
			child := node.children[frame.childIdx]
			it.stack = append(it.stack, chunkIterFrame{node: child})
			continue
		}

		it.pop()
	}

	return false
}

func (it *ChunkIterator) pop() {
	it.stack = it.stack[:len(it.stack)-1]
	if len(it.stack) > 0 {
		it.stack[len(it.stack)-1].childIdx++
	}
}

// Chunk returns the current chunk.
func (it *ChunkIterator) Chunk() Chunk {
	return it.chunk
}
