// Package rope provides an immutable, character-indexed rope for text
// storage and manipulation.
//
// A rope is a tree where leaf nodes contain text chunks and internal nodes
// store aggregated metrics (chars, bytes, newlines). This implementation
// uses a B+ tree variant for cache locality and worst-case performance.
//
// Key properties:
//   - O(log n) insertion, deletion, and random access
//   - Offsets are Unicode code points, never bytes
//   - Operations return new ropes; originals are never modified
//   - Snapshots are O(1) value copies sharing structure
//   - Line positions resolve through the same aggregated metrics
//
// Basic usage:
//
//	r := rope.FromString("hello world")
//	r = r.Insert(5, ",")           // "hello, world"
//	r = r.Delete(0, 6)             // " world" minus "hello,"
//	line := r.CharToLine(3)        // 0
package rope
