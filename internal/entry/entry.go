// Package entry holds the (row, col, value) triple shared by the stream
// merge and heap merge packages, so neither has to import the other to
// agree on a common element shape.
package entry

// Entry is one (row, col, value) triple from a sorted Morton-ordered
// stream.
type Entry[T any] struct {
	Row, Col uint32
	Val      T
}
