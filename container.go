package sparse

import (
	"sort"

	"github.com/jroesch/sparse/morton"
)

// Key names one stored coordinate. Its Morton code determines its
// position in a Matrix's ascending order.
type Key struct {
	Row, Col uint32
}

// Code returns k's canonical Morton (Z-order) code.
func (k Key) Code() morton.Code { return morton.Encode(k.Row, k.Col) }

// Matrix is an immutable sparse matrix: three equal-length arrays — row
// coordinates, column coordinates, and values — held in strictly
// ascending Morton order with no duplicate keys. Matrix values are never
// mutated after construction; arithmetic and transforms always produce a
// new Matrix, and SplitAt/SplitOnBit1/SplitOnBit2 slice views share the
// receiver's backing arrays rather than copy them.
type Matrix[T Elem[T]] struct {
	rows []uint32
	cols []uint32
	vals []T
}

// newSorted wraps already-sorted, duplicate-free parallel arrays as a
// Matrix without re-validating or copying them. Callers (FromList,
// Builder.Build, the arithmetic kernels) are responsible for the
// ordering invariant.
func newSorted[T Elem[T]](rows, cols []uint32, vals []T) Matrix[T] {
	return Matrix[T]{rows: rows, cols: cols, vals: vals}
}

// Empty returns the matrix with no stored entries.
func Empty[T Elem[T]]() Matrix[T] {
	return Matrix[T]{}
}

// Singleton returns a matrix with exactly one stored entry at key.
func Singleton[T Elem[T]](key Key, v T) Matrix[T] {
	return Matrix[T]{rows: []uint32{key.Row}, cols: []uint32{key.Col}, vals: []T{v}}
}

// Size returns the number of stored entries.
func (m Matrix[T]) Size() int { return len(m.vals) }

// IsEmpty reports whether m has no stored entries.
func (m Matrix[T]) IsEmpty() bool { return len(m.vals) == 0 }

// code returns the Morton code stored at position i.
func (m Matrix[T]) code(i int) morton.Code {
	return morton.Encode(m.rows[i], m.cols[i])
}

// LowKey returns the key at position 0. LowKey panics if m is empty.
func (m Matrix[T]) LowKey() Key {
	return Key{Row: m.rows[0], Col: m.cols[0]}
}

// HighKey returns the key at position Size()-1. HighKey panics if m is
// empty.
func (m Matrix[T]) HighKey() Key {
	i := len(m.rows) - 1
	return Key{Row: m.rows[i], Col: m.cols[i]}
}

// HeadVal returns the value stored at position 0. HeadVal panics if m is
// empty.
func (m Matrix[T]) HeadVal() T { return m.vals[0] }

// Lookup returns the value stored at (row, col) and true, or the zero
// value and false if no entry is stored there. Lookup is not an error
// condition — it is the documented "absent" outcome spec calls for.
func (m Matrix[T]) Lookup(row, col uint32) (T, bool) {
	target := morton.Encode(row, col)
	i := sort.Search(len(m.rows), func(i int) bool {
		return morton.Ges(m.code(i), target)
	})
	if i < len(m.rows) && m.code(i) == target {
		return m.vals[i], true
	}
	var zero T
	return zero, false
}

// SplitAt slices m into two matrices of size idx and Size()-idx,
// sharing the receiver's backing arrays. SplitAt panics if idx is out
// of [0, Size()].
func (m Matrix[T]) SplitAt(idx int) (left, right Matrix[T]) {
	left = Matrix[T]{rows: m.rows[:idx], cols: m.cols[:idx], vals: m.vals[:idx]}
	right = Matrix[T]{rows: m.rows[idx:], cols: m.cols[idx:], vals: m.vals[idx:]}
	return left, right
}

// SplitOnBit1 partitions m into a prefix whose row falls in the same
// quadtree half as aRow (judged against bRow) and a suffix in the other
// half. The split point is the first index l such that the highest set
// bit of xor(rows[l], bRow) lies below that of xor(aRow, bRow), that is,
// rows[l] agrees with bRow on the bit where aRow and bRow first
// differ; it is found by binary search, per
// spec's binary-search contract (a monotone predicate, false on a
// prefix, true on a suffix). The precondition aRow != bRow must hold;
// otherwise the split is trivially all-left or all-right.
func (m Matrix[T]) SplitOnBit1(aRow, bRow uint32) (left, right Matrix[T]) {
	threshold := morton.Xor(morton.Code(aRow), morton.Code(bRow))
	l := sort.Search(len(m.rows), func(i int) bool {
		d := morton.Xor(morton.Code(m.rows[i]), morton.Code(bRow))
		return d < threshold && d < d^threshold
	})
	return m.SplitAt(l)
}

// SplitOnBit2 is SplitOnBit1's column-axis counterpart: it partitions m
// on the column coordinate instead of the row coordinate.
func (m Matrix[T]) SplitOnBit2(aCol, bCol uint32) (left, right Matrix[T]) {
	threshold := morton.Xor(morton.Code(aCol), morton.Code(bCol))
	l := sort.Search(len(m.cols), func(i int) bool {
		d := morton.Xor(morton.Code(m.cols[i]), morton.Code(bCol))
		return d < threshold && d < d^threshold
	})
	return m.SplitAt(l)
}

// Keys returns the stored keys in ascending Morton order. The returned
// slice is freshly allocated; it does not alias the receiver's internal
// row/col arrays.
func (m Matrix[T]) Keys() []Key {
	keys := make([]Key, len(m.rows))
	for i := range m.rows {
		keys[i] = Key{Row: m.rows[i], Col: m.cols[i]}
	}
	return keys
}

// Values returns the stored values in ascending Morton order, aliasing
// the receiver's internal array — callers must not mutate it.
func (m Matrix[T]) Values() []T { return m.vals }
