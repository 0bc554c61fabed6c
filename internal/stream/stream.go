// Package stream implements a lazy, pull-driven merge of two sorted
// (key, value) sequences under a caller-supplied combining function,
// grounded on the two-pointer merge loop in the teacher's
// VecCOO.addVecSparse, generalized from an eager slice-append into a
// closure-based iterator so that a multiplication kernel built on top of
// it never has to materialize a whole sub-result before consuming it.
package stream

import (
	"github.com/jroesch/sparse/internal/entry"
	"github.com/jroesch/sparse/morton"
)

// Stream is an immutable, lazily-advanced sorted sequence of Entry
// values. The zero Stream is the empty stream. A non-empty Stream holds
// its head eagerly and its tail behind a closure (Rest), so building a
// Stream does no work beyond computing the head.
type Stream[T any] struct {
	Entry entry.Entry[T]
	More  bool
	Rest  func() Stream[T]
}

// Empty returns the empty stream.
func Empty[T any]() Stream[T] { return Stream[T]{} }

// Single returns a one-element stream.
func Single[T any](row, col uint32, v T) Stream[T] {
	return Stream[T]{
		Entry: entry.Entry[T]{Row: row, Col: col, Val: v},
		More:  true,
		Rest:  func() Stream[T] { return Stream[T]{} },
	}
}

// FromSlices builds a lazy Stream over three parallel arrays, assumed
// already in strictly ascending Morton order. The arrays are captured by
// reference, not copied; the stream reads them lazily as it is advanced.
func FromSlices[T any](rows, cols []uint32, vals []T) Stream[T] {
	return fromIndex(rows, cols, vals, 0)
}

func fromIndex[T any](rows, cols []uint32, vals []T, i int) Stream[T] {
	if i >= len(rows) {
		return Stream[T]{}
	}
	return Stream[T]{
		Entry: entry.Entry[T]{Row: rows[i], Col: cols[i], Val: vals[i]},
		More:  true,
		Rest:  func() Stream[T] { return fromIndex(rows, cols, vals, i+1) },
	}
}

// Combiner combines two values stored under the same key, optionally
// thinning the result (returning ok=false drops the key entirely). This
// is the hook addWith0/sub/mul use to avoid storing spurious zeros.
type Combiner[T any] func(a, b T) (v T, ok bool)

// Merge lazily interleaves l and r in ascending Morton order. When both
// streams' heads share a key, combine decides the output: ok=false drops
// the key, matching spec's zero-thinning contract. When only one stream
// has the head, its entry is emitted unchanged.
func Merge[T any](l, r Stream[T], combine Combiner[T]) Stream[T] {
	if !l.More {
		return r
	}
	if !r.More {
		return l
	}

	lc := morton.Encode(l.Entry.Row, l.Entry.Col)
	rc := morton.Encode(r.Entry.Row, r.Entry.Col)

	switch {
	case morton.Lts(lc, rc):
		head := l.Entry
		return Stream[T]{
			Entry: head,
			More:  true,
			Rest:  func() Stream[T] { return Merge(l.Rest(), r, combine) },
		}
	case morton.Gts(lc, rc):
		head := r.Entry
		return Stream[T]{
			Entry: head,
			More:  true,
			Rest:  func() Stream[T] { return Merge(l, r.Rest(), combine) },
		}
	default:
		lTail, rTail := l.Rest(), r.Rest()
		v, ok := combine(l.Entry.Val, r.Entry.Val)
		if !ok {
			return Merge(lTail, rTail, combine)
		}
		head := entry.Entry[T]{Row: l.Entry.Row, Col: l.Entry.Col, Val: v}
		return Stream[T]{
			Entry: head,
			More:  true,
			Rest:  func() Stream[T] { return Merge(lTail, rTail, combine) },
		}
	}
}

// Collect drains a Stream into three parallel arrays, in ascending
// Morton order. It is the inverse of FromSlices.
func Collect[T any](s Stream[T]) (rows, cols []uint32, vals []T) {
	for s.More {
		rows = append(rows, s.Entry.Row)
		cols = append(cols, s.Entry.Col)
		vals = append(vals, s.Entry.Val)
		s = s.Rest()
	}
	return rows, cols, vals
}
