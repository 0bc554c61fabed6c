// Package zheap implements the lazy "followed-by" / coalescing-merge
// discipline the recursive multiplication kernel uses to assemble its
// partial products without ever materializing a dense intermediate.
//
// A Heap is, despite the name, not a tree: it is the same closure-based
// lazy sorted sequence as package stream, kept as a separate type so that
// Fby's precondition (the caller already knows the two operands' key
// ranges are disjoint and in order) can be exploited for an O(1)
// concatenation that never re-compares keys — collapsing Fby into Mix
// would lose that guarantee, which is exactly what spec forbids.
package zheap

import (
	"github.com/jroesch/sparse/internal/entry"
	"github.com/jroesch/sparse/internal/stream"
	"github.com/jroesch/sparse/morton"
)

// Heap is an immutable, lazily-advanced sorted sequence of partial
// products. The zero Heap is empty.
type Heap[T any] struct {
	Entry entry.Entry[T]
	More  bool
	Rest  func() Heap[T]
}

// Empty returns the empty heap.
func Empty[T any]() Heap[T] { return Heap[T]{} }

// Singleton returns a heap holding exactly one (row, col, value) product,
// the result of the go11 single-by-single multiplication case.
func Singleton[T any](row, col uint32, v T) Heap[T] {
	return Heap[T]{
		Entry: entry.Entry[T]{Row: row, Col: col, Val: v},
		More:  true,
		Rest:  func() Heap[T] { return Heap[T]{} },
	}
}

// Mix merges two heaps whose key ranges may overlap, by interleaving
// their entries in ascending Morton order. Mix does not itself coalesce
// equal keys (it has no combiner to do so with) — duplicate keys are
// left adjacent in the output for Drain to coalesce when the caller is
// ready to combine values. Use Mix when the "add" row of the split-bit
// table applies: the two operands' output regions are the same region.
func Mix[T any](a, b Heap[T]) Heap[T] {
	if !a.More {
		return b
	}
	if !b.More {
		return a
	}

	ac := morton.Encode(a.Entry.Row, a.Entry.Col)
	bc := morton.Encode(b.Entry.Row, b.Entry.Col)

	if morton.Ges(bc, ac) {
		head := a.Entry
		return Heap[T]{
			Entry: head,
			More:  true,
			Rest:  func() Heap[T] { return Mix(a.Rest(), b) },
		}
	}
	head := b.Entry
	return Heap[T]{
		Entry: head,
		More:  true,
		Rest:  func() Heap[T] { return Mix(a, b.Rest()) },
	}
}

// Fby ("followed by") concatenates a then b. The caller must guarantee
// a's maximum key strictly precedes b's minimum key — the split-bit
// table only chooses Fby when the two operands are known, by
// construction, to land in disjoint output regions. Fby never inspects a
// key from b until a is exhausted, so it costs nothing beyond walking a.
func Fby[T any](a, b Heap[T]) Heap[T] {
	if !a.More {
		return b
	}
	head := a.Entry
	return Heap[T]{
		Entry: head,
		More:  true,
		Rest:  func() Heap[T] { return Fby(a.Rest(), b) },
	}
}

// Drain pops h's entries in ascending order as a stream.Stream, coalescing
// consecutive equal keys via combine. combine returning ok=false drops
// the coalesced key entirely (the zero-thinning hook addWith0 needs when
// two partial products cancel).
func Drain[T any](h Heap[T], combine stream.Combiner[T]) stream.Stream[T] {
	if !h.More {
		return stream.Stream[T]{}
	}
	return drainRun(h.Entry, h.Rest(), combine)
}

// drainRun accumulates same-key entries into cur until the heap's next
// key differs (or is exhausted), then emits cur and continues draining
// lazily from there.
func drainRun[T any](cur entry.Entry[T], rest Heap[T], combine stream.Combiner[T]) stream.Stream[T] {
	curCode := morton.Encode(cur.Row, cur.Col)
	for rest.More {
		nextCode := morton.Encode(rest.Entry.Row, rest.Entry.Col)
		if nextCode != curCode {
			break
		}
		v, ok := combine(cur.Val, rest.Entry.Val)
		rest = rest.Rest()
		if !ok {
			// the coalesced pair cancelled out; resume draining (if
			// anything remains) from whatever comes after it.
			return Drain(rest, combine)
		}
		cur = entry.Entry[T]{Row: cur.Row, Col: cur.Col, Val: v}
	}
	return stream.Stream[T]{
		Entry: cur,
		More:  true,
		Rest:  func() stream.Stream[T] { return Drain(rest, combine) },
	}
}
