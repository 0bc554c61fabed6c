package sparse

import (
	"github.com/jroesch/sparse/internal/stream"
	"github.com/jroesch/sparse/internal/zheap"
	"github.com/jroesch/sparse/morton"
)

// Mul multiplies a and b by recursively treating each as an implicit
// quadtree over its Morton-ordered keys, combining partial products with
// the element type's own * and coalescing colliding output keys with a
// zero-thinning +. Mul never materializes a dense intermediate, nor an
// explicit tree: the "tree" is purely the lexicographic structure of the
// Morton codes plus split-by-bit, exactly as spec requires.
func Mul[T Elem[T]](a, b Matrix[T]) Matrix[T] {
	return MulWith(func(x, y T) T { return x.Mul(y) }, defaultAddCombine[T], a, b)
}

// MulWith is Mul generalized over the scalar multiply (times) and the
// output-collision combiner (combine), matching spec's external
// interface mulWith(times, combiner). Mul(a, b) is MulWith with the
// element type's own Mul and a zero-thinning Add.
func MulWith[T Elem[T]](times func(a, b T) T, combine stream.Combiner[T], a, b Matrix[T]) Matrix[T] {
	if a.IsEmpty() || b.IsEmpty() {
		return Empty[T]()
	}

	var mulHeap func(x, y Matrix[T]) zheap.Heap[T]
	mulHeap = func(x, y Matrix[T]) zheap.Heap[T] {
		if x.IsEmpty() || y.IsEmpty() {
			return zheap.Empty[T]()
		}
		if x.Size() == 1 && y.Size() == 1 {
			return go11(x.LowKey(), x.HeadVal(), y.LowKey(), y.HeadVal(), times)
		}
		// go12 (x singleton), go21 (y singleton) and go22 (both many)
		// all reduce to the same split-bit decision procedure: a
		// singleton operand always presents a zero span on both its
		// axes, which the table below proves can never select a split
		// of that (unsplittable) side.
		return goMany(x, y, mulHeap)
	}

	h := mulHeap(a, b)
	rows, cols, vals := stream.Collect(zheap.Drain(h, combine))
	return newSorted(rows, cols, vals)
}

func defaultAddCombine[T Elem[T]](a, b T) (T, bool) {
	v := a.Add(b)
	return v, !v.IsZero()
}

// go11 is the single-by-single base case: if the left operand's column
// doesn't match the right operand's row, the product at this leaf is
// empty; otherwise it is the one-element heap holding their product.
func go11[T Elem[T]](xa Key, a T, ya Key, b T, times func(a, b T) T) zheap.Heap[T] {
	if xa.Col != ya.Row {
		return zheap.Empty[T]()
	}
	return zheap.Singleton[T](xa.Row, ya.Col, times(a, b))
}

// goMany implements the shared many-sided decision procedure (spec's
// go12/go21/go22 table): the overlap early-out, then the split-bit
// selection between fby (disjoint output regions, concatenate) and add
// (same output region, coalescing merge).
func goMany[T Elem[T]](x, y Matrix[T], recurse func(Matrix[T], Matrix[T]) zheap.Heap[T]) zheap.Heap[T] {
	xa, xb := x.LowKey(), x.HighKey()
	ya, yb := y.LowKey(), y.HighKey()

	xi := morton.Xor(morton.Code(xa.Row), morton.Code(xb.Row)) // span in left rows
	xj := morton.Xor(morton.Code(xa.Col), morton.Code(xb.Col)) // span in left cols (inner dim)
	yj := morton.Xor(morton.Code(ya.Row), morton.Code(yb.Row)) // span in right rows (inner dim)
	yk := morton.Xor(morton.Code(ya.Col), morton.Code(yb.Col)) // span in right cols

	xiyj := xi | yj
	ykxj := yk | xj

	// Spans are compared by the position of their highest set bit, not by
	// value: msbLess(a, b) reports that a's highest set bit lies below b's.
	msbLess := func(a, b morton.Code) bool { return a < b && a < a^b }
	msbGe := func(a, b morton.Code) bool { return !msbLess(a, b) }

	// Overlap test: if the left operand's column range and the right
	// operand's row range lie in disjoint quadtree nodes, their product
	// is empty.
	if msbLess(xiyj|ykxj, morton.Xor(morton.Code(xa.Col), morton.Code(ya.Row))) {
		return zheap.Empty[T]()
	}

	switch {
	case msbGe(xiyj, ykxj) && msbGe(xi, yj):
		// left by row: result halves are disjoint in output rows.
		l, r := x.SplitOnBit1(xa.Row, xb.Row)
		return zheap.Fby(recurse(l, y), recurse(r, y))
	case msbGe(xiyj, ykxj):
		// right by row (inner dimension): same output region.
		l, r := y.SplitOnBit1(ya.Row, yb.Row)
		return zheap.Mix(recurse(x, l), recurse(x, r))
	case msbGe(yk, xj):
		// right by col: result halves are disjoint in output cols.
		l, r := y.SplitOnBit2(ya.Col, yb.Col)
		return zheap.Fby(recurse(x, l), recurse(x, r))
	default:
		// left by col (inner dimension): same output region.
		l, r := x.SplitOnBit2(xa.Col, xb.Col)
		return zheap.Mix(recurse(l, y), recurse(r, y))
	}
}
