package sparse

import (
	"math"
	"sort"

	"github.com/jroesch/sparse/internal/stream"
	"github.com/jroesch/sparse/morton"
)

// Pair is one (key, value) entry, the shape FromList and ToList exchange
// with callers that don't want to think in parallel arrays.
type Pair[T any] struct {
	Key Key
	Val T
}

// FromList builds a Matrix from an arbitrary list of pairs: it sorts by
// Morton code and, for a repeated key, keeps the last pair supplying
// that key (the same discipline Builder.Build uses), rather than
// requiring the caller to pre-sort or pre-dedup.
func FromList[T Elem[T]](pairs []Pair[T]) Matrix[T] {
	if len(pairs) == 0 {
		return Empty[T]()
	}
	sorted := make([]Pair[T], len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key.Code() < sorted[j].Key.Code()
	})

	rows := make([]uint32, 0, len(sorted))
	cols := make([]uint32, 0, len(sorted))
	vals := make([]T, 0, len(sorted))
	for i := 0; i < len(sorted); i++ {
		if i+1 < len(sorted) && sorted[i].Key == sorted[i+1].Key {
			continue // a later pair with the same key wins
		}
		rows = append(rows, sorted[i].Key.Row)
		cols = append(cols, sorted[i].Key.Col)
		vals = append(vals, sorted[i].Val)
	}
	return newSorted(rows, cols, vals)
}

// ToList returns m's entries as (key, value) pairs in ascending Morton
// order.
func (m Matrix[T]) ToList() []Pair[T] {
	out := make([]Pair[T], m.Size())
	for i := range m.vals {
		out[i] = Pair[T]{Key: Key{Row: m.rows[i], Col: m.cols[i]}, Val: m.vals[i]}
	}
	return out
}

// Identity returns the width x width identity matrix: one entry of
// One() on every diagonal key 0..width-1. width is a uint64 so a caller
// constructing from a wider integer type can be rejected up front:
// Identity returns ErrDimensionOverflow rather than silently truncating
// a width that does not fit the uint32 coordinate range.
func Identity[T Elem[T]](width uint64) (Matrix[T], error) {
	if width > uint64(math.MaxUint32)+1 {
		return Matrix[T]{}, ErrDimensionOverflow
	}
	if width == 0 {
		return Empty[T](), nil
	}
	rows := make([]uint32, width)
	cols := make([]uint32, width)
	vals := make([]T, width)
	var zero T
	one := zero.One()
	for i := uint64(0); i < width; i++ {
		rows[i] = uint32(i)
		cols[i] = uint32(i)
		vals[i] = one
	}
	return newSorted(rows, cols, vals), nil
}

// MustIdentity is Identity, panicking instead of returning an error.
func MustIdentity[T Elem[T]](width uint64) Matrix[T] {
	m, err := Identity[T](width)
	if err != nil {
		panic(err)
	}
	return m
}

// FromInt implements the ring's fromInteger: 0 is the unique integer
// with a canonical matrix (the empty matrix, the additive identity for
// every shape). Any other n has no shape to build against, so FromInt
// returns ErrNonZeroScalar rather than guess one.
func FromInt[T Elem[T]](n int64) (Matrix[T], error) {
	if n != 0 {
		return Matrix[T]{}, ErrNonZeroScalar
	}
	return Empty[T](), nil
}

// Transpose returns m with every key's row and column swapped. Because
// swapping a Morton code's bit planes does not preserve code order,
// Transpose re-sorts rather than merely relabeling in place.
func Transpose[T Elem[T]](m Matrix[T]) Matrix[T] {
	n := m.Size()
	type swapped struct {
		code     morton.Code
		row, col uint32
		val      T
	}
	items := make([]swapped, n)
	for i := 0; i < n; i++ {
		items[i] = swapped{
			code: morton.Swap(m.code(i)),
			row:  m.cols[i],
			col:  m.rows[i],
			val:  m.vals[i],
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].code < items[j].code })

	rows := make([]uint32, n)
	cols := make([]uint32, n)
	vals := make([]T, n)
	for i, it := range items {
		rows[i], cols[i], vals[i] = it.row, it.col, it.val
	}
	return newSorted(rows, cols, vals)
}

// MapValues applies f to every stored value, keeping keys unchanged.
// The element type may change, so long as the result type also
// satisfies Elem. MapValues does not re-thin zeroes produced by f —
// callers that can produce a zero should route through AddWith0 or
// filter the result themselves.
func MapValues[T Elem[T], W Elem[W]](m Matrix[T], f func(T) W) Matrix[W] {
	rows := append([]uint32(nil), m.rows...)
	cols := append([]uint32(nil), m.cols...)
	vals := make([]W, m.Size())
	for i, v := range m.vals {
		vals[i] = f(v)
	}
	return newSorted(rows, cols, vals)
}

// Negate returns -m, computed as 0 - v at every stored entry.
func Negate[T Elem[T]](m Matrix[T]) Matrix[T] {
	return MapValues[T, T](m, func(v T) T {
		var zero T
		return zero.Sub(v)
	})
}

// AddWith0 merges a and b by Morton key, running combine whenever both
// sides supply the same key and keeping either side's value unchanged
// otherwise. combine's second return value lets the caller thin a
// colliding pair to nothing (ordinary addition cancelling to zero);
// returning false drops the key entirely rather than storing a zero.
func AddWith0[T Elem[T]](combine stream.Combiner[T], a, b Matrix[T]) Matrix[T] {
	l := stream.FromSlices(a.rows, a.cols, a.vals)
	r := stream.FromSlices(b.rows, b.cols, b.vals)
	merged := stream.Merge(l, r, combine)
	rows, cols, vals := stream.Collect(merged)
	return newSorted(rows, cols, vals)
}

// AddWith is AddWith0 for a combine that never wants to drop a
// colliding key.
func AddWith[T Elem[T]](f func(a, b T) T, a, b Matrix[T]) Matrix[T] {
	return AddWith0(func(x, y T) (T, bool) { return f(x, y), true }, a, b)
}

// Add returns a + b, coalescing shared keys with the element type's own
// Add and dropping any key whose combined value turns out zero.
func Add[T Elem[T]](a, b Matrix[T]) Matrix[T] {
	return AddWith0(defaultAddCombine[T], a, b)
}

// Sub returns a - b, computed as a plus Negate(b): a key stored only in b
// comes out negated, and any key whose combined value turns out zero is
// dropped.
func Sub[T Elem[T]](a, b Matrix[T]) Matrix[T] {
	return AddWith0(defaultAddCombine[T], a, Negate(b))
}

// With returns a copy of m with (row, col) set to v, an O(Size())
// copy-on-write point update built from the same merge primitive as
// Add rather than a specialised insertion routine. Setting a key to a
// zero value removes it (or leaves it absent), as Builder.Set does.
func (m Matrix[T]) With(row, col uint32, v T) Matrix[T] {
	if v.IsZero() {
		if _, ok := m.Lookup(row, col); !ok {
			return m
		}
	}
	l := stream.FromSlices(m.rows, m.cols, m.vals)
	r := stream.Single[T](row, col, v)
	merged := stream.Merge(l, r, func(_, incoming T) (T, bool) {
		return incoming, !incoming.IsZero()
	})
	rows, cols, vals := stream.Collect(merged)
	return newSorted(rows, cols, vals)
}

// EachValue calls fn once per stored entry in ascending Morton order.
func (m Matrix[T]) EachValue(fn func(row, col uint32, v T)) {
	for i := range m.vals {
		fn(m.rows[i], m.cols[i], m.vals[i])
	}
}

// The methods below let Matrix[T] itself satisfy Elem[Matrix[T]], which
// is how a matrix-of-matrices composes through Add/Sub/Mul unchanged:
// the outer Matrix's element type is an inner Matrix, and arithmetic on
// the outer matrix dispatches back into these same operations one
// level down.

// Add implements Elem for Matrix[T]: block matrix addition.
func (m Matrix[T]) Add(other Matrix[T]) Matrix[T] { return Add(m, other) }

// Sub implements Elem for Matrix[T]: block matrix subtraction.
func (m Matrix[T]) Sub(other Matrix[T]) Matrix[T] { return Sub(m, other) }

// Mul implements Elem for Matrix[T]: block matrix multiplication.
func (m Matrix[T]) Mul(other Matrix[T]) Matrix[T] { return Mul(m, other) }

// One has no shape to size a block identity against — unlike scalar
// element types, a Matrix's "1" depends on a width nothing here can
// infer. One panics; build a block identity with Identity[T] and an
// explicit width instead.
func (m Matrix[T]) One() Matrix[T] {
	panic("sparse: Matrix.One has no width to size a block identity from; use Identity[T] with an explicit width")
}

// IsZero implements Elem for Matrix[T]: a block is the additive
// identity exactly when it stores nothing.
func (m Matrix[T]) IsZero() bool { return m.IsEmpty() }
