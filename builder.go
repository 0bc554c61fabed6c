package sparse

import "sort"

// Builder accumulates entries out of Morton order, keyed by row/column,
// and materializes them into a Matrix on demand. Builder is the mutable
// escape hatch for incremental construction (grounded on the teacher's
// DOK, the one format meant for "good at incrementally constructing,
// poor for arithmetic"): every other part of this package builds and
// consumes immutable Matrix values directly.
type Builder[T Elem[T]] struct {
	entries map[Key]T
}

// NewBuilder returns an empty Builder.
func NewBuilder[T Elem[T]]() *Builder[T] {
	return &Builder[T]{entries: make(map[Key]T)}
}

// Set stores v at (row, col), replacing any value already there.
// Setting the zero value removes the key, matching every other
// constructor's no-spurious-zero invariant.
func (b *Builder[T]) Set(row, col uint32, v T) {
	key := Key{Row: row, Col: col}
	if v.IsZero() {
		delete(b.entries, key)
		return
	}
	b.entries[key] = v
}

// Delete removes any value stored at (row, col).
func (b *Builder[T]) Delete(row, col uint32) {
	delete(b.entries, Key{Row: row, Col: col})
}

// At returns the value stored at (row, col) and true, or the zero value
// and false if nothing is stored there.
func (b *Builder[T]) At(row, col uint32) (T, bool) {
	v, ok := b.entries[Key{Row: row, Col: col}]
	return v, ok
}

// Len returns the number of entries currently staged in b.
func (b *Builder[T]) Len() int { return len(b.entries) }

// Build sorts the staged entries into ascending Morton order and
// returns the resulting Matrix. Build does not reset or otherwise
// invalidate b; subsequent Set/Delete calls and a later Build are safe.
func (b *Builder[T]) Build() Matrix[T] {
	if len(b.entries) == 0 {
		return Empty[T]()
	}
	keys := make([]Key, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Code() < keys[j].Code() })

	rows := make([]uint32, len(keys))
	cols := make([]uint32, len(keys))
	vals := make([]T, len(keys))
	for i, k := range keys {
		rows[i], cols[i], vals[i] = k.Row, k.Col, b.entries[k]
	}
	return newSorted(rows, cols, vals)
}
