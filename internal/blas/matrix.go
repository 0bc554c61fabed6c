package blas

import "sort"

// SparseMatrix is a row-compressed (CSR) view: row i's column indices and
// values live in Ind[Indptr[i]:Indptr[i+1]] and Data[Indptr[i]:Indptr[i+1]],
// each sorted ascending by column.
type SparseMatrix struct {
	I, J   int
	Indptr []int
	Ind    []int
	Data   []float64
}

// FromEntries builds a CSR view from a Morton-ordered (rows, cols, vals)
// triplet. Morton order interleaves row and column bits, so it is not
// row-contiguous: this is an O(n) counting pass to bucket entries by row,
// followed by a per-row sort on column, not a reinterpretation of an
// already row-sorted layout.
func FromEntries(height, width uint32, rows, cols []uint32, vals []float64) *SparseMatrix {
	n := len(vals)
	indptr := make([]int, height+1)
	for _, r := range rows {
		indptr[r+1]++
	}
	for i := 1; i <= int(height); i++ {
		indptr[i] += indptr[i-1]
	}

	cursor := make([]int, height)
	copy(cursor, indptr[:height])
	ind := make([]int, n)
	data := make([]float64, n)
	for i := 0; i < n; i++ {
		r := rows[i]
		pos := cursor[r]
		ind[pos] = int(cols[i])
		data[pos] = vals[i]
		cursor[r]++
	}

	for r := 0; r < int(height); r++ {
		lo, hi := indptr[r], indptr[r+1]
		sort.Sort(byColumn{ind[lo:hi], data[lo:hi]})
	}

	return &SparseMatrix{I: int(height), J: int(width), Indptr: indptr, Ind: ind, Data: data}
}

type byColumn struct {
	ind  []int
	data []float64
}

func (b byColumn) Len() int           { return len(b.ind) }
func (b byColumn) Less(i, j int) bool { return b.ind[i] < b.ind[j] }
func (b byColumn) Swap(i, j int) {
	b.ind[i], b.ind[j] = b.ind[j], b.ind[i]
	b.data[i], b.data[j] = b.data[j], b.data[i]
}

// At returns the element at coordinate (i, j).
func (m *SparseMatrix) At(i, j int) float64 {
	if uint(i) >= uint(m.I) || uint(j) >= uint(m.J) {
		panic("sparse/internal/blas: index out of range")
	}
	for k := m.Indptr[i]; k < m.Indptr[i+1]; k++ {
		if m.Ind[k] == j {
			return m.Data[k]
		}
	}
	return 0
}
