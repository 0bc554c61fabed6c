package sparse

import "gonum.org/v1/gonum/mat"

// Dense wraps a Matrix[Float64] together with the shape it does not
// otherwise carry, so it can stand in wherever gonum.org/v1/gonum/mat
// expects a mat.Matrix — any gonum routine that accepts a Matrix
// parameter (not just mat.Dense) can consume this directly.
type Dense struct {
	rows, cols uint32
	m          Matrix[Float64]
}

var _ mat.Matrix = Dense{}

// AsGonum pairs m with an explicit shape to produce a mat.Matrix view.
func AsGonum(m Matrix[Float64], rows, cols uint32) Dense {
	return Dense{rows: rows, cols: cols, m: m}
}

// Dims implements mat.Matrix.
func (d Dense) Dims() (r, c int) { return int(d.rows), int(d.cols) }

// At implements mat.Matrix.
func (d Dense) At(i, j int) float64 {
	v, _ := d.m.Lookup(uint32(i), uint32(j))
	return float64(v)
}

// T implements mat.Matrix via gonum's implicit-transpose wrapper,
// matching the teacher's own DOK.T()/COO.T() convention rather than
// eagerly transposing storage.
func (d Dense) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// ToDense materializes d into a *mat.Dense, copying every entry
// (including the zeroes) into a conventional row-major backing array.
func (d Dense) ToDense() *mat.Dense {
	out := mat.NewDense(int(d.rows), int(d.cols), nil)
	d.m.EachValue(func(row, col uint32, v Float64) {
		out.Set(int(row), int(col), float64(v))
	})
	return out
}

// NNZ returns the number of stored (non-zero) entries, mirroring the
// teacher's Sparser interface.
func (d Dense) NNZ() int { return d.m.Size() }
