package sparse

import "github.com/jroesch/sparse/internal/blas"

// MulVec multiplies m (height x width) by the dense vector x, returning
// a dense vector of length height. x must have length width.
//
// m's keys do not carry their own shape, so the caller supplies height
// and width explicitly rather than have MulVec infer them from the
// highest stored key (an empty trailing row or column would otherwise
// be silently dropped).
func MulVec(m Matrix[Float64], height, width uint32, x []float64) []float64 {
	if uint32(len(x)) != width {
		panic("sparse: MulVec: x has the wrong length for width")
	}
	rows := make([]uint32, m.Size())
	cols := make([]uint32, m.Size())
	vals := make([]float64, m.Size())
	for i := range m.vals {
		rows[i], cols[i], vals[i] = m.rows[i], m.cols[i], float64(m.vals[i])
	}
	sm := blas.FromEntries(height, width, rows, cols, vals)

	y := make([]float64, height)
	blas.Dusmv(false, 1, sm, x, 1, y, 1)
	return y
}

// MulVecTrans multiplies m's transpose (width x height) by the dense
// vector x, returning a dense vector of length width. x must have
// length height. It avoids materializing Transpose(m) by asking the
// same CSR view for its transposed product directly.
func MulVecTrans(m Matrix[Float64], height, width uint32, x []float64) []float64 {
	if uint32(len(x)) != height {
		panic("sparse: MulVecTrans: x has the wrong length for height")
	}
	rows := make([]uint32, m.Size())
	cols := make([]uint32, m.Size())
	vals := make([]float64, m.Size())
	for i := range m.vals {
		rows[i], cols[i], vals[i] = m.rows[i], m.cols[i], float64(m.vals[i])
	}
	sm := blas.FromEntries(height, width, rows, cols, vals)

	y := make([]float64, width)
	blas.Dusmv(true, 1, sm, x, 1, y, 1)
	return y
}
