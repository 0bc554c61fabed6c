package blas

// Dusmv (sparse matrix/vector multiply, y <- alpha*A*x + y or
// y <- alpha*A^T*x + y) multiplies the dense vector x by the sparse
// matrix a (or its transpose) and adds the result into the dense vector
// y. alpha scales a; incx and incy are the strides for x and y.
func Dusmv(transA bool, alpha float64, a *SparseMatrix, x []float64, incx int, y []float64, incy int) {
	if alpha == 0 {
		return
	}

	if transA {
		for i := 0; i < a.I; i++ {
			begin, end := a.Indptr[i], a.Indptr[i+1]
			Dusaxpy(alpha*x[i*incx], a.Data[begin:end], a.Ind[begin:end], y, incy)
		}
		return
	}

	for i := 0; i < a.I; i++ {
		begin, end := a.Indptr[i], a.Indptr[i+1]
		y[i*incy] += alpha * Dusdot(a.Data[begin:end], a.Ind[begin:end], x, incx)
	}
}
