package blas

// Dusdot (sparse dot product, r <- x^T*y) computes the dot product of the
// sparse vector x and the dense vector y. indx supplies the index values
// to gather and incy the stride for y.
func Dusdot(x []float64, indx []int, y []float64, incy int) (dot float64) {
	for i, index := range indx {
		dot += x[i] * y[index*incy]
	}
	return dot
}
