package sparse

import "golang.org/x/exp/rand"

// Random builds a height x width matrix with entries scattered randomly
// across the full coordinate range at the given density (0 density
// 1; 0 yields the empty matrix, 1 yields one entry per coordinate),
// each drawn uniformly from [0, 1) and seeded from seed for
// reproducible benchmarks and tests.
func Random(height, width uint32, density float64, seed uint64) Matrix[Float64] {
	if density <= 0 || height == 0 || width == 0 {
		return Empty[Float64]()
	}
	if density > 1 {
		density = 1
	}

	rnd := rand.New(rand.NewSource(seed))
	b := NewBuilder[Float64]()
	total := uint64(height) * uint64(width)
	target := uint64(density * float64(total))

	for uint64(b.Len()) < target {
		row := uint32(rnd.Intn(int(height)))
		col := uint32(rnd.Intn(int(width)))
		b.Set(row, col, Float64(rnd.Float64()))
	}
	return b.Build()
}
