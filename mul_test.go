package sparse

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

func TestMulBasic2x2(t *testing.T) {
	// [1 2]   [5 6]   [19 22]
	// [3 4] * [7 8] = [43 50]
	a := build(p(0, 0, 1), p(0, 1, 2), p(1, 0, 3), p(1, 1, 4))
	b := build(p(0, 0, 5), p(0, 1, 6), p(1, 0, 7), p(1, 1, 8))
	got := Mul(a, b)

	want := map[[2]uint32]float64{
		{0, 0}: 19, {0, 1}: 22, {1, 0}: 43, {1, 1}: 50,
	}
	if got.Size() != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), got.Size())
	}
	for k, wv := range want {
		v, ok := got.Lookup(k[0], k[1])
		if !ok || float64(v) != wv {
			t.Fatalf("Lookup%v = %v, %v; want %v, true", k, v, ok, wv)
		}
	}
}

func TestMulWithIdentityIsIdentityOperation(t *testing.T) {
	m := build(p(0, 0, 1), p(1, 1, 3), p(0, 2, 2), p(3, 0, 4))
	id, err := Identity[Float64](4)
	if err != nil {
		t.Fatalf("Identity: %v", err)
	}
	left := Mul(id, m)
	right := Mul(m, id)

	for _, pr := range m.ToList() {
		if v, ok := left.Lookup(pr.Key.Row, pr.Key.Col); !ok || v != pr.Val {
			t.Fatalf("id*m missing/mismatched entry %+v: got %v, %v", pr, v, ok)
		}
		if v, ok := right.Lookup(pr.Key.Row, pr.Key.Col); !ok || v != pr.Val {
			t.Fatalf("m*id missing/mismatched entry %+v: got %v, %v", pr, v, ok)
		}
	}
	if left.Size() != m.Size() || right.Size() != m.Size() {
		t.Fatalf("identity multiply should not introduce or drop entries")
	}
}

func TestMulNonOverlappingRowsProducesEmpty(t *testing.T) {
	// a's only column is 5; b has no row 5, so nothing can ever match.
	a := build(p(0, 5, 1), p(1, 5, 2))
	b := build(p(0, 0, 1), p(1, 1, 2), p(2, 2, 3))
	got := Mul(a, b)
	if !got.IsEmpty() {
		t.Fatalf("expected empty product, got %+v", got.ToList())
	}
}

func TestMulMatchesNaiveReference(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	const n = 12
	a := randomDense(rnd, n, n, 0.3)
	b := randomDense(rnd, n, n, 0.3)

	am := denseToMatrix(a, n, n)
	bm := denseToMatrix(b, n, n)
	got := Mul(am, bm)

	want := naiveMul(a, b, n, n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, ok := got.Lookup(uint32(i), uint32(j))
			gv := 0.0
			if ok {
				gv = float64(v)
			}
			if !floats.EqualWithinAbs(gv, want[i][j], 1e-9) {
				t.Fatalf("product[%d][%d] = %v, want %v", i, j, gv, want[i][j])
			}
		}
	}
}

func randomDense(rnd *rand.Rand, rows, cols int, density float64) [][]float64 {
	out := make([][]float64, rows)
	for i := range out {
		out[i] = make([]float64, cols)
		for j := range out[i] {
			if rnd.Float64() < density {
				out[i][j] = rnd.Float64()*2 - 1
			}
		}
	}
	return out
}

func denseToMatrix(d [][]float64, rows, cols int) Matrix[Float64] {
	b := NewBuilder[Float64]()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if d[i][j] != 0 {
				b.Set(uint32(i), uint32(j), Float64(d[i][j]))
			}
		}
	}
	return b.Build()
}

func naiveMul(a, b [][]float64, rows, inner, cols int) [][]float64 {
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for k := 0; k < inner; k++ {
			if a[i][k] == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

func TestMulWithCustomTimesAndCombine(t *testing.T) {
	a := build(p(0, 0, 2), p(0, 1, 3))
	b := build(p(0, 0, 4), p(1, 0, 5))
	// times: max instead of *; combine: keep both (never cancel)
	got := MulWith(
		func(x, y Float64) Float64 {
			if x > y {
				return x
			}
			return y
		},
		func(x, y Float64) (Float64, bool) { return x.Add(y), true },
		a, b,
	)
	if got.IsEmpty() {
		t.Fatalf("expected a nonempty result")
	}
}
