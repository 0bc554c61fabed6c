package stream

import "testing"

func nonZeroAdd(a, b float64) (float64, bool) {
	v := a + b
	return v, v != 0
}

func keepAll(a, b float64) (float64, bool) {
	return a + b, true
}

func TestMergeDisjoint(t *testing.T) {
	l := FromSlices([]uint32{0, 1}, []uint32{0, 1}, []float64{1, 2})
	r := FromSlices([]uint32{0, 2}, []uint32{2, 2}, []float64{10, 3})
	merged := Merge(l, r, nonZeroAdd)
	rows, cols, vals := Collect(merged)

	// Morton codes: (0,0)=0, (1,1)=3, (0,2)=4, (2,2)=12.
	wantRows := []uint32{0, 1, 0, 2}
	wantCols := []uint32{0, 1, 2, 2}
	wantVals := []float64{1, 2, 10, 3}
	assertEqual(t, rows, cols, vals, wantRows, wantCols, wantVals)
}

func TestMergeCoalescesEqualKeys(t *testing.T) {
	l := FromSlices([]uint32{0, 1}, []uint32{0, 1}, []float64{1, 2})
	r := FromSlices([]uint32{0, 2}, []uint32{0, 2}, []float64{10, 3})
	merged := Merge(l, r, nonZeroAdd)
	rows, cols, vals := Collect(merged)

	wantRows := []uint32{0, 1, 2}
	wantCols := []uint32{0, 1, 2}
	wantVals := []float64{11, 2, 3}
	assertEqual(t, rows, cols, vals, wantRows, wantCols, wantVals)
}

func TestMergeZeroThinning(t *testing.T) {
	l := Single[float64](0, 0, 1)
	r := Single[float64](0, 0, -1)
	merged := Merge(l, r, nonZeroAdd)
	if merged.More {
		t.Fatalf("expected zero-thinned result to be empty, got entry %+v", merged.Entry)
	}
}

func TestMergeKeepAllRetainsZero(t *testing.T) {
	l := Single[float64](0, 0, 1)
	r := Single[float64](0, 0, -1)
	merged := Merge(l, r, keepAll)
	if !merged.More || merged.Entry.Val != 0 {
		t.Fatalf("expected a stored zero with keepAll combiner, got %+v (more=%v)", merged.Entry, merged.More)
	}
}

func TestMergeWithEmpty(t *testing.T) {
	l := FromSlices([]uint32{0}, []uint32{0}, []float64{5})
	empty := Empty[float64]()
	if rows, _, _ := Collect(Merge(l, empty, nonZeroAdd)); len(rows) != 1 {
		t.Fatalf("l+empty should be l, got %d rows", len(rows))
	}
	if rows, _, _ := Collect(Merge(empty, l, nonZeroAdd)); len(rows) != 1 {
		t.Fatalf("empty+l should be l, got %d rows", len(rows))
	}
}

func assertEqual(t *testing.T, rows, cols []uint32, vals []float64, wantRows, wantCols []uint32, wantVals []float64) {
	t.Helper()
	if len(rows) != len(wantRows) {
		t.Fatalf("got %d entries, want %d", len(rows), len(wantRows))
	}
	for i := range rows {
		if rows[i] != wantRows[i] || cols[i] != wantCols[i] || vals[i] != wantVals[i] {
			t.Fatalf("entry %d: got (%d,%d,%v), want (%d,%d,%v)", i, rows[i], cols[i], vals[i], wantRows[i], wantCols[i], wantVals[i])
		}
	}
}
