package sparse

import "testing"

func build(pairs ...struct {
	r, c uint32
	v    float64
}) Matrix[Float64] {
	rows := make([]uint32, len(pairs))
	cols := make([]uint32, len(pairs))
	vals := make([]Float64, len(pairs))
	for i, p := range pairs {
		rows[i], cols[i], vals[i] = p.r, p.c, Float64(p.v)
	}
	return newSorted(rows, cols, vals)
}

func p(r, c uint32, v float64) struct {
	r, c uint32
	v    float64
} {
	return struct {
		r, c uint32
		v    float64
	}{r, c, v}
}

func TestSizeAndIsEmpty(t *testing.T) {
	m := Empty[Float64]()
	if !m.IsEmpty() || m.Size() != 0 {
		t.Fatalf("expected empty matrix")
	}
	m2 := Singleton[Float64](Key{0, 0}, 5)
	if m2.IsEmpty() || m2.Size() != 1 {
		t.Fatalf("expected non-empty singleton")
	}
}

func TestLookup(t *testing.T) {
	m := build(p(0, 0, 1), p(1, 1, 2), p(5, 5, 3))
	if v, ok := m.Lookup(1, 1); !ok || v != 2 {
		t.Fatalf("Lookup(1,1) = %v, %v", v, ok)
	}
	if _, ok := m.Lookup(2, 2); ok {
		t.Fatalf("Lookup(2,2) should be absent")
	}
}

func TestLowHighKeyAndHeadVal(t *testing.T) {
	m := build(p(0, 0, 1), p(1, 1, 2), p(5, 5, 3))
	if m.LowKey() != (Key{0, 0}) {
		t.Fatalf("LowKey = %+v", m.LowKey())
	}
	if m.HighKey() != (Key{5, 5}) {
		t.Fatalf("HighKey = %+v", m.HighKey())
	}
	if m.HeadVal() != 1 {
		t.Fatalf("HeadVal = %v", m.HeadVal())
	}
}

func TestSplitAtSharesStorage(t *testing.T) {
	m := build(p(0, 0, 1), p(1, 1, 2), p(5, 5, 3))
	l, r := m.SplitAt(1)
	if l.Size() != 1 || r.Size() != 2 {
		t.Fatalf("split sizes wrong: %d, %d", l.Size(), r.Size())
	}
	if l.LowKey() != (Key{0, 0}) || r.LowKey() != (Key{1, 1}) {
		t.Fatalf("split contents wrong")
	}
}

func TestKeysAndValuesOrdering(t *testing.T) {
	m := build(p(0, 0, 1), p(1, 1, 2), p(5, 5, 3))
	keys := m.Keys()
	vals := m.Values()
	if len(keys) != 3 || len(vals) != 3 {
		t.Fatalf("wrong lengths")
	}
	for i := 0; i+1 < len(keys); i++ {
		if !(keys[i].Code() < keys[i+1].Code()) {
			t.Fatalf("keys not strictly ascending at %d", i)
		}
	}
}
