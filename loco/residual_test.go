package loco

import "testing"

func TestMapUnmapResidualRoundTrip(t *testing.T) {
	for r := -300; r <= 300; r++ {
		v := mapResidual(r)
		if v < 0 {
			t.Fatalf("mapResidual(%d) = %d, want non-negative", r, v)
		}
		got := unmapValue(v)
		if got != r {
			t.Fatalf("unmapValue(mapResidual(%d)) = %d, want %d", r, got, r)
		}
	}
}

func TestEncodeDecodeValueRoundTrip(t *testing.T) {
	for _, k := range []int{0, 1, 2, 3, 8} {
		for v := 0; v <= 40; v++ {
			w := newBitWriter(-1)
			encodeValue(w, v, k)
			r := newBitReader(w.bytes(), w.len())
			got := decodeValue(r, k)
			if got != v {
				t.Fatalf("k=%d v=%d: decodeValue(encodeValue(v)) = %d", k, v, got)
			}
		}
	}
}

func TestGolombK(t *testing.T) {
	cases := []struct{ n, msum, want int }{
		{1, 0, 0},
		{1, 1, 1},
		{4, 4, 1},
		{4, 3, 0},
		{128, 12, 0},
	}
	for _, c := range cases {
		if got := golombK(c.n, c.msum); got != c.want {
			t.Fatalf("golombK(%d,%d) = %d, want %d", c.n, c.msum, got, c.want)
		}
	}
}

func TestStatsTableUpdateNormalizesAtMaxN(t *testing.T) {
	p, _ := profileFor(8)
	st := newStatsTable(p)
	st.ctx[0] = contextStats{count: p.MaxN - 1, magSum: 1000, sum: 100, bias: 3}

	st.update(0, 5, p.MaxN)

	s := st.ctx[0]
	if s.count != p.MaxN/2 {
		t.Fatalf("count = %d, want %d after normalization", s.count, p.MaxN/2)
	}
}

func TestStatsTableUpdateAdjustsBias(t *testing.T) {
	p, _ := profileFor(8)
	st := newStatsTable(p)
	st.ctx[1] = contextStats{count: 2, magSum: p.InitCMS, sum: 0, bias: 0}

	for i := 0; i < 20; i++ {
		st.update(1, 3, p.MaxN)
	}
	if st.ctx[1].bias <= 0 {
		t.Fatalf("bias = %d, want positive after repeated positive residuals", st.ctx[1].bias)
	}
}
