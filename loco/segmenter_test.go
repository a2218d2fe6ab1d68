package loco

import "testing"

// coversExactly checks that rects exactly tile [0,width)x[0,height) with no
// gaps or overlaps: every pixel is covered by exactly one rectangle.
func coversExactly(t *testing.T, rects []Rect, width, height int) {
	t.Helper()
	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}
	for _, r := range rects {
		if r.XStart < 0 || r.YStart < 0 || r.XEnd > width || r.YEnd > height {
			t.Fatalf("rect %+v out of bounds for %dx%d image", r, width, height)
		}
		if r.XStart >= r.XEnd || r.YStart >= r.YEnd {
			t.Fatalf("rect %+v is empty", r)
		}
		for y := r.YStart; y < r.YEnd; y++ {
			for x := r.XStart; x < r.XEnd; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one segment", x, y)
				}
				covered[y][x] = true
			}
		}
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any segment", x, y)
			}
		}
	}
}

func TestSegmentTilesExactly(t *testing.T) {
	cases := []struct {
		width, height, nSegs int
	}{
		{100, 100, 1},
		{100, 100, 4},
		{100, 100, 7},
		{640, 480, 16},
		{640, 480, 32},
		{4096, 4096, 32},
		{4, 4, 1},
		{17, 5, 3},
		{1000, 3, 2},
		{3, 1000, 2},
	}
	for _, c := range cases {
		rects := segment(c.width, c.height, c.nSegs)
		if len(rects) != c.nSegs {
			t.Fatalf("%dx%d/%d: got %d rects, want %d", c.width, c.height, c.nSegs, len(rects), c.nSegs)
		}
		coversExactly(t, rects, c.width, c.height)
	}
}

func TestSegmentDeterministic(t *testing.T) {
	a := segment(640, 480, 13)
	b := segment(640, 480, 13)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("segment is not deterministic: rect %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSegmentSingleSegmentIsWholeImage(t *testing.T) {
	rects := segment(200, 150, 1)
	want := Rect{XStart: 0, XEnd: 200, YStart: 0, YEnd: 150}
	if rects[0] != want {
		t.Fatalf("single segment = %+v, want %+v", rects[0], want)
	}
}
