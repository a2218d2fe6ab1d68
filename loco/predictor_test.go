package loco

import "testing"

func TestPredictMEDPicksMax(t *testing.T) {
	img := newTestImage(4, 4, func(x, y int) int16 { return 0 })
	img.set(1, 0, 10) // a (north)
	img.set(0, 1, 20) // b (west)
	img.set(0, 0, 5)  // c (northwest), c <= min(a,b) -> predict max(a,b)

	got := predict(img, 1, 1, 0, 0)
	if got != 20 {
		t.Fatalf("predict = %d, want 20 (c <= a -> b)", got)
	}
}

func TestPredictMEDPicksMin(t *testing.T) {
	img := newTestImage(4, 4, func(x, y int) int16 { return 0 })
	img.set(1, 0, 10) // a
	img.set(0, 1, 20) // b
	img.set(0, 0, 25) // c, c >= max(a,b) -> predict min(a,b)

	got := predict(img, 1, 1, 0, 0)
	if got != 10 {
		t.Fatalf("predict = %d, want 10 (c >= b -> a)", got)
	}
}

func TestPredictMEDPlanar(t *testing.T) {
	img := newTestImage(4, 4, func(x, y int) int16 { return 0 })
	img.set(1, 0, 10) // a
	img.set(0, 1, 20) // b
	img.set(0, 0, 12) // c, strictly between a and b -> a+b-c

	got := predict(img, 1, 1, 0, 0)
	if got != 18 {
		t.Fatalf("predict = %d, want 18 (a+b-c)", got)
	}
}

func TestPredictFirstRowUsesWest(t *testing.T) {
	img := newTestImage(4, 4, func(x, y int) int16 { return 0 })
	img.set(0, 0, 42)
	got := predict(img, 1, 0, 0, 0)
	if got != 42 {
		t.Fatalf("predict = %d, want 42 (west neighbor)", got)
	}
}

func TestPredictFirstColumnUsesNorth(t *testing.T) {
	img := newTestImage(4, 4, func(x, y int) int16 { return 0 })
	img.set(0, 0, 7)
	got := predict(img, 0, 1, 0, 0)
	if got != 7 {
		t.Fatalf("predict = %d, want 7 (north neighbor)", got)
	}
}

func TestClipEstimate(t *testing.T) {
	cases := []struct{ est, pmax, want int }{
		{-5, 255, 0},
		{300, 255, 255},
		{128, 255, 128},
		{0, 4095, 0},
	}
	for _, c := range cases {
		if got := clipEstimate(c.est, c.pmax); got != c.want {
			t.Fatalf("clipEstimate(%d,%d) = %d, want %d", c.est, c.pmax, got, c.want)
		}
	}
}
