package picsel

import "testing"

func TestHilbertPointOrder1(t *testing.T) {
	want := [][2]uint64{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	for d, w := range want {
		x, y := HilbertPoint(1, uint64(d))
		if x != w[0] || y != w[1] {
			t.Errorf("HilbertPoint(1, %d) = (%d,%d), want (%d,%d)", d, x, y, w[0], w[1])
		}
	}
}

func TestHilbertPointOrder2(t *testing.T) {
	want := [][2]uint64{
		{0, 0}, {1, 0}, {1, 1}, {0, 1},
		{0, 2}, {0, 3}, {1, 3}, {1, 2},
		{2, 2}, {2, 3}, {3, 3}, {3, 2},
		{3, 1}, {2, 1}, {2, 0}, {3, 0},
	}
	for d, w := range want {
		x, y := HilbertPoint(2, uint64(d))
		if x != w[0] || y != w[1] {
			t.Errorf("HilbertPoint(2, %d) = (%d,%d), want (%d,%d)", d, x, y, w[0], w[1])
		}
	}
}

func TestHilbertCurveIsContinuousAndComplete(t *testing.T) {
	for _, order := range []int{1, 2, 3, 4, 6} {
		n := HilbertMaxDistance(order) + 1
		seen := make(map[[2]uint64]bool, n)
		px, py := HilbertPoint(order, 0)
		seen[[2]uint64{px, py}] = true
		for d := uint64(1); d < n; d++ {
			x, y := HilbertPoint(order, d)
			dx, dy := int64(x)-int64(px), int64(y)-int64(py)
			if dx*dx+dy*dy != 1 {
				t.Fatalf("order %d: step %d→%d jumps from (%d,%d) to (%d,%d)", order, d-1, d, px, py, x, y)
			}
			if seen[[2]uint64{x, y}] {
				t.Fatalf("order %d: cell (%d,%d) visited twice", order, x, y)
			}
			seen[[2]uint64{x, y}] = true
			px, py = x, y
		}
		if uint64(len(seen)) != n {
			t.Errorf("order %d: visited %d cells, want %d", order, len(seen), n)
		}
	}
}

func TestHilbertDistanceRoundTrip(t *testing.T) {
	for _, order := range []int{1, 2, 5, 8} {
		for d := uint64(0); d <= HilbertMaxDistance(order); d += 1 + d/7 {
			x, y := HilbertPoint(order, d)
			if got := HilbertDistance(order, x, y); got != d {
				t.Errorf("order %d: HilbertDistance(HilbertPoint(%d)) = %d", order, d, got)
			}
		}
	}
}

func TestHilbertHighOrderCorners(t *testing.T) {
	order := MaxCurveOrder
	side := uint64(1) << uint(order)
	if x, y := HilbertPoint(order, 0); x != 0 || y != 0 {
		t.Errorf("start = (%d,%d), want (0,0)", x, y)
	}
	// Even orders end on the x axis, like order 2.
	if x, y := HilbertPoint(order, HilbertMaxDistance(order)); x != side-1 || y != 0 {
		t.Errorf("end = (%d,%d), want (%d,0)", x, y, side-1)
	}
}

func TestHilbertMaxDistance(t *testing.T) {
	tests := []struct {
		order int
		want  uint64
	}{
		{1, 3},
		{2, 15},
		{20, 1<<40 - 1},
		{30, 1<<60 - 1},
	}
	for _, tt := range tests {
		if got := HilbertMaxDistance(tt.order); got != tt.want {
			t.Errorf("HilbertMaxDistance(%d) = %d, want %d", tt.order, got, tt.want)
		}
	}
}
