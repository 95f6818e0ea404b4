package picsel

// Hilbert curve mapping for two dimensions, using Skilling's transpose
// formulation ("Programming the Hilbert curve", AIP Conf. Proc. 707, 2004).
// A curve of order p visits every cell of a 2^p × 2^p grid; distances run
// from 0 to 4^p-1 and consecutive distances are always grid neighbours.

const (
	// MinCurveOrder and MaxCurveOrder bound the supported curve orders. At
	// order 30 a distance needs 60 bits.
	MinCurveOrder = 1
	MaxCurveOrder = 30
)

// HilbertMaxDistance returns the last distance on a curve of the given order,
// 4^order - 1.
func HilbertMaxDistance(order int) uint64 {
	return 1<<(2*uint(order)) - 1
}

// HilbertPoint maps a distance along the curve to grid coordinates. d must be
// at most HilbertMaxDistance(order).
func HilbertPoint(order int, d uint64) (x, y uint64) {
	// Split the distance into its transpose: x takes the bits at even
	// offsets counted from the most significant end, y the odd ones.
	var t [2]uint64
	for j := 0; j < order; j++ {
		shift := uint(2 * (order - 1 - j))
		t[0] = t[0]<<1 | (d>>(shift+1))&1
		t[1] = t[1]<<1 | (d>>shift)&1
	}

	// Gray decode.
	g := t[1] >> 1
	t[1] ^= t[0]
	t[0] ^= g

	// Undo excess work.
	top := uint64(2) << uint(order-1)
	for q := uint64(2); q != top; q <<= 1 {
		p := q - 1
		for i := 1; i >= 0; i-- {
			if t[i]&q != 0 {
				t[0] ^= p
			} else {
				s := (t[0] ^ t[i]) & p
				t[0] ^= s
				t[i] ^= s
			}
		}
	}
	return t[0], t[1]
}

// HilbertDistance is the inverse of HilbertPoint.
func HilbertDistance(order int, x, y uint64) uint64 {
	t := [2]uint64{x, y}
	m := uint64(1) << uint(order-1)

	// Inverse undo excess work.
	for q := m; q > 1; q >>= 1 {
		p := q - 1
		for i := 0; i < 2; i++ {
			if t[i]&q != 0 {
				t[0] ^= p
			} else {
				s := (t[0] ^ t[i]) & p
				t[0] ^= s
				t[i] ^= s
			}
		}
	}

	// Gray encode.
	t[1] ^= t[0]
	var g uint64
	for q := m; q > 1; q >>= 1 {
		if t[1]&q != 0 {
			g ^= q - 1
		}
	}
	t[0] ^= g
	t[1] ^= g

	var d uint64
	for j := order - 1; j >= 0; j-- {
		d = d<<2 | (t[0]>>uint(j)&1)<<1 | t[1]>>uint(j)&1
	}
	return d
}
