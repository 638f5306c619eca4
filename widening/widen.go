package widening

import "math"

// Widen computes how much a gap of nans missing samples grows after one
// interpolation stage of the given Lagrange order, delayed by
// ⌊multiplier·delay⌋ samples.
//
// It returns the extra widening and the resulting total (nans + extra),
// both truncated toward zero. The regime thresholds B1 and B2 are
// evaluated as reals; only the return values are truncated, and only
// once.
//
// Malformed inputs (negative nans or delay) are not rejected — they
// propagate mathematically, as the upstream pipeline validates its own
// scalars.
func Widen(order, nans int, delay, multiplier float64) (extra, total int) {
	d := math.Floor(multiplier * delay)
	b1 := 1 + 2*d - 2*float64(nans)
	b2 := 2*d - 1

	l := float64(order)
	var widened float64
	switch {
	case 1 < l && l <= b1:
		widened = l + float64(nans)
	case l <= b2:
		widened = (l+1)/2 + d
	default:
		widened = l
	}

	return int(widened), int(float64(nans) + widened)
}
