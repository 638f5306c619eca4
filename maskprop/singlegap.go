package maskprop

import "math"

// SingleGap builds a mask of the given length holding a single gap of
// nans samples starting at the midpoint (length/2). A gap longer than
// the remaining tail is clipped at the end of the mask.
//
// Returns ErrBadLength for a non-positive length and ErrNegativeGap for
// a negative gap size.
func SingleGap(nans, length int) ([]float64, error) {
	if length <= 0 {
		return nil, ErrBadLength
	}
	if nans < 0 {
		return nil, ErrNegativeGap
	}

	mask := make([]float64, length)
	for i := range mask {
		mask[i] = 1.0
	}
	mid := length / 2
	for i := mid; i < mid+nans && i < length; i++ {
		mask[i] = math.NaN()
	}
	return mask, nil
}
