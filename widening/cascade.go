package widening

// Cascade applies Widen once per multiplier, in order. Every stage but
// the last feeds only its total NaN count forward as the next stage's
// gap size; the final stage's (extra, total) pair is returned.
//
// An empty multiplier list is the identity: (0, nans).
func Cascade(order, nans int, delay float64, multipliers []float64) (extra, total int) {
	if len(multipliers) == 0 {
		return 0, nans
	}

	n := nans
	for _, m := range multipliers[:len(multipliers)-1] {
		_, n = Widen(order, n, delay, m)
	}
	return Widen(order, n, delay, multipliers[len(multipliers)-1])
}

// X1 computes the eta→X1 gap widening through the factorized
// three-stage pipeline (multipliers 1, 1, 2).
func X1(order, nans int, delay float64) (extra, total int) {
	return Cascade(order, nans, delay, []float64{1, 1, 2})
}

// X1Unfactorized computes the eta→X1 widening through the two-stage
// unfactorized pipeline (multipliers 1, 3).
func X1Unfactorized(order, nans int, delay float64) (extra, total int) {
	return Cascade(order, nans, delay, []float64{1, 3})
}

// X2 computes the X1→X2 widening through the fully factorized pipeline:
// the X1 cascade followed by one more stage with multiplier 4.
func X2(order, nans int, delay float64) (extra, total int) {
	_, totalX1 := X1(order, nans, delay)
	return Widen(order, totalX1, delay, 4.0)
}

// X2Unfactorized computes the eta→X2 widening through the two-stage
// unfactorized pipeline (multipliers 1, 7).
//
// The net multiplier here differs from what the factorized X2 cascade
// composes to; both tables are kept literally as the pipeline defines
// them.
func X2Unfactorized(order, nans int, delay float64) (extra, total int) {
	return Cascade(order, nans, delay, []float64{1, 7})
}
