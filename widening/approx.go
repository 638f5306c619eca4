package widening

import "github.com/katalvlaran/tdigap/nanblock"

// ApproxTotalEta estimates the total number of NaN samples in an eta
// variable derived from series, by applying Widen to every gap found in
// it and summing the per-gap totals.
//
// This is an aggregate count, not a positional mask: gaps whose widened
// ranges would overlap are counted independently, so the estimate is an
// upper bound on the exact mask size. Use maskprop.Eta for positions.
func ApproxTotalEta(series []float64, delay float64, order int, multiplier float64) int {
	total := 0
	for _, b := range nanblock.Extract(series) {
		_, t := Widen(order, b.Len(), delay, multiplier)
		total += t
	}
	return total
}

// ApproxTotalX estimates the total number of NaN samples in a TDI X
// variable derived from series: per gap, the X1 cascade for
// generation 1 and the X2 cascade otherwise, totals summed.
func ApproxTotalX(series []float64, delay float64, order, generation int) int {
	total := 0
	for _, b := range nanblock.Extract(series) {
		var t int
		if generation == 1 {
			_, t = X1(order, b.Len(), delay)
		} else {
			_, t = X2(order, b.Len(), delay)
		}
		total += t
	}
	return total
}
