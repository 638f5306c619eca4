package maskprop

import (
	"math"

	"github.com/katalvlaran/tdigap/interval"
	"github.com/katalvlaran/tdigap/nanblock"
)

// Propagate computes the gap mask of a signal obtained by delaying the
// masked input by delay samples and interpolating it with a Lagrange
// kernel of the given order.
//
// The output has the input's length, 1.0 at valid indices and NaN at
// every index either inside an input gap (direct range) or whose
// interpolation support overlaps a gap shifted by delay (delayed
// range). Out-of-range indices are clipped, never wrapped. A gap-free
// input yields an all-ones mask. The input is never mutated.
func Propagate(mask []float64, delay, order int) []float64 {
	length := len(mask)
	p := (order + 1) / 2

	var affected []interval.Interval
	for _, b := range nanblock.Extract(mask) {
		affected = append(affected, interval.Interval{Start: b.First, End: b.Last})
		// Merge requires Start ≤ End; a single-sample block under a
		// non-positive order produces an empty delayed support.
		ds, de := b.First+delay-p+1, b.Last+delay+p-1
		if ds <= de {
			affected = append(affected, interval.Interval{Start: ds, End: de})
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = 1.0
	}
	for _, iv := range interval.Merge(affected) {
		start, end := iv.Start, iv.End
		if start < 0 {
			start = 0
		}
		if end > length-1 {
			end = length - 1
		}
		for i := start; i <= end; i++ {
			out[i] = math.NaN()
		}
	}
	return out
}
