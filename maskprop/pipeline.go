package maskprop

import "math"

// Eta derives the gap mask of an eta variable from a telemetry mask:
// one delay+interpolation stage with the delay floored to whole
// samples.
func Eta(mask []float64, delay float64, order int) []float64 {
	return Propagate(mask, int(math.Floor(delay)), order)
}

// TDIX derives the gap mask of a TDI X variable from a telemetry mask
// by chaining propagation stages with delay multipliers 1, 1 and 2.
// First-generation variables stop there; any other generation runs a
// final multiplier-4 stage. Each stage floors its scaled delay
// independently and feeds its output mask into the next stage.
//
// A nil opts uses DefaultOptions (order 45, generation 2).
func TDIX(mask []float64, delay float64, opts *Options) []float64 {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	eta := Propagate(mask, int(math.Floor(delay)), o.Order)
	a12 := Propagate(eta, int(math.Floor(delay)), o.Order)
	r12 := Propagate(a12, int(math.Floor(2*delay)), o.Order)
	if o.Generation == 1 {
		return r12
	}
	return Propagate(r12, int(math.Floor(4*delay)), o.Order)
}
