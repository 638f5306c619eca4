package telemetry

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ApplyMask multiplies every array of the listed channels element-wise
// by mask and returns a freshly built container. Samples under a mask
// NaN become NaN; samples under a 1.0 pass through unchanged.
//
// All five measurement fields of each channel, its pseudo-range and its
// pseudo-range derivative must be present and mask-length; otherwise
// ApplyMask returns ErrMissingChannel or ErrLengthMismatch wrapped with
// the offending key. The input container and the mask are never
// mutated, and the output shares no backing arrays with either.
func ApplyMask(t *Telemetry, mask []float64, channels []string) (*Telemetry, error) {
	out := &Telemetry{
		Measurements:      make(map[string][]float64, len(channels)*len(measurementFields)),
		PseudoRanges:      make(map[string][]float64, len(channels)),
		PseudoRangeDerivs: make(map[string][]float64, len(channels)),
	}

	for _, ch := range channels {
		for _, key := range MeasurementKeys(ch) {
			masked, err := maskedCopy(t.Measurements[key], mask, key)
			if err != nil {
				return nil, err
			}
			out.Measurements[key] = masked
		}

		masked, err := maskedCopy(t.PseudoRanges[ch], mask, ch)
		if err != nil {
			return nil, err
		}
		out.PseudoRanges[ch] = masked

		masked, err = maskedCopy(t.PseudoRangeDerivs[ch], mask, ch)
		if err != nil {
			return nil, err
		}
		out.PseudoRangeDerivs[ch] = masked
	}
	return out, nil
}

// maskedCopy returns src·mask in a new buffer.
func maskedCopy(src, mask []float64, key string) ([]float64, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %q", ErrMissingChannel, key)
	}
	if len(src) != len(mask) {
		return nil, fmt.Errorf("%w: %q has %d samples, mask has %d",
			ErrLengthMismatch, key, len(src), len(mask))
	}

	dst := make([]float64, len(src))
	floats.MulTo(dst, src, mask)
	return dst, nil
}
