package maskprop

import "errors"

// Sentinel errors for mask construction.
var (
	// ErrBadLength indicates a requested mask length of zero or less.
	ErrBadLength = errors.New("maskprop: mask length must be positive")
	// ErrNegativeGap indicates a negative gap size.
	ErrNegativeGap = errors.New("maskprop: gap size must be non-negative")
)

// Options configures the TDI pipeline mask builders.
//   - Order: Lagrange order of the interpolation kernel, assumed odd so
//     the half-support radius ⌊(Order+1)/2⌋ is exact.
//   - Generation: TDI generation; 1 stops after the multiplier-2 stage,
//     anything else continues through the multiplier-4 stage.
type Options struct {
	Order      int
	Generation int
}

// DefaultOptions returns the pipeline defaults: Order=45, Generation=2.
func DefaultOptions() Options {
	return Options{
		Order:      45,
		Generation: 2,
	}
}
