// Package maskprop derives exact, index-level gap masks for signals
// produced by delaying and Lagrange-interpolating a gappy input.
//
// A mask is a []float64 holding 1.0 where data is present and NaN where
// it is missing; it always has the same length as the series it
// describes.
//
// Algorithm Outline (one stage, Propagate):
//  1. Extract the input's NaN blocks (package nanblock).
//  2. For each block [f,l], with p = ⌊(order+1)/2⌋ the half-support
//     radius of the interpolation kernel, collect two inclusive ranges:
//     direct  [f, l]                      — the gap itself survives
//     delayed [f+delay−p+1, l+delay+p−1]  — every output index whose
//     interpolation support overlaps the gap once shifted by delay
//  3. Merge all ranges (package interval — adjacency merges, so a
//     direct range touching its delayed range comes out contiguous).
//  4. Clip to [0, len−1]; ranges pushed fully outside contribute
//     nothing.
//  5. Paint NaN at the surviving indices on a fresh all-ones mask.
//
// Pipeline builders chain Propagate stages: Eta is a single stage with
// the floored delay; TDIX runs stages with delay multipliers 1, 1, 2
// and, for second-generation variables, a final multiplier-4 stage.
// Each stage's output mask is the next stage's input.
//
// Everything here is a pure function of its arguments: inputs are never
// mutated, outputs are freshly allocated, calls are independently
// parallelizable by the caller.
//
// Complexity per stage:
//
//	Time   = O(n + b log b), n = mask length, b = gap-block count
//	Memory = O(n)
package maskprop
