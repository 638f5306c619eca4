// Package tdigap predicts how data gaps (runs of NaN samples) in raw
// telemetry propagate, widen and merge as the telemetry flows through
// chains of fixed-delay Lagrange-interpolation stages used to build
// time-delay-interferometry (TDI) variables.
//
// 🚀 What is tdigap?
//
//	A pure, in-memory gap-propagation algebra that brings together:
//		• Closed-form widening law: how many samples a gap grows per stage
//		• Cascade composition: multi-stage pipelines as multiplier tables
//		• Exact index-level propagation: derive the output gap mask from
//		  an input gap mask, one delay+interpolation stage at a time
//		• Pipeline builders for the eta and TDI X variables (1st & 2nd gen)
//		• A telemetry-masking helper that applies a mask across all
//		  per-channel measurement fields without aliasing caller buffers
//
// ✨ Why choose tdigap?
//
//   - Exact index semantics – inclusive bounds, adjacency-aware interval
//     merging, clipping; a single off-by-one here silently corrupts masks
//   - Non-mutating – every operation returns freshly allocated output
//   - Pure Go – no cgo; gonum for array arithmetic, nothing hidden
//   - Independently parallelizable – no shared state anywhere
//
// Under the hood, everything is organized under five subpackages:
//
//	interval/  — minimal disjoint merging of inclusive integer intervals
//	nanblock/  — extraction of maximal contiguous NaN runs from a series
//	widening/  — closed-form widening law, cascades, aggregate NaN counts
//	maskprop/  — exact mask propagation & named pipeline mask builders
//	telemetry/ — element-wise masking of per-channel telemetry containers
//
// Quick ASCII example, one stage with delay 5 and order 5 (p = 3):
//
//	input  : ─────────▓▓▓─────────   gap at [9,11]
//	output : ─────────▓▓▓▓▓▓▓▓▓▓──   gap at [9,18] = [9,11] ∪ [11,18]
//
// The direct range keeps the gap where it was; the delayed range marks
// every output sample whose interpolation support touches the shifted gap.
//
//	go get github.com/katalvlaran/tdigap
package tdigap
