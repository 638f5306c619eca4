// Package interval merges inclusive integer intervals into a minimal
// disjoint ordered set.
//
// Intervals here are index ranges into a sampled series, with both
// bounds included: (Start, End) covers every index i with
// Start ≤ i ≤ End.
//
// Algorithm Outline:
//  1. Copy the input (callers keep their slice untouched).
//  2. Sort by Start ascending.
//  3. Single scan: fold the next interval into the last open one
//     whenever next.Start ≤ last.End+1 — overlapping OR exactly
//     adjacent ranges merge. [0,2] and [3,5] become [0,5].
//
// The adjacency rule is load-bearing for gap propagation: when a gap's
// direct range and its delay-shifted range touch exactly at the
// boundary, the contaminated region must come out as one contiguous
// interval, not two.
//
// Complexity:
//
//	Time   = O(n log n) for the sort, O(n) for the scan
//	Memory = O(n) for the copy and the result
//
// Merge never errors: an empty input yields an empty output.
package interval
