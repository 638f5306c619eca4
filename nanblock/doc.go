// Package nanblock detects contiguous runs of NaN samples (gaps) in a
// float64 series and exposes them as ordered index blocks.
//
// A Block is a maximal run: the sample before First and the sample after
// Last (when they exist) are valid numbers. Blocks are disjoint, ordered
// by First, and every NaN index in the series belongs to exactly one of
// them.
//
// Algorithm Outline:
//  1. gonum's floats.HasNaN gives a fast exit for gap-free series.
//  2. Otherwise a single left-to-right scan opens a block on the first
//     NaN of a run and closes it on the first non-NaN after it.
//
// Complexity:
//
//	Time   = O(n)
//	Memory = O(b), b = number of blocks
//
// Extract never errors: an empty or gap-free series yields an empty
// block list.
package nanblock
