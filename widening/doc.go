// Package widening provides the closed-form gap-widening law for
// delayed Lagrange interpolation, its cascade composition across
// multi-stage pipelines, and aggregate NaN-count estimates over whole
// series.
//
// A gap of n missing samples, pushed through one interpolation stage
// with integer delay D = ⌊multiplier·delay⌋ and Lagrange order L, grows
// by an amount that depends on where L sits relative to two thresholds:
//
//	B1 = 1 + 2D − 2n
//	B2 = 2D − 1
//
//	1 < L ≤ B1 : extra = L + n        (gap inside the support, both sides)
//	    L ≤ B2 : extra = (L+1)/2 + D  (one-sided contamination)
//	 otherwise : extra = L            (whole window contaminated)
//
// The branch order is part of the contract, and the thresholds are
// compared as reals: truncation toward zero happens exactly once, on
// the two returned values. Truncating D, B1 or B2 first shifts a regime
// boundary by up to one sample and silently corrupts every mask-size
// guarantee built on top.
//
// Multi-stage pipelines are expressed as multiplier tables fed to
// Cascade, which threads each stage's total NaN count into the next
// stage. The named TDI pipelines (X1, X2, factorized and unfactorized)
// are fixed tables over this one law, so the law stays the single
// source of truth:
//
//	X1              : [1, 1, 2]
//	X1Unfactorized  : [1, 3]
//	X2Unfactorized  : [1, 7]
//	X2              : X1, then one extra stage with multiplier 4
//
// ApproxTotalEta and ApproxTotalX sum the law over every gap found in a
// series; they estimate counts only — for exact positions, use package
// maskprop.
//
// Complexity: O(1) per Widen call; O(n) per series scan.
package widening
