package maskprop_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdigap/maskprop"
)

// TestEta_FloorsDelay: Eta is exactly one Propagate stage with the
// delay floored to whole samples.
func TestEta_FloorsDelay(t *testing.T) {
	in := maskWithGap(30, 12, 14)

	got := maskprop.Eta(in, 5.9, 5)
	want := maskprop.Propagate(in, 5, 5)

	assert.Equal(t, nanIndices(want), nanIndices(got))
}

// TestTDIX_GenerationOne runs the three-stage chain by hand and expects
// TDIX with Generation=1 to match stage for stage.
func TestTDIX_GenerationOne(t *testing.T) {
	in := maskWithGap(200, 90, 93)
	const delay = 4.0
	const order = 5

	eta := maskprop.Propagate(in, 4, order)
	a12 := maskprop.Propagate(eta, 4, order)
	r12 := maskprop.Propagate(a12, 8, order)

	got := maskprop.TDIX(in, delay, &maskprop.Options{Order: order, Generation: 1})
	assert.Equal(t, nanIndices(r12), nanIndices(got))
}

// TestTDIX_GenerationTwo is the first-generation mask pushed through one
// more stage with the quadrupled delay.
func TestTDIX_GenerationTwo(t *testing.T) {
	in := maskWithGap(200, 90, 93)
	const delay = 4.0
	const order = 5

	gen1 := maskprop.TDIX(in, delay, &maskprop.Options{Order: order, Generation: 1})
	want := maskprop.Propagate(gen1, 16, order)

	got := maskprop.TDIX(in, delay, &maskprop.Options{Order: order, Generation: 2})
	assert.Equal(t, nanIndices(want), nanIndices(got))
}

// TestTDIX_DefaultOptions: nil options mean order 45, generation 2.
func TestTDIX_DefaultOptions(t *testing.T) {
	in := maskWithGap(400, 190, 192)

	got := maskprop.TDIX(in, 3.0, nil)
	want := maskprop.TDIX(in, 3.0, &maskprop.Options{Order: 45, Generation: 2})

	assert.Equal(t, nanIndices(want), nanIndices(got))
}

// TestTDIX_Conservative: no stage heals an input gap, and every stage
// keeps the mask length.
func TestTDIX_Conservative(t *testing.T) {
	in := maskWithGap(300, 140, 144)

	out := maskprop.TDIX(in, 6.5, nil)
	require.Len(t, out, 300)

	for _, i := range nanIndices(in) {
		assert.True(t, math.IsNaN(out[i]), "input gap index %d healed", i)
	}
}

// TestTDIX_EachStageFloorsIndependently: the multiplier is applied to
// the fractional delay before flooring, so 2×3.6 floors to 7, not 6.
func TestTDIX_EachStageFloorsIndependently(t *testing.T) {
	in := maskWithGap(200, 90, 91)
	const order = 5

	eta := maskprop.Propagate(in, 3, order)
	a12 := maskprop.Propagate(eta, 3, order)
	r12 := maskprop.Propagate(a12, 7, order)

	got := maskprop.TDIX(in, 3.6, &maskprop.Options{Order: order, Generation: 1})
	assert.Equal(t, nanIndices(r12), nanIndices(got))
}
