package maskprop_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tdigap/maskprop"
)

// TestSingleGap_Centered pins the reference construction: 4 NaNs in a
// length-10 mask start at the midpoint index 5.
func TestSingleGap_Centered(t *testing.T) {
	mask, err := maskprop.SingleGap(4, 10)
	require.NoError(t, err)
	require.Len(t, mask, 10)

	assert.Equal(t, []int{5, 6, 7, 8}, nanIndices(mask))
	assert.Equal(t, 1.0, mask[4])
	assert.Equal(t, 1.0, mask[9])
}

// TestSingleGap_ClipsAtTail: a gap longer than the remaining tail stops
// at the end of the mask.
func TestSingleGap_ClipsAtTail(t *testing.T) {
	mask, err := maskprop.SingleGap(9, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{5, 6, 7, 8, 9}, nanIndices(mask))
}

// TestSingleGap_ZeroGap: zero NaNs yields a clean mask.
func TestSingleGap_ZeroGap(t *testing.T) {
	mask, err := maskprop.SingleGap(0, 6)
	require.NoError(t, err)
	assert.Empty(t, nanIndices(mask))
}

// TestSingleGap_Errors rejects non-positive lengths and negative gaps.
func TestSingleGap_Errors(t *testing.T) {
	cases := []struct {
		name         string
		nans, length int
		err          error
	}{
		{"ZeroLength", 3, 0, maskprop.ErrBadLength},
		{"NegativeLength", 3, -5, maskprop.ErrBadLength},
		{"NegativeGap", -1, 10, maskprop.ErrNegativeGap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maskprop.SingleGap(tc.nans, tc.length)
			if !errors.Is(err, tc.err) {
				t.Errorf("SingleGap(%d,%d) error = %v; want %v", tc.nans, tc.length, err, tc.err)
			}
		})
	}
}
