package nanblock

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Extract scans series once and returns its maximal NaN runs, ordered by
// first index. A series with no NaN samples (or no samples at all)
// yields an empty list. The input is never mutated.
func Extract(series []float64) []Block {
	if len(series) == 0 || !floats.HasNaN(series) {
		return nil
	}

	var blocks []Block
	open := false
	var first int
	for i, v := range series {
		switch {
		case math.IsNaN(v) && !open:
			open = true
			first = i
		case !math.IsNaN(v) && open:
			open = false
			blocks = append(blocks, Block{First: first, Last: i - 1})
		}
	}
	if open {
		blocks = append(blocks, Block{First: first, Last: len(series) - 1})
	}
	return blocks
}
