package nanblock

// Block is a maximal contiguous run of NaN samples, identified by its
// first and last index (both inclusive) into the scanned series.
type Block struct {
	First, Last int
}

// Len returns the number of samples the block spans.
func (b Block) Len() int {
	return b.Last - b.First + 1
}
