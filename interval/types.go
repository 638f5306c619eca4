package interval

// Interval is an inclusive integer index range: it covers every index i
// with Start ≤ i ≤ End. Callers must uphold Start ≤ End.
type Interval struct {
	Start, End int
}

// Len returns the number of indices the interval covers.
func (iv Interval) Len() int {
	return iv.End - iv.Start + 1
}

// Contains reports whether index i lies inside the interval.
func (iv Interval) Contains(i int) bool {
	return iv.Start <= i && i <= iv.End
}
