package interval

import "sort"

// Merge collapses a list of inclusive integer intervals into the minimal
// ordered disjoint set covering exactly the same indices.
//
// Overlapping and adjacent ranges merge: [0,2]+[3,5] → [0,5], because a
// zero-sample gap between inclusive integer ranges is no gap at all.
// Truly separated ranges stay apart: [0,5]+[10,12] remain two intervals.
//
// The input slice is never mutated; Merge sorts a copy. Merging an
// already-merged list is a fixed point.
func Merge(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return nil
	}

	sorted := make([]Interval, len(ivs))
	copy(sorted, ivs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	merged := make([]Interval, 0, len(sorted))
	merged = append(merged, sorted[0])
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if cur.Start <= last.End+1 {
			// Overlapping or adjacent: extend the open interval.
			if cur.End > last.End {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}
