package pset

import "slices"

// SubsetSegments returns all 2ⁿ subsets of s as ascending value sequences.
// Subset k holds the members whose canonical index has its bit set in k;
// the list is then sorted lexicographically, so the empty sequence comes
// first and a prefix sorts before its extensions.
//
// Cost is O(2ⁿ·n). Callers must bound the cardinality.
func SubsetSegments(s Set) [][]int {
	values := s.Values()
	n := len(values)
	total := 1 << n

	segments := make([][]int, total)
	for index := 0; index < total; index++ {
		seg := make([]int, 0, n)
		for i := 0; i < n; i++ {
			if index&(1<<i) != 0 {
				seg = append(seg, values[i])
			}
		}
		segments[index] = seg
	}

	slices.SortFunc(segments, slices.Compare[[]int])
	return segments
}

// Subsets returns every subset of s, including the empty set and s itself,
// in the order of SubsetSegments. Each subset keeps the variant of s.
func Subsets(s Set) []Set {
	segments := SubsetSegments(s)
	subsets := make([]Set, len(segments))
	for i, seg := range segments {
		subsets[i] = build(s.variant, seg)
	}
	return subsets
}
