package pset

import (
	"slices"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/common"
)

// SetClass returns the differences between adjacent members in canonical
// order, unreduced. Sets with fewer than two members yield an empty slice.
func SetClass(s Set) []int {
	values := s.Values()
	if len(values) < 2 {
		return []int{}
	}
	intervals := make([]int, len(values)-1)
	for i := 1; i < len(values); i++ {
		intervals[i-1] = values[i] - values[i-1]
	}
	return intervals
}

// PCINTClass returns SetClass with every interval reduced modulo the octave
// division of the set's variant
func PCINTClass(s Set) ([]int, error) {
	n := s.variant.Division()
	if n == 0 {
		return nil, ErrMissingModulus
	}
	intervals := SetClass(s)
	for i, d := range intervals {
		intervals[i] = common.Mod(d, n)
	}
	return intervals, nil
}

// FBClass returns the figured-bass class of s above p0: every member's
// interval above p0 modulo the octave division, sorted, with the smallest
// entry (the bass itself when p0 is a member) dropped.
func FBClass(s Set, p0 int) ([]int, error) {
	n := s.variant.Division()
	if n == 0 {
		return nil, ErrMissingModulus
	}
	intervals := make([]int, 0, s.Len())
	for x := range s.members {
		intervals = append(intervals, common.Mod(x-p0, n))
	}
	slices.Sort(intervals)
	if len(intervals) > 0 {
		intervals = intervals[1:]
	}
	return intervals, nil
}
