package pset

import (
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/RyanBlaney/sonido-pctheory/algorithms/common"
)

// Roster maps an interval (absolute difference) to the number of unordered
// pairs of members separated by it
type Roster map[int]int

// Total returns the number of pairs counted, n*(n-1)/2 for an n-element set
func (r Roster) Total() int {
	total := 0
	for _, c := range r {
		total += c
	}
	return total
}

// Count returns the number of pairs at interval i
func (r Roster) Count(i int) int {
	return r[i]
}

// Intervals returns the intervals present, ascending
func (r Roster) Intervals() []int {
	intervals := make([]int, 0, len(r))
	for i := range r {
		intervals = append(intervals, i)
	}
	slices.Sort(intervals)
	return intervals
}

// Mean returns the pair-weighted mean interval, 0 for an empty roster
func (r Roster) Mean() float64 {
	values, weights := r.weighted()
	return common.WeightedMean(values, weights)
}

// StdDev returns the pair-weighted standard deviation of the intervals
func (r Roster) StdDev() float64 {
	values, weights := r.weighted()
	return common.WeightedStdDev(values, weights)
}

func (r Roster) weighted() ([]float64, []float64) {
	intervals := r.Intervals()
	values := make([]float64, len(intervals))
	weights := make([]float64, len(intervals))
	for k, i := range intervals {
		values[k] = float64(i)
		weights[k] = float64(r[i])
	}
	return values, weights
}

// ICMatrix returns the n×n matrix of absolute differences between the
// members in canonical order. The result is symmetric with a zero diagonal;
// an empty set yields an empty matrix.
func ICMatrix(s Set) *mat.SymDense {
	values := s.Values()
	n := len(values)
	if n == 0 {
		return &mat.SymDense{}
	}

	mx := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			mx.SetSym(i, j, float64(common.AbsInt(values[i]-values[j])))
		}
	}
	return mx
}

// ICRoster counts the absolute difference of every unordered pair of
// distinct members
func ICRoster(s Set) Roster {
	values := s.Values()
	roster := make(Roster)
	for i := len(values) - 1; i >= 0; i-- {
		for j := i - 1; j >= 0; j-- {
			roster[common.AbsInt(values[i]-values[j])]++
		}
	}
	return roster
}
