package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Integer and statistical helpers shared by the pitch-set algorithms

// Mod returns the non-negative remainder of a divided by n.
// Mod(-1, 12) == 11. n must be positive.
func Mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// AbsInt returns |a|
func AbsInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// WeightedMean calculates the weighted arithmetic mean using gonum.
// Returns 0 for empty input or zero total weight.
func WeightedMean(values, weights []float64) float64 {
	if len(values) == 0 || len(values) != len(weights) || floats.Sum(weights) == 0 {
		return 0.0
	}
	return stat.Mean(values, weights)
}

// WeightedStdDev calculates the weighted sample standard deviation
func WeightedStdDev(values, weights []float64) float64 {
	if len(values) != len(weights) || floats.Sum(weights) < 2 {
		return 0.0
	}
	return math.Sqrt(stat.Variance(values, weights))
}

// MaxNormalize scales data so that its largest value is 1.
// Data with a non-positive maximum is returned as zeros.
func MaxNormalize(data []float64) []float64 {
	normalized := make([]float64, len(data))
	if len(data) == 0 {
		return normalized
	}

	max := floats.Max(data)
	if max < 1e-10 {
		return normalized
	}

	copy(normalized, data)
	floats.Scale(1/max, normalized)
	return normalized
}
