// Package sampling implements selection of an index from a vector of
// action weights or estimates.
package sampling

import (
	"gonum.org/v1/gonum/floats"
)

// SampleOne returns the first index i of the unnormalized weights w for which
// sum(w[:i+1]) / total >= x. If rounding leaves the cumulative sum just short
// of x, the last index is returned.
func SampleOne(w []float64, total, x float64) int {
	var cumProb float64
	for i, v := range w {
		cumProb += v / total
		if cumProb >= x {
			return i
		}
	}

	return len(w) - 1
}

// Greedy returns the index of the maximum estimate, preferring the lowest
// index on ties. It panics if estimates is empty.
func Greedy(estimates []float64) int {
	return floats.MaxIdx(estimates)
}

// Max returns the maximum estimate. It panics if estimates is empty.
func Max(estimates []float64) float64 {
	return floats.Max(estimates)
}
