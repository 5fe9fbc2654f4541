// Package utils contains small numeric helpers shared across the planner packages.
package utils

import (
	"math"
	"math/rand"
)

// Square returns n*n. Math.pow( x, 2 ) is slow, this is faster.
func Square(n float64) float64 {
	return n * n
}

// Float64AlmostEqual compares two float64s and returns if the difference between them is less than epsilon.
func Float64AlmostEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
}

// ScaleByPct scales a max number by a floating point percentage between two bounds [0, n].
func ScaleByPct(n int, pct float64) int {
	scaled := int(float64(n) * pct)
	if scaled < 0 {
		scaled = 0
	} else if scaled > n {
		scaled = n
	}
	return scaled
}

// SampleRandomFloatRange samples a random float within [min, max) using the given rand.Rand.
func SampleRandomFloatRange(min, max float64, r *rand.Rand) float64 {
	return min + r.Float64()*(max-min)
}
