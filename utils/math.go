// Package utils contains math and concurrency helpers shared by the
// point cloud and segmentation packages.
package utils

import (
	"math"
	"math/rand"
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// AbsInt returns the absolute value of the given int.
func AbsInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// MaxInt returns the maximum of two ints.
func MaxInt(a, b int) int {
	if a < b {
		return b
	}
	return a
}

// MinInt returns the minimum of two ints.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// SampleRandomIntRange samples a random integer within a range given by [min, max]
// using the given rand.Rand.
func SampleRandomIntRange(min, max int, r *rand.Rand) int {
	return r.Intn(max-min+1) + min
}

// SampleNDistinctIntRange samples n distinct integers within [min, max] using the
// given rand.Rand, resampling on collision. The range must hold at least n integers.
func SampleNDistinctIntRange(n, min, max int, r *rand.Rand) []int {
	samples := make([]int, 0, n)
	for len(samples) < n {
		candidate := SampleRandomIntRange(min, max, r)
		taken := false
		for _, s := range samples {
			if s == candidate {
				taken = true
				break
			}
		}
		if !taken {
			samples = append(samples, candidate)
		}
	}
	return samples
}
