// SPDX-License-Identifier: MIT

// Package tsp - tour evaluation.
//
// TourLength sums consecutive edges plus the closing edge; Fitness maps a
// length to the genetic optimizer's selection weight. Both validate the tour
// first; the unchecked tourLength variant is reserved for solvers that already
// own a valid permutation.
//
// Stable summation: public lengths are rounded to 1e-9 to avoid cross-platform
// floating-point noise. Rounding is monotone, so "a ≤ b" survives it.
package tsp

import "math"

const (
	// roundScale controls final length stabilization precision (1e-9).
	roundScale = 1e9

	// DegenerateFitness is the fitness of a zero-length tour (n ≤ 1, or all
	// points coincident). It is large but finite, so sums over a population
	// stay finite for any realistic population size.
	DegenerateFitness = 1e300
)

// TourLength returns the cyclic length of tour over d.
// For n ≤ 1 the length is 0 (no edges).
//
// Errors: ErrNilMatrix; ErrInvalidTour when tour is not a permutation of 0..n-1.
//
// Complexity: O(n).
func TourLength(tour []int, d *DistanceMatrix) (float64, error) {
	if d == nil {
		return 0, ErrNilMatrix
	}
	if err := ValidateTour(tour, d.n); err != nil {
		return 0, err
	}

	return round1e9(tourLength(tour, d)), nil
}

// Fitness returns 1 / TourLength(tour, d), or DegenerateFitness when the
// length is 0.
//
// Errors: those of TourLength.
//
// Complexity: O(n).
func Fitness(tour []int, d *DistanceMatrix) (float64, error) {
	length, err := TourLength(tour, d)
	if err != nil {
		return 0, err
	}

	return fitnessOf(length), nil
}

// fitnessOf maps a length to its fitness with the zero-length guard.
func fitnessOf(length float64) float64 {
	if length <= 0 {
		return DegenerateFitness
	}

	return 1 / length
}

// tourLength is the unchecked cyclic sum; tour must be a valid permutation.
//
// Complexity: O(n).
func tourLength(tour []int, d *DistanceMatrix) float64 {
	n := len(tour)
	if n <= 1 {
		return 0
	}

	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d.w(tour[i], tour[i+1])
	}
	sum += d.w(tour[n-1], tour[0]) // closing edge

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
