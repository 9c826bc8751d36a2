// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"time"
)

var (
	// ErrInvalidTour is returned when a tour is not a permutation of 0..n-1
	// (wrong length, duplicate index, or out-of-range index).
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidOptions is returned when optimizer parameters are out of range.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrNonFiniteCoordinate is returned when a point carries NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrNilMatrix is returned when a solver receives a nil *DistanceMatrix.
	ErrNilMatrix = errors.New("tsp: nil distance matrix")

	// ErrNilRand is returned when a stochastic solver receives a nil *rand.Rand.
	ErrNilRand = errors.New("tsp: nil random source")
)

// Point is an immutable pair of finite coordinates.
type Point struct {
	X float64
	Y float64
}

// Result holds the outcome of one solver run.
type Result struct {
	// Tour is a permutation of 0..n-1; the closing edge is implicit.
	Tour []int

	// Length is the total cyclic length of Tour (rounded to 1e-9).
	Length float64

	// Elapsed is the wall-clock time of the run, sampled from the monotonic clock.
	Elapsed time.Duration
}
