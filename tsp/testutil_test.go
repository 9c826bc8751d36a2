// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// epsLen is the tolerance for comparing tour lengths against hand-computed values.
	epsLen = 1e-9

	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(42)
)

// unitSquare returns the corners of the unit square in perimeter order.
func unitSquare() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// hexagon returns a convex regular hexagon of unit radius.
func hexagon() []tsp.Point {
	return []tsp.Point{
		{X: 1, Y: 0}, {X: 0.5, Y: math.Sqrt(3) / 2}, {X: -0.5, Y: math.Sqrt(3) / 2},
		{X: -1, Y: 0}, {X: -0.5, Y: -math.Sqrt(3) / 2}, {X: 0.5, Y: -math.Sqrt(3) / 2},
	}
}

// randomPoints returns n points in [0,100)² drawn from a seeded stream.
func randomPoints(n int, seed int64) []tsp.Point {
	rng := tsp.NewRand(seed)
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return pts
}

// mustMatrix builds a distance matrix or fails the test.
func mustMatrix(t testing.TB, pts []tsp.Point) *tsp.DistanceMatrix {
	t.Helper()
	d, err := tsp.NewDistanceMatrix(pts)
	require.NoError(t, err)

	return d
}

// requirePermutation asserts the tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidateTour(tour, n), "tour %v is not a permutation of 0..%d", tour, n-1)
}

// Repeat runs fn k times as subtests to lock in determinism.
func Repeat(t *testing.T, k int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < k; i++ {
		t.Run("rep", fn)
	}
}
