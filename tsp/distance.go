// SPDX-License-Identifier: MIT

// Package tsp - Euclidean distance model.
//
// This file builds the read-only DistanceMatrix shared by every solver.
// The table is stored in a matrix.Dense (row-major, bounds-checked) and a
// slice of zero-copy row views is kept alongside it so hot loops read
// d.rows[i][j] without interface indirection or error returns.
//
// Design:
//   - Computed once per point set; never mutated afterwards.
//   - Symmetric by construction: only the upper triangle is computed and mirrored.
//   - Non-finite coordinates are rejected here (ErrNonFiniteCoordinate); this is
//     the validation boundary between loaders and the solvers.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourbench/matrix"
)

// Distance returns the Euclidean distance between p and q.
//
// Complexity: O(1).
func Distance(p, q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// ValidatePoints rejects any point whose coordinates are NaN or ±Inf.
// The error names the offending index.
//
// Complexity: O(n).
func ValidatePoints(points []Point) error {
	var i int
	for i = 0; i < len(points); i++ {
		if !isFinite(points[i].X) || !isFinite(points[i].Y) {
			return fmt.Errorf("point %d (%v, %v): %w", i, points[i].X, points[i].Y, ErrNonFiniteCoordinate)
		}
	}

	return nil
}

func isFinite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// DistanceMatrix is an n×n table of pairwise Euclidean distances.
// Invariants: d[i][j] == d[j][i], d[i][i] == 0, every entry finite and ≥ 0.
type DistanceMatrix struct {
	n     int
	dense *matrix.Dense
	rows  [][]float64 // zero-copy views into dense, one per row
}

// NewDistanceMatrix computes all pairwise distances of points.
// An empty point set yields a valid 0×0 matrix.
//
// Errors: ErrNonFiniteCoordinate (wrapped with the point index); a non-finite
// distance produced by overflow (e.g. coordinates near ±MaxFloat64) is reported
// the same way.
//
// Complexity: O(n²) time and space.
func NewDistanceMatrix(points []Point) (*DistanceMatrix, error) {
	if err := ValidatePoints(points); err != nil {
		return nil, err
	}
	n := len(points)
	dense, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = Distance(points[i], points[j])
			// Set rejects ±Inf, which only an overflowing hypot can produce here.
			if err = dense.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("distance %d-%d: %w", i, j, ErrNonFiniteCoordinate)
			}
			_ = dense.Set(j, i, w) // mirror; same finite value, cannot fail
		}
	}

	return newDistanceMatrixFromDense(dense)
}

// NewDistanceMatrixFromDense wraps an externally built table after checking the
// full distance contract (square, zero diagonal, non-negative, symmetric).
// The matrix is cloned so later mutations by the caller cannot leak in.
//
// Complexity: O(n²).
func NewDistanceMatrixFromDense(m *matrix.Dense) (*DistanceMatrix, error) {
	if err := matrix.ValidateDistances(m, symTol); err != nil {
		return nil, err
	}

	return newDistanceMatrixFromDense(m.Clone())
}

// newDistanceMatrixFromDense caches the row views. dense must already satisfy
// the distance contract.
func newDistanceMatrixFromDense(dense *matrix.Dense) (*DistanceMatrix, error) {
	n := dense.Rows()
	rows := make([][]float64, n)

	var (
		i   int
		err error
	)
	for i = 0; i < n; i++ {
		if rows[i], err = dense.Row(i); err != nil {
			return nil, err
		}
	}

	return &DistanceMatrix{n: n, dense: dense, rows: rows}, nil
}

// Len returns the number of points n.
func (d *DistanceMatrix) Len() int { return d.n }

// At returns the distance between points i and j with bounds checking.
//
// Complexity: O(1).
func (d *DistanceMatrix) At(i, j int) (float64, error) {
	return d.dense.At(i, j)
}

// Dense returns a deep copy of the underlying table.
func (d *DistanceMatrix) Dense() *matrix.Dense { return d.dense.Clone() }

// w is the unchecked hot-path accessor; callers guarantee 0 ≤ i,j < n.
func (d *DistanceMatrix) w(i, j int) float64 { return d.rows[i][j] }
