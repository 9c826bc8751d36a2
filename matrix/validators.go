// SPDX-License-Identifier: MIT

// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for distance-table checks.
//  - Return sentinel errors tagged with the validator name so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil → Square → Diagonal →
//    Negativity → Symmetry) so the reported error is stable for a given input.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// abs is a branch-only absolute value that avoids the math import in hot checks.
func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows()==Cols().
// A 0×0 matrix is square.
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateZeroDiagonal ensures |a_ii| ≤ tol for every i.
// Assumes m is square (call ValidateSquare first).
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense, tol float64) error {
	var i int
	for i = 0; i < m.r; i++ {
		if abs(m.data[i*m.c+i]) > tol {
			return validatorErrorf("ValidateZeroDiagonal", ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateSymmetric ensures |a_ij - a_ji| ≤ tol over the upper triangle.
// Assumes m is square (call ValidateSquare first).
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, tol float64) error {
	var (
		i, j int
		n    = m.r
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if abs(m.data[i*n+j]-m.data[j*n+i]) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateDistances runs the full distance-table contract:
// square, zero diagonal, no negative entries, symmetric (all within tol).
// NaN/Inf cannot be present because Set rejects them.
//
// Complexity: O(n²).
func ValidateDistances(m *Dense, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateZeroDiagonal(m, tol); err != nil {
		return err
	}
	var k int
	for k = 0; k < len(m.data); k++ {
		if m.data[k] < 0 {
			return validatorErrorf("ValidateDistances", ErrNegativeValue)
		}
	}

	return ValidateSymmetric(m, tol)
}
