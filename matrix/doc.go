// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major storage used for pairwise
// distance tables.
//
// What & Why:
//
//	Distance tables are read in tight loops by every tour optimizer, so the
//	storage is a single flat []float64 with the explicit offset formula
//	i*cols + j. The public surface (At/Set/Row) is bounds-checked and returns
//	sentinel errors instead of panicking; hot loops take a zero-copy Row view
//	once and index it directly.
//
// Validators (ValidateSquare, ValidateZeroDiagonal, ValidateSymmetric,
// ValidateDistances) centralize the structural checks a distance table must
// pass. All of them are pure, deterministic and allocate nothing.
//
// Complexity:
//
//	NewDense O(r*c) zero-init; At/Set/Row O(1); Clone O(r*c);
//	symmetric/diagonal validation O(n²).
package matrix
