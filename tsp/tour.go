// SPDX-License-Identifier: MIT

// Package tsp - tour utilities shared by every solver.
//
// A tour is an open permutation of {0..n-1}; the edge from the last index back
// to the first is implicit. Helpers here operate purely on index sequences and
// never touch distances.
//
// Provided helpers:
//   - ValidateTour: verify a permutation over {0..n-1} (n == 0 accepts only the empty tour).
//   - IdentityTour: the canonical 0..n-1 tour.
//   - CopyTour: independent copy of a tour slice.
//   - EqualToursModuloRotation: cyclic equality, same direction.
//   - SameCycle: cyclic equality in either direction.
//   - reverseSegment: in-place inclusive reversal (2-opt and annealing move).
package tsp

import "fmt"

// tourErrorf wraps ErrInvalidTour with a short description of the violation.
func tourErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTour, fmt.Sprintf(format, args...))
}

// ValidateTour checks that tour is a permutation of {0..n-1}.
// It allocates a single O(n) marker slice.
//
// Errors: ErrInvalidTour (wrapped with the first violation found).
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return tourErrorf("length %d, want %d", len(tour), n)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return tourErrorf("index %d out of range at position %d", v, i)
		}
		if seen[v] {
			return tourErrorf("duplicate index %d at position %d", v, i)
		}
		seen[v] = true
	}

	return nil
}

// IdentityTour returns the tour 0, 1, …, n-1 (empty for n ≤ 0).
//
// Complexity: O(n).
func IdentityTour(n int) []int {
	if n <= 0 {
		return []int{}
	}
	out := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// CopyTour returns an independent copy of the input tour slice.
// A nil input yields nil.
//
// Complexity: O(n).
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// EqualToursModuloRotation reports whether a and b describe the same cycle in
// the same direction, allowing any rotation.
//
// Complexity: O(n).
func EqualToursModuloRotation(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	p := -1

	var i int
	for i = 0; i < n; i++ {
		if b[i] == a[0] {
			p = i
			break
		}
	}
	if p == -1 {
		return false
	}
	for i = 0; i < n; i++ {
		if a[i] != b[(p+i)%n] {
			return false
		}
	}

	return true
}

// SameCycle reports whether a and b describe the same cycle in either direction.
//
// Complexity: O(n).
func SameCycle(a, b []int) bool {
	if EqualToursModuloRotation(a, b) {
		return true
	}
	rev := CopyTour(b)
	reverseSegment(rev, 0, len(rev)-1)

	return EqualToursModuloRotation(a, rev)
}

// reverseSegment reverses the inclusive segment tour[i..k] in place.
// Callers guarantee 0 ≤ i and k < len(tour); i ≥ k is a no-op.
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}
