// SPDX-License-Identifier: MIT

// Package tsp - nearest-neighbour construction.
package tsp

import "time"

// NearestNeighbor builds one greedy tour: start at index 0, then repeatedly
// move to the closest unvisited index until all are visited.
//
// Ties are broken by the lowest index: candidates are scanned in ascending
// order and only a strictly shorter distance replaces the incumbent. The
// result is therefore fully deterministic for a given matrix.
//
// n == 0 yields an empty tour with zero length and zero elapsed time;
// n == 1 yields [0] with length 0.
//
// Errors: ErrNilMatrix.
//
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(d *DistanceMatrix) (Result, error) {
	if d == nil {
		return Result{}, ErrNilMatrix
	}
	n := d.n
	if n == 0 {
		return Result{Tour: []int{}}, nil
	}
	start := time.Now()

	tour := make([]int, 0, n)
	visited := make([]bool, n)

	var (
		cur      = 0
		next     int
		bestW, w float64
		step, j  int
	)
	tour = append(tour, cur)
	visited[cur] = true

	for step = 1; step < n; step++ {
		next = -1
		row := d.rows[cur]
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			w = row[j]
			if next == -1 || w < bestW {
				next, bestW = j, w
			}
		}
		tour = append(tour, next)
		visited[next] = true
		cur = next
	}

	return Result{
		Tour:    tour,
		Length:  round1e9(tourLength(tour, d)),
		Elapsed: time.Since(start),
	}, nil
}
