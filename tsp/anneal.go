// SPDX-License-Identifier: MIT

// Package tsp - simulated annealing.
//
// State: current tour (may be worse than best), best tour (never worsens),
// temperature T. Each iteration:
//
//  1. pick a segment length l ∈ [2, n] and a start i ∈ [0, n−l] uniformly;
//  2. Δ = length(neighbour) − length(current), where the neighbour reverses
//     current[i..i+l−1] (scored in O(1) from the two replaced edges);
//  3. accept if Δ < 0, otherwise with probability exp(−Δ/T) (Metropolis/Boltzmann);
//  4. on acceptance apply the reversal; promote to best on strict improvement;
//  5. T ← T·Alpha.
//
// The loop stops when T ≤ MinTemp or MaxIter iterations have run.
package tsp

import (
	"math"
	"math/rand"
	"time"
)

// annealResync is the number of accepted moves after which the running
// current length is recomputed from scratch to bound floating-point drift.
const annealResync = 256

// Anneal runs simulated annealing from a random permutation drawn from rng.
// For n < 2 there is no segment to reverse: the trivial tour is returned
// immediately and rng is not consumed.
//
// Errors: ErrNilMatrix, ErrNilRand, ErrInvalidOptions.
//
// Complexity: O(n + MaxIter·n) worst case (each accepted reversal is O(l)).
func Anneal(d *DistanceMatrix, opts AnnealOptions, rng *rand.Rand) (Result, error) {
	start := time.Now()
	if d == nil {
		return Result{}, ErrNilMatrix
	}
	if rng == nil {
		return Result{}, ErrNilRand
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	n := d.n
	if n < 2 {
		return Result{Tour: IdentityTour(n), Elapsed: time.Since(start)}, nil
	}

	cur := randomTour(n, rng)
	curLen := tourLength(cur, d)
	best := CopyTour(cur)
	bestLen := curLen

	var (
		temp     = opts.InitialTemp
		iter     int
		l, i, j  int
		delta    float64
		accepted bool
		moves    int
	)
	for iter = 0; iter < opts.MaxIter && temp > opts.MinTemp; iter++ {
		l = 2 + rng.Intn(n-1) // [2, n]
		i = rng.Intn(n - l + 1)
		j = i + l - 1

		delta = reversalDelta(d, cur, i, j)
		accepted = delta < 0 || rng.Float64() < math.Exp(-delta/temp)
		if accepted {
			reverseSegment(cur, i, j)
			curLen += delta
			moves++
			if moves%annealResync == 0 {
				curLen = tourLength(cur, d)
			}
		}
		if curLen < bestLen {
			copy(best, cur)
			bestLen = curLen
		}
		if opts.OnStep != nil {
			opts.OnStep(AnnealStep{
				Iteration:     iter + 1,
				Temperature:   temp,
				CurrentLength: curLen,
				BestLength:    bestLen,
				Accepted:      accepted,
			})
		}
		temp *= opts.Alpha
	}

	return Result{
		Tour:    best,
		Length:  round1e9(tourLength(best, d)),
		Elapsed: time.Since(start),
	}, nil
}

// reversalDelta returns the length change caused by reversing tour[i..j]
// (0 ≤ i < j < n) on a cyclic tour. Reversing the whole tour, or all but one
// index, only mirrors the cycle and yields 0.
//
// Complexity: O(1).
func reversalDelta(d *DistanceMatrix, tour []int, i, j int) float64 {
	n := len(tour)
	if j-i+1 >= n {
		return 0
	}
	prev := tour[(i-1+n)%n]
	next := tour[(j+1)%n]
	first, last := tour[i], tour[j]

	return (d.w(prev, last) + d.w(first, next)) - (d.w(prev, first) + d.w(last, next))
}
