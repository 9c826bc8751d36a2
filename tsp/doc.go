// SPDX-License-Identifier: MIT

// Package tsp provides heuristic solvers for the Euclidean Travelling
// Salesman Problem on a finite set of 2D points.
//
// All solvers read a read-only DistanceMatrix built once per point set:
//
//   - NearestNeighbor - deterministic greedy construction from index 0.
//     Complexity: O(n²).
//
//   - TwoOpt - first-improvement 2-opt local search with O(1) edge-delta
//     scoring. Output length never exceeds input length.
//     Complexity: O(n²) per pass, passes repeat until a local optimum.
//
//   - Anneal - simulated annealing with segment-reversal neighbours,
//     Boltzmann acceptance and geometric cooling.
//     Complexity: O(maxIter) with O(n) per accepted move.
//
//   - Genetic - generational GA with fitness-proportionate selection,
//     ordered crossover, swap mutation and elitism; the winner is refined by
//     TwoOpt. Complexity: O(generations · population · n).
//
//   - Hybrid - NearestNeighbor followed by TwoOpt.
//
// A tour is an open permutation of 0..n-1; the closing edge from the last
// index back to the first is implicit. Degenerate inputs (n == 0 or n == 1)
// never fail: every solver returns the trivial tour with length 0.
//
// Randomness is always injected as an explicit *rand.Rand (see NewRand);
// there is no package-level random state, so a fixed seed reproduces a run
// exactly. Solvers are single-threaded and never log.
package tsp
