// SPDX-License-Identifier: MIT

// Package bench runs the tsp heuristics side by side on one point set and
// ranks them.
//
// A comparison session is driven by Runner: every configured Algorithm runs
// Runs times on the same DistanceMatrix, each run with its own seeded random
// source, and produces one Result per algorithm name. Results keeps those
// entries in insertion order, which is the order every tie-break refers to.
//
// Ranking (Ranker):
//
//   - BestByDistance - minimum Length; first inserted wins ties.
//   - BestByTime     - minimum Elapsed; first inserted wins ties.
//   - CombinedRank   - position in the length order plus position in the time
//     order (both stable sorts); lowest sum wins, first inserted wins ties.
//
// A failed run contributes no Result. Every Ranker operation works over
// whatever subset of algorithms produced a result, including none.
//
// Observability is optional and lives at this layer only: Runner logs through
// log/slog, opens OpenTelemetry spans per session and per run, and records
// Prometheus metrics when a Metrics value is attached.
package bench
