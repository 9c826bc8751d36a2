// SPDX-License-Identifier: MIT

// Package tsp - solver options, defaults and validation.
//
// Each stochastic or iterative solver has an options struct, a Default*
// constructor carrying the reference parameters, and a Validate method that
// returns ErrInvalidOptions (wrapped with the offending field) on any
// out-of-range value. Validation is O(1), deterministic and side-effect free.
package tsp

import (
	"fmt"
	"math"
)

const (
	// symTol is a structural tolerance for symmetry/diagonal checks of
	// externally supplied distance tables.
	symTol = 1e-12

	// DefaultEps is the default 2-opt improvement threshold: a move is taken
	// only when it shortens the tour by more than Eps.
	DefaultEps = 1e-12
)

// optionsErrorf wraps ErrInvalidOptions with the field name and value.
func optionsErrorf(field string, v any) error {
	return fmt.Errorf("%w: %s = %v", ErrInvalidOptions, field, v)
}

// TwoOptOptions tunes TwoOpt.
type TwoOptOptions struct {
	// Eps is the acceptance tolerance: a move is applied when Δ < −Eps.
	// It keeps floating-point noise from cycling the search. Must be ≥ 0.
	Eps float64

	// MaxMoves bounds the number of accepted moves (0 ⇒ run to a local optimum).
	MaxMoves int
}

// DefaultTwoOptOptions returns Eps = DefaultEps and no move bound.
func DefaultTwoOptOptions() TwoOptOptions {
	return TwoOptOptions{Eps: DefaultEps}
}

// Validate checks TwoOptOptions.
func (o TwoOptOptions) Validate() error {
	if o.Eps < 0 || math.IsNaN(o.Eps) {
		return optionsErrorf("Eps", o.Eps)
	}
	if o.MaxMoves < 0 {
		return optionsErrorf("MaxMoves", o.MaxMoves)
	}

	return nil
}

// AnnealStep is the state reported to AnnealOptions.OnStep after every iteration.
// CurrentLength is maintained incrementally and resynchronised every few
// hundred accepted moves, so it may differ from the exact length by rounding.
type AnnealStep struct {
	Iteration     int     // 1-based iteration count
	Temperature   float64 // temperature used for this iteration's acceptance test
	CurrentLength float64 // length of the current tour after the step
	BestLength    float64 // length of the best tour seen so far
	Accepted      bool    // whether the neighbour replaced the current tour
}

// AnnealOptions tunes Anneal.
type AnnealOptions struct {
	InitialTemp float64 // T0 > 0
	Alpha       float64 // geometric cooling factor, 0 < Alpha < 1
	MinTemp     float64 // stopping temperature Tmin > 0
	MaxIter     int     // iteration cap ≥ 0

	// OnStep, when non-nil, is called synchronously after each iteration.
	OnStep func(AnnealStep)
}

// DefaultAnnealOptions returns T0 = 10000, Alpha = 0.995, Tmin = 1e-5, MaxIter = 1000.
func DefaultAnnealOptions() AnnealOptions {
	return AnnealOptions{
		InitialTemp: 10000,
		Alpha:       0.995,
		MinTemp:     1e-5,
		MaxIter:     1000,
	}
}

// Validate checks AnnealOptions.
func (o AnnealOptions) Validate() error {
	if !(o.InitialTemp > 0) || math.IsInf(o.InitialTemp, 0) {
		return optionsErrorf("InitialTemp", o.InitialTemp)
	}
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return optionsErrorf("Alpha", o.Alpha)
	}
	if !(o.MinTemp > 0) {
		return optionsErrorf("MinTemp", o.MinTemp)
	}
	if o.MaxIter < 0 {
		return optionsErrorf("MaxIter", o.MaxIter)
	}

	return nil
}

// GeneticOptions tunes Genetic.
type GeneticOptions struct {
	PopulationSize int     // ≥ 1
	EliteSize      int     // 0 ≤ EliteSize < PopulationSize
	MutationRate   float64 // per-gene swap probability in [0, 1]
	Generations    int     // exact number of generations ≥ 0

	// TwoOpt tunes the post-pass applied to the final best individual.
	TwoOpt TwoOptOptions

	// OnGeneration, when non-nil, is called synchronously after each
	// generation with the 1-based generation number and the best length in
	// the new population.
	OnGeneration func(generation int, bestLength float64)
}

// DefaultGeneticOptions returns population 100, elite 10, mutation 0.01,
// 1000 generations and the default 2-opt post-pass.
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		PopulationSize: 100,
		EliteSize:      10,
		MutationRate:   0.01,
		Generations:    1000,
		TwoOpt:         DefaultTwoOptOptions(),
	}
}

// Validate checks GeneticOptions.
func (o GeneticOptions) Validate() error {
	if o.PopulationSize < 1 {
		return optionsErrorf("PopulationSize", o.PopulationSize)
	}
	if o.EliteSize < 0 || o.EliteSize >= o.PopulationSize {
		return optionsErrorf("EliteSize", o.EliteSize)
	}
	if !(o.MutationRate >= 0 && o.MutationRate <= 1) {
		return optionsErrorf("MutationRate", o.MutationRate)
	}
	if o.Generations < 0 {
		return optionsErrorf("Generations", o.Generations)
	}

	return o.TwoOpt.Validate()
}
