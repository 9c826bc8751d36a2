// SPDX-License-Identifier: MIT

package bench

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tourbench/tsp"
)

// Algorithm names, in the default session order.
const (
	Genetic         = "genetic"
	Hybrid          = "hybrid"
	Annealing       = "annealing"
	TwoOpt          = "two_opt"
	NearestNeighbor = "nearest_neighbor"
)

// ErrUnknownAlgorithm is returned by Select for a name that is not offered.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// Solver runs one heuristic on d. Deterministic solvers ignore rng.
type Solver func(d *tsp.DistanceMatrix, rng *rand.Rand) (tsp.Result, error)

// Algorithm is a named Solver.
type Algorithm struct {
	Name  string
	Solve Solver
}

// Params carries the tuning of every solver offered by Algorithms.
type Params struct {
	Genetic   tsp.GeneticOptions
	Annealing tsp.AnnealOptions
	TwoOpt    tsp.TwoOptOptions
}

// DefaultParams returns the default options of every solver.
func DefaultParams() Params {
	return Params{
		Genetic:   tsp.DefaultGeneticOptions(),
		Annealing: tsp.DefaultAnnealOptions(),
		TwoOpt:    tsp.DefaultTwoOptOptions(),
	}
}

// Algorithms returns the five heuristics in the default session order:
// genetic, hybrid, annealing, two_opt, nearest_neighbor.
// Standalone 2-opt starts from the identity tour.
func Algorithms(p Params) []Algorithm {
	return []Algorithm{
		{Name: Genetic, Solve: func(d *tsp.DistanceMatrix, rng *rand.Rand) (tsp.Result, error) {
			return tsp.Genetic(d, p.Genetic, rng)
		}},
		{Name: Hybrid, Solve: func(d *tsp.DistanceMatrix, _ *rand.Rand) (tsp.Result, error) {
			return tsp.Hybrid(d, p.TwoOpt)
		}},
		{Name: Annealing, Solve: func(d *tsp.DistanceMatrix, rng *rand.Rand) (tsp.Result, error) {
			return tsp.Anneal(d, p.Annealing, rng)
		}},
		{Name: TwoOpt, Solve: func(d *tsp.DistanceMatrix, _ *rand.Rand) (tsp.Result, error) {
			return tsp.TwoOpt(d, tsp.IdentityTour(d.Len()), p.TwoOpt)
		}},
		{Name: NearestNeighbor, Solve: func(d *tsp.DistanceMatrix, _ *rand.Rand) (tsp.Result, error) {
			return tsp.NearestNeighbor(d)
		}},
	}
}

// Select keeps the algorithms named in names, in the order of names.
// An empty names list keeps all of them.
//
// Errors: ErrUnknownAlgorithm.
func Select(all []Algorithm, names []string) ([]Algorithm, error) {
	if len(names) == 0 {
		return all, nil
	}
	byName := make(map[string]Algorithm, len(all))
	for _, a := range all {
		byName[a.Name] = a
	}

	out := make([]Algorithm, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, a)
	}

	return out, nil
}
