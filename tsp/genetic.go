// SPDX-License-Identifier: MIT

// Package tsp - genetic optimizer.
//
// Generational GA over permutations:
//   - Initialization: PopulationSize independent uniform permutations.
//   - Elitism: the EliteSize fittest individuals are copied into the next
//     generation unchanged (stable order: ties keep population order).
//   - Selection: fitness-proportionate (roulette) sampling with replacement,
//     two independent draws per child.
//   - Crossover: ordered crossover (OX) on an inclusive random range [start,end].
//   - Mutation: per-position swap with probability MutationRate.
//   - Exactly Generations generations run; there is no early stop.
//   - The best final individual is refined by 2-opt before it is reported.
//
// Value semantics: every individual of a new generation is a freshly
// allocated slice (elites are copied too), so no generation aliases another.
package tsp

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// Genetic runs the genetic optimizer followed by a 2-opt refinement of the
// winner. For n ≤ 1 every individual is the same trivial tour; the loop still
// runs its budget but changes nothing.
//
// Errors: ErrNilMatrix, ErrNilRand, ErrInvalidOptions.
//
// Complexity: O(Generations · PopulationSize · n) plus the 2-opt post-pass.
func Genetic(d *DistanceMatrix, opts GeneticOptions, rng *rand.Rand) (Result, error) {
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

	b := newBreeder(d, opts, rng)
	b.seed()

	var gen int
	for gen = 0; gen < opts.Generations; gen++ {
		b.step()
		if opts.OnGeneration != nil {
			opts.OnGeneration(gen+1, b.lengths[b.fittest()])
		}
	}

	best := CopyTour(b.pop[b.fittest()])
	improveTwoOpt(d, best, opts.TwoOpt)

	return Result{
		Tour:    best,
		Length:  round1e9(tourLength(best, d)),
		Elapsed: time.Since(start),
	}, nil
}

// breeder owns one run's population and scratch buffers.
type breeder struct {
	d    *DistanceMatrix
	opts GeneticOptions
	rng  *rand.Rand
	n    int

	pop     [][]int
	fitness []float64
	lengths []float64

	order []int     // population indices sorted by fitness (desc)
	cum   []float64 // cumulative fitness for roulette selection
	mark  []int     // OX membership marks (stamp technique, no per-child clearing)
	stamp int
}

func newBreeder(d *DistanceMatrix, opts GeneticOptions, rng *rand.Rand) *breeder {
	p := opts.PopulationSize

	return &breeder{
		d:       d,
		opts:    opts,
		rng:     rng,
		n:       d.n,
		pop:     make([][]int, p),
		fitness: make([]float64, p),
		lengths: make([]float64, p),
		order:   make([]int, p),
		cum:     make([]float64, p),
		mark:    make([]int, d.n),
	}
}

// seed fills the initial population with uniform random permutations.
func (b *breeder) seed() {
	var i int
	for i = range b.pop {
		b.pop[i] = randomTour(b.n, b.rng)
		b.score(i)
	}
}

// score caches length and fitness of individual i.
func (b *breeder) score(i int) {
	b.lengths[i] = tourLength(b.pop[i], b.d)
	b.fitness[i] = fitnessOf(b.lengths[i])
}

// fittest returns the index of the highest-fitness individual (first on ties).
func (b *breeder) fittest() int {
	best := 0

	var i int
	for i = 1; i < len(b.fitness); i++ {
		if b.fitness[i] > b.fitness[best] {
			best = i
		}
	}

	return best
}

// step replaces the population with elites + bred children.
func (b *breeder) step() {
	p := b.opts.PopulationSize

	var i int
	for i = range b.order {
		b.order[i] = i
	}
	sort.SliceStable(b.order, func(x, y int) bool {
		return b.fitness[b.order[x]] > b.fitness[b.order[y]]
	})
	b.prepareRoulette()

	next := make([][]int, 0, p)
	for i = 0; i < b.opts.EliteSize; i++ {
		next = append(next, CopyTour(b.pop[b.order[i]]))
	}
	for len(next) < p {
		p1 := b.pop[b.pick()]
		p2 := b.pop[b.pick()]
		child := b.crossover(p1, p2)
		b.mutate(child)
		next = append(next, child)
	}

	b.pop = next
	for i = range b.pop {
		b.score(i)
	}
}

// prepareRoulette builds the cumulative fitness table for pick.
func (b *breeder) prepareRoulette() {
	var (
		sum float64
		i   int
	)
	for i = range b.fitness {
		sum += b.fitness[i]
		b.cum[i] = sum
	}
}

// pick draws one parent index with probability proportional to fitness.
// When the total is not a positive finite number (degenerate populations),
// every individual is equally likely.
//
// Complexity: O(log P).
func (b *breeder) pick() int {
	p := len(b.cum)
	total := b.cum[p-1]
	if !(total > 0) || math.IsInf(total, 0) {
		return b.rng.Intn(p)
	}
	r := b.rng.Float64() * total
	idx := sort.Search(p, func(i int) bool { return b.cum[i] > r })
	if idx == p {
		idx = p - 1
	}

	return idx
}

// crossover applies ordered crossover and returns a freshly allocated child.
//
// A random inclusive range [start, end] of p1 is copied in place; the free
// positions are filled left to right with the genes of p2 in p2's order,
// skipping genes already copied. The child is a permutation whenever p1 and
// p2 are permutations of the same index set.
//
// Complexity: O(n).
func (b *breeder) crossover(p1, p2 []int) []int {
	n := len(p1)
	child := make([]int, n)
	if n < 2 {
		copy(child, p1)
		return child
	}
	lo := b.rng.Intn(n)
	hi := lo + b.rng.Intn(n-lo)

	b.stamp++
	var i int
	for i = range child {
		child[i] = -1
	}
	for i = lo; i <= hi; i++ {
		child[i] = p1[i]
		b.mark[p1[i]] = b.stamp
	}

	pos := 0
	for _, gene := range p2 {
		if b.mark[gene] == b.stamp {
			continue
		}
		for child[pos] != -1 {
			pos++
		}
		child[pos] = gene
		pos++
	}

	return child
}

// mutate swaps each position, with probability MutationRate, with a uniformly
// random position of the same tour (possibly itself).
//
// Complexity: O(n).
func (b *breeder) mutate(tour []int) {
	n := len(tour)

	var i, j int
	for i = 0; i < n; i++ {
		if b.rng.Float64() < b.opts.MutationRate {
			j = b.rng.Intn(n)
			tour[i], tour[j] = tour[j], tour[i]
		}
	}
}
