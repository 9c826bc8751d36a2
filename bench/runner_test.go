package bench_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourbench/bench"
	"github.com/katalvlaran/tourbench/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func nan() float64 { return math.NaN() }

func square() []tsp.Point {
	return []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func scatter(n int, seed int64) []tsp.Point {
	rng := tsp.NewRand(seed)
	pts := make([]tsp.Point, n)
	for i := range pts {
		pts[i] = tsp.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}

	return pts
}

func fastParams() bench.Params {
	p := bench.DefaultParams()
	p.Genetic.PopulationSize = 20
	p.Genetic.EliteSize = 2
	p.Genetic.Generations = 20
	p.Annealing.MaxIter = 200

	return p
}

func TestAlgorithms_DefaultOrder(t *testing.T) {
	var names []string
	for _, a := range bench.Algorithms(bench.DefaultParams()) {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		bench.Genetic, bench.Hybrid, bench.Annealing, bench.TwoOpt, bench.NearestNeighbor,
	}, names)
}

func TestSelect(t *testing.T) {
	all := bench.Algorithms(bench.DefaultParams())

	got, err := bench.Select(all, nil)
	require.NoError(t, err)
	assert.Len(t, got, len(all))

	got, err = bench.Select(all, []string{bench.TwoOpt, bench.Genetic, bench.TwoOpt})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, bench.TwoOpt, got[0].Name)
	assert.Equal(t, bench.Genetic, got[1].Name)

	_, err = bench.Select(all, []string{"dijkstra"})
	require.ErrorIs(t, err, bench.ErrUnknownAlgorithm)
}

func TestRunner_UnitSquare(t *testing.T) {
	r := bench.Runner{Algorithms: bench.Algorithms(fastParams()), Seed: 1}

	s, err := r.Run(context.Background(), square())
	require.NoError(t, err)
	require.Len(t, s.ID, 12)
	assert.Equal(t, 4, s.Points)
	assert.Empty(t, s.Failures)
	require.Equal(t, []string{
		bench.Genetic, bench.Hybrid, bench.Annealing, bench.TwoOpt, bench.NearestNeighbor,
	}, s.Results.Names())

	for _, res := range s.Results.All() {
		require.NoError(t, tsp.ValidateTour(res.Tour, 4), res.Name)
		assert.GreaterOrEqual(t, res.Elapsed.Nanoseconds(), int64(0))
	}
	for _, name := range []string{bench.Genetic, bench.Hybrid, bench.TwoOpt, bench.NearestNeighbor} {
		res, ok := s.Results.Get(name)
		require.True(t, ok)
		assert.InDelta(t, 4.0, res.Length, 1e-9, name)
	}

	best, ok := s.Ranker().BestByDistance()
	require.True(t, ok)
	assert.InDelta(t, 4.0, best.Length, 1e-9)
}

func TestRunner_Deterministic(t *testing.T) {
	pts := scatter(25, 9)
	r := bench.Runner{Algorithms: bench.Algorithms(fastParams()), Seed: 77, Runs: 2}

	a, err := r.Run(context.Background(), pts)
	require.NoError(t, err)
	b, err := r.Run(context.Background(), pts)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	for _, name := range a.Results.Names() {
		ra, _ := a.Results.Get(name)
		rb, ok := b.Results.Get(name)
		require.True(t, ok)
		assert.Equal(t, ra.Tour, rb.Tour, name)
		assert.Equal(t, ra.Length, rb.Length, name)
	}
}

func TestRunner_RepeatedRunsKeepBest(t *testing.T) {
	pts := scatter(15, 4)
	algo, err := bench.Select(bench.Algorithms(fastParams()), []string{bench.Annealing})
	require.NoError(t, err)

	r := bench.Runner{Algorithms: algo, Seed: 5, Runs: 4}
	s, err := r.Run(context.Background(), pts)
	require.NoError(t, err)

	require.Len(t, s.Summaries, 1)
	sum := s.Summaries[0]
	assert.Equal(t, 4, sum.Runs)
	assert.LessOrEqual(t, sum.BestLength, sum.MeanLength)

	res, ok := s.Results.Get(bench.Annealing)
	require.True(t, ok)
	assert.Equal(t, sum.BestLength, res.Length)
	assert.InDelta(t, float64(sum.MeanElapsed), float64(res.Elapsed), 1e3)
}

func TestRunner_FailuresAreSparse(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	failing := bench.Algorithm{
		Name: "broken",
		Solve: func(*tsp.DistanceMatrix, *rand.Rand) (tsp.Result, error) {
			return tsp.Result{}, errBoom
		},
	}
	algos, err := bench.Select(bench.Algorithms(fastParams()), []string{bench.NearestNeighbor})
	require.NoError(t, err)
	algos = append([]bench.Algorithm{failing}, algos...)

	r := bench.Runner{Algorithms: algos, Runs: 2, Logger: logger}
	s, err := r.Run(context.Background(), square())
	require.NoError(t, err)

	require.Len(t, s.Failures, 2)
	assert.ErrorIs(t, s.Failures[0].Err, errBoom)
	assert.Equal(t, []string{bench.NearestNeighbor}, s.Results.Names())
	assert.Contains(t, buf.String(), "run failed")
	assert.Contains(t, buf.String(), "session_id="+s.ID)

	name, _, ok := s.Ranker().CombinedRank()
	require.True(t, ok)
	assert.Equal(t, bench.NearestNeighbor, name)
}

func TestRunner_EmptyPointSet(t *testing.T) {
	r := bench.Runner{Algorithms: bench.Algorithms(fastParams())}
	s, err := r.Run(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, 5, s.Results.Len())
	for _, res := range s.Results.All() {
		assert.Empty(t, res.Tour, res.Name)
		assert.Equal(t, 0.0, res.Length, res.Name)
	}
}

func TestRunner_Errors(t *testing.T) {
	_, err := bench.Runner{}.Run(context.Background(), square())
	require.ErrorIs(t, err, bench.ErrNoAlgorithms)

	r := bench.Runner{Algorithms: bench.Algorithms(fastParams())}
	_, err = r.Run(context.Background(), []tsp.Point{{X: 0, Y: 0}, {X: nan(), Y: 1}})
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)
}
