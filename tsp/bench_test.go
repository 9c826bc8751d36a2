package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourbench/tsp"
)

const benchN = 100

func BenchmarkNearestNeighbor(b *testing.B) {
	d := mustMatrix(b, randomPoints(benchN, seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.NearestNeighbor(d)
	}
}

func BenchmarkTwoOpt(b *testing.B) {
	d := mustMatrix(b, randomPoints(benchN, seedDet))
	start := tsp.NewRand(seedDet).Perm(benchN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.TwoOpt(d, start, tsp.DefaultTwoOptOptions())
	}
}

func BenchmarkAnneal(b *testing.B) {
	d := mustMatrix(b, randomPoints(benchN, seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Anneal(d, tsp.DefaultAnnealOptions(), tsp.NewRand(int64(i+1)))
	}
}

func BenchmarkGenetic(b *testing.B) {
	d := mustMatrix(b, randomPoints(benchN, seedDet))
	opts := tsp.DefaultGeneticOptions()
	opts.Generations = 50
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Genetic(d, opts, tsp.NewRand(int64(i+1)))
	}
}

func BenchmarkHybrid(b *testing.B) {
	d := mustMatrix(b, randomPoints(benchN, seedDet))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tsp.Hybrid(d, tsp.DefaultTwoOptOptions())
	}
}
