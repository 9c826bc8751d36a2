// SPDX-License-Identifier: MIT

package bench

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/tourbench/logging"
	"github.com/katalvlaran/tourbench/tsp"
)

// ErrNoAlgorithms is returned by Runner.Run when nothing is configured to run.
var ErrNoAlgorithms = errors.New("bench: no algorithms")

var tracer = otel.Tracer("github.com/katalvlaran/tourbench/bench")

// Runner drives one comparison session.
type Runner struct {
	// Algorithms run in this order.
	Algorithms []Algorithm

	// Runs is the number of repetitions per algorithm (values < 1 mean 1).
	// Run i of an algorithm seeds its RNG from Seed+i and the algorithm name.
	Runs int

	// Seed is the session seed.
	Seed int64

	// Logger receives session and run records; nil discards them.
	Logger *slog.Logger

	// Metrics, when non-nil, records every run.
	Metrics *Metrics
}

// Failure describes one run that returned an error.
type Failure struct {
	Name string
	Run  int
	Err  error
}

// Session is the outcome of Runner.Run.
type Session struct {
	ID        string
	Points    int
	Results   *Results
	Summaries []Summary
	Failures  []Failure
}

// Ranker returns a Ranker over the session results.
func (s *Session) Ranker() *Ranker { return NewRanker(s.Results) }

// Run builds the distance matrix once and runs every algorithm on it.
//
// For each algorithm the kept Result holds the shortest tour over all runs
// (first run wins ties) and the mean elapsed time. A run that fails is logged
// and recorded in Session.Failures; an algorithm without a single successful
// run has no Result. The context only carries tracing.
//
// Errors: ErrNoAlgorithms; tsp.ErrNonFiniteCoordinate from the matrix build.
func (r Runner) Run(ctx context.Context, points []tsp.Point) (*Session, error) {
	if len(r.Algorithms) == 0 {
		return nil, ErrNoAlgorithms
	}
	runs := r.Runs
	if runs < 1 {
		runs = 1
	}
	logger := logging.OrDiscard(r.Logger)

	s := &Session{
		ID:      uuid.NewString()[:12],
		Points:  len(points),
		Results: &Results{},
	}
	logger = logger.With(slog.String("session_id", s.ID))

	ctx, span := tracer.Start(ctx, "bench.Session",
		trace.WithAttributes(
			attribute.String("bench.session_id", s.ID),
			attribute.Int("bench.points", len(points)),
			attribute.Int("bench.algorithms", len(r.Algorithms)),
			attribute.Int("bench.runs", runs),
		),
	)
	defer span.End()

	d, err := tsp.NewDistanceMatrix(points)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "distance matrix")
		return nil, err
	}

	logger.Info("session started",
		slog.Int("points", len(points)),
		slog.Int("algorithms", len(r.Algorithms)),
		slog.Int("runs", runs),
		slog.Int64("seed", r.Seed),
	)

	for _, algo := range r.Algorithms {
		done := make([]Result, 0, runs)
		for i := 0; i < runs; i++ {
			res, err := r.runOnce(ctx, logger, d, algo, i)
			if err != nil {
				s.Failures = append(s.Failures, Failure{Name: algo.Name, Run: i, Err: err})
				continue
			}
			done = append(done, res)
		}
		if len(done) == 0 {
			continue
		}
		s.Results.Add(aggregate(algo.Name, done))
		s.Summaries = append(s.Summaries, Summarize(algo.Name, done))
	}

	span.SetAttributes(
		attribute.Int("bench.results", s.Results.Len()),
		attribute.Int("bench.failures", len(s.Failures)),
	)
	logger.Info("session finished",
		slog.Int("results", s.Results.Len()),
		slog.Int("failures", len(s.Failures)),
	)

	return s, nil
}

// runOnce executes a single run of algo under its own span and RNG stream.
func (r Runner) runOnce(ctx context.Context, logger *slog.Logger, d *tsp.DistanceMatrix, algo Algorithm, run int) (Result, error) {
	seed := tsp.DeriveSeed(r.Seed+int64(run), stream(algo.Name))

	_, span := tracer.Start(ctx, "bench.Run",
		trace.WithAttributes(
			attribute.String("bench.algorithm", algo.Name),
			attribute.Int("bench.run", run),
			attribute.Int64("bench.seed", seed),
		),
	)
	defer span.End()

	logger.Debug("run started", slog.String("algorithm", algo.Name), slog.Int("run", run))

	res, err := algo.Solve(d, tsp.DeriveRand(r.Seed+int64(run), stream(algo.Name)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "solve")
		r.Metrics.fail(algo.Name)
		logger.Error("run failed",
			slog.String("algorithm", algo.Name),
			slog.Int("run", run),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	out := newResult(algo.Name, res)
	span.SetAttributes(
		attribute.Float64("bench.length", out.Length),
		attribute.Int64("bench.elapsed_us", out.Elapsed.Microseconds()),
	)
	r.Metrics.observe(out)
	logger.Info("run finished",
		slog.String("algorithm", algo.Name),
		slog.Int("run", run),
		slog.Float64("length", out.Length),
		slog.Duration("elapsed", out.Elapsed),
	)

	return out, nil
}

// aggregate keeps the shortest tour of runs and their mean elapsed time.
func aggregate(name string, runs []Result) Result {
	best := runs[0]

	var total time.Duration
	for _, r := range runs {
		total += r.Elapsed
		if r.Length < best.Length {
			best = r
		}
	}

	return Result{
		Name:    name,
		Tour:    best.Tour,
		Length:  best.Length,
		Elapsed: total / time.Duration(len(runs)),
	}
}

// stream maps an algorithm name to a stable RNG stream id, so an
// algorithm's randomness does not depend on which others run with it.
func stream(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))

	return h.Sum64()
}
