package bench

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/tourbench/tsp"
)

func TestMetrics_ObserveAndFail(t *testing.T) {
	m := NewMetrics()
	m.observe(Result{Name: "hybrid", Length: 12.5, Elapsed: 3 * time.Millisecond})
	m.observe(Result{Name: "hybrid", Length: 11, Elapsed: 2 * time.Millisecond})
	m.fail("genetic")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.runsTotal.WithLabelValues("hybrid")))
	assert.Equal(t, 11.0, testutil.ToFloat64(m.tourLength.WithLabelValues("hybrid")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.failures.WithLabelValues("genetic")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.runDuration))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.observe(Result{Name: "x"})
	m.fail("x")
	assert.Nil(t, m.Registry())
	assert.NoError(t, m.WriteTextfile(filepath.Join(t.TempDir(), "unused.prom")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	r := Runner{Algorithms: Algorithms(DefaultParams())[3:], Metrics: m}
	_, err := r.Run(context.Background(), []tsp.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 6, Y: 0}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "tourbench.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `tourbench_runs_total{algorithm="two_opt"} 1`)
	assert.Contains(t, out, `tourbench_runs_total{algorithm="nearest_neighbor"} 1`)
	assert.Contains(t, out, `tourbench_tour_length{algorithm="two_opt"} 16`)
	assert.Contains(t, out, "tourbench_run_duration_seconds_bucket")
}

func TestRunner_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	r := Runner{Algorithms: Algorithms(DefaultParams())[3:], Runs: 2}
	s, err := r.Run(context.Background(), []tsp.Point{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)

	ended := sr.Ended()
	require.Len(t, ended, 1+2*2)

	var sessions, runs int
	for _, sp := range ended {
		switch sp.Name() {
		case "bench.Session":
			sessions++
		case "bench.Run":
			runs++
			assert.True(t, sp.Parent().IsValid())
		}
	}
	assert.Equal(t, 1, sessions)
	assert.Equal(t, 4, runs)
	assert.Equal(t, 2, s.Results.Len())
}

func TestSummarize(t *testing.T) {
	s := Summarize("a", nil)
	assert.Equal(t, Summary{Name: "a"}, s)

	s = Summarize("a", []Result{{Length: 4, Elapsed: time.Second}})
	assert.Equal(t, 1, s.Runs)
	assert.Equal(t, 4.0, s.MeanLength)
	assert.Equal(t, 0.0, s.StdLength)
	assert.Equal(t, time.Second, s.MeanElapsed)
	assert.Equal(t, time.Duration(0), s.StdElapsed)

	s = Summarize("a", []Result{
		{Length: 2, Elapsed: 1 * time.Second},
		{Length: 4, Elapsed: 3 * time.Second},
		{Length: 6, Elapsed: 2 * time.Second},
	})
	assert.Equal(t, 2.0, s.BestLength)
	assert.InDelta(t, 4.0, s.MeanLength, 1e-12)
	assert.InDelta(t, 2.0, s.StdLength, 1e-12) // sample deviation
	assert.Equal(t, time.Second, s.BestElapsed)
	assert.InDelta(t, float64(2*time.Second), float64(s.MeanElapsed), 1e3)
	assert.InDelta(t, float64(time.Second), float64(s.StdElapsed), 1e3)
}

func TestAggregateAndStream(t *testing.T) {
	got := aggregate("x", []Result{
		{Tour: []int{0, 1}, Length: 5, Elapsed: 2 * time.Millisecond},
		{Tour: []int{1, 0}, Length: 3, Elapsed: 4 * time.Millisecond},
		{Tour: []int{0, 1}, Length: 3, Elapsed: 6 * time.Millisecond},
	})
	assert.Equal(t, "x", got.Name)
	assert.Equal(t, []int{1, 0}, got.Tour)
	assert.Equal(t, 3.0, got.Length)
	assert.Equal(t, 4*time.Millisecond, got.Elapsed)

	assert.Equal(t, stream(Genetic), stream(Genetic))
	assert.NotEqual(t, stream(Genetic), stream(Annealing))
}
