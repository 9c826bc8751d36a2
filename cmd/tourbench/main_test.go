package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourbench/bench"
	"github.com/katalvlaran/tourbench/config"
)

// testApp returns an app writing into buffers, never prompting.
func testApp() (*app, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	a.interactive = func() bool { return false }
	a.pick = func([]string) (string, error) { return "", errors.New("unexpected prompt") }

	return a, &out, &errOut
}

func execute(a *app, args ...string) error {
	cmd := a.root()
	cmd.SetArgs(args)

	return cmd.ExecuteContext(context.Background())
}

func writeDataset(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

const squareTxt = "0 0\n1 0\n1 1\n0 1\n"

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "b.txt", squareTxt)
	writeDataset(t, dir, "a.txt", squareTxt)
	writeDataset(t, dir, "readme.md", "")

	a, out, _ := testApp()
	require.NoError(t, execute(a, "list", "--dir", dir))
	assert.Equal(t, "Available datasets:\n1. a.txt\n2. b.txt\n", out.String())

	a, out, _ = testApp()
	require.NoError(t, execute(a, "list", "--dir", t.TempDir()))
	assert.Contains(t, out.String(), "No datasets in")
}

func TestRun_Report(t *testing.T) {
	dir := t.TempDir()
	path := writeDataset(t, dir, "square.txt", "# header\n"+squareTxt)
	metrics := filepath.Join(dir, "tourbench.prom")

	a, out, errOut := testApp()
	err := execute(a, "run",
		"--dataset", path,
		"--algorithms", "hybrid,two_opt,nearest_neighbor",
		"--seed", "3",
		"--metrics-out", metrics,
	)
	require.NoError(t, err, errOut.String())

	report := out.String()
	assert.Contains(t, report, "Dataset square.txt loaded: 4 points.")
	assert.Contains(t, report, "Hybrid Algorithm")
	assert.Contains(t, report, "2-opt Algorithm")
	assert.Contains(t, report, "Nearest Neighbor")
	assert.NotContains(t, report, "Genetic Algorithm")
	assert.Contains(t, report, "4.000000")
	assert.Contains(t, report, "Best Method by Total Distance:")
	assert.Contains(t, report, "Best Method by Execution Time:")
	assert.Contains(t, report, "Overall Best Method:")
	assert.Contains(t, report, "combined rank")

	// The malformed header line was reported on the log stream.
	assert.Contains(t, errOut.String(), "skipping invalid record")

	data, err := os.ReadFile(metrics)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tourbench_runs_total{algorithm="hybrid"} 1`)
}

func TestRun_EmptyDataset(t *testing.T) {
	path := writeDataset(t, t.TempDir(), "empty.txt", "x y\n\n")

	a, out, _ := testApp()
	require.NoError(t, execute(a, "run", "--dataset", path))
	assert.Contains(t, out.String(), "The selected dataset is empty or contains no valid data points.")
	assert.NotContains(t, out.String(), "Overall Best Method")
}

func TestRun_NeedsDatasetWhenNotInteractive(t *testing.T) {
	a, _, errOut := testApp()
	err := execute(a, "run", "--dir", t.TempDir())
	require.ErrorIs(t, err, errNeedDataset)
	assert.Contains(t, errOut.String(), "Error:")
}

func TestRun_PicksDataset(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "square.txt", squareTxt)

	a, out, _ := testApp()
	a.interactive = func() bool { return true }
	var offered []string
	a.pick = func(names []string) (string, error) {
		offered = names
		return names[0], nil
	}

	require.NoError(t, execute(a, "run", "--dir", dir, "--algorithms", "nearest_neighbor"))
	assert.Equal(t, []string{"square.txt"}, offered)
	assert.Contains(t, out.String(), "Dataset square.txt loaded: 4 points.")

	a, _, _ = testApp()
	a.interactive = func() bool { return true }
	err := execute(a, "run", "--dir", t.TempDir())
	require.ErrorIs(t, err, errNoDatasets)
}

func TestRun_InvalidOverrides(t *testing.T) {
	path := writeDataset(t, t.TempDir(), "square.txt", squareTxt)

	a, _, _ := testApp()
	err := execute(a, "run", "--dataset", path, "--algorithms", "dijkstra")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	a, _, _ = testApp()
	err = execute(a, "run", "--dataset", path, "--runs", "0")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigCmd(t *testing.T) {
	a, out, _ := testApp()
	require.NoError(t, execute(a, "config", "--seed", "9"))

	cfg, err := config.Parse(out.Bytes())
	require.NoError(t, err)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 100, cfg.Genetic.PopulationSize)
}

func TestRenderReport_NoResults(t *testing.T) {
	var buf bytes.Buffer
	renderReport(&buf, &bench.Session{
		Results:  &bench.Results{},
		Failures: []bench.Failure{{Name: bench.Genetic, Run: 0, Err: errors.New("boom")}},
	})
	assert.Contains(t, buf.String(), "Genetic Algorithm run 0 failed: boom")
	assert.Contains(t, buf.String(), "No algorithm produced a result.")
}
