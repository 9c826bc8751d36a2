// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/bench"
	"github.com/katalvlaran/tourbench/dataset"
)

var (
	errNoDatasets    = errors.New("no datasets found")
	errNeedDataset   = errors.New("--dataset is required when not running in a terminal")
	errEmptyPointSet = errors.New("empty dataset")
)

type runFlags struct {
	dataset    string
	metricsOut string
	trace      bool
}

func (a *app) runCmd() *cobra.Command {
	var rf runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every configured heuristic on one dataset and rank them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.run(cmd, rf); err != nil && !errors.Is(err, errEmptyPointSet) {
				return a.fail(err)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&rf.dataset, "dataset", "", "dataset file (.txt or .xlsx); prompts when omitted in a terminal")
	f.StringVar(&rf.metricsOut, "metrics-out", "", "write Prometheus metrics to this file")
	f.BoolVar(&rf.trace, "trace", false, "print OpenTelemetry spans to stderr")

	return cmd
}

func (a *app) run(cmd *cobra.Command, rf runFlags) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := a.logger(cfg)
	if err != nil {
		return err
	}

	path, err := a.resolveDataset(cfg.DatasetDir, rf.dataset)
	if err != nil {
		return err
	}
	points, err := dataset.Load(path, logger)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Fprintln(a.out, "The selected dataset is empty or contains no valid data points.")
		return errEmptyPointSet
	}
	fmt.Fprintf(a.out, "Dataset %s loaded: %d points.\n", filepath.Base(path), len(points))

	ctx := cmd.Context()
	if rf.trace {
		shutdown, err := setupTracing(ctx, a.errOut)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(ctx) }()
	}

	algos, err := bench.Select(bench.Algorithms(cfg.Params()), cfg.Algorithms)
	if err != nil {
		return err
	}
	runner := bench.Runner{
		Algorithms: algos,
		Runs:       cfg.Runs,
		Seed:       cfg.Seed,
		Logger:     logger,
	}
	if rf.metricsOut != "" {
		runner.Metrics = bench.NewMetrics()
	}

	session, err := runner.Run(ctx, points)
	if err != nil {
		return err
	}
	renderReport(a.out, session)

	if rf.metricsOut != "" {
		if err = runner.Metrics.WriteTextfile(rf.metricsOut); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}

// resolveDataset returns the explicit path, or asks the user to choose one of
// the datasets in dir.
func (a *app) resolveDataset(dir, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if !a.interactive() {
		return "", errNeedDataset
	}
	names, err := dataset.List(dir)
	if err != nil {
		return "", err
	}
	if len(names) == 0 {
		return "", fmt.Errorf("%w in %s", errNoDatasets, dir)
	}
	choice, err := a.pick(names)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, choice), nil
}
