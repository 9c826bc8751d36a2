// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tourbench/config"
	"github.com/katalvlaran/tourbench/logging"
)

// app carries the command dependencies that tests replace.
type app struct {
	out    io.Writer
	errOut io.Writer

	// interactive reports whether a dataset may be picked with a prompt.
	interactive func() bool
	// pick asks the user to choose one of names.
	pick func(names []string) (string, error)

	flags flags
}

// flags holds the persistent command-line overrides.
type flags struct {
	configPath string
	datasetDir string
	seed       int64
	runs       int
	algorithms []string
	logLevel   string
	logJSON    bool
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:         out,
		errOut:      errOut,
		interactive: isInteractive,
		pick:        pickDataset,
	}
}

func (a *app) root() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tourbench",
		Short:         "Compare TSP heuristics on 2D point sets",
		Long:          "tourbench runs genetic, hybrid, simulated annealing, 2-opt and nearest-neighbour heuristics on one point set and ranks them by tour length and run time.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.flags.datasetDir, "dir", "", "dataset directory (overrides dataset_dir)")
	pf.Int64Var(&a.flags.seed, "seed", 0, "session seed (overrides seed)")
	pf.IntVar(&a.flags.runs, "runs", 0, "runs per algorithm (overrides runs)")
	pf.StringSliceVar(&a.flags.algorithms, "algorithms", nil, "comma-separated algorithms to run, in order")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "debug, info, warn or error")
	pf.BoolVar(&a.flags.logJSON, "log-json", false, "log JSON lines")

	cmd.AddCommand(a.runCmd(), a.listCmd(), a.configCmd())

	return cmd
}

// loadConfig reads the configuration file and applies the flags that were set.
func (a *app) loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("dir") {
		cfg.DatasetDir = a.flags.datasetDir
	}
	if f.Changed("seed") {
		cfg.Seed = a.flags.seed
	}
	if f.Changed("runs") {
		cfg.Runs = a.flags.runs
	}
	if f.Changed("algorithms") {
		cfg.Algorithms = a.flags.algorithms
	}
	if f.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if f.Changed("log-json") {
		cfg.Log.JSON = a.flags.logJSON
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func (a *app) logger(cfg config.Config) (*slog.Logger, error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	return logging.New(logging.Config{Level: level, JSON: cfg.Log.JSON, Output: a.errOut}), nil
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return a.fail(err)
			}
			data, err := cfg.Marshal()
			if err != nil {
				return a.fail(err)
			}
			_, err = a.out.Write(data)

			return err
		},
	}
}

// fail prints err on the error stream (errors are silenced in cobra) and returns it.
func (a *app) fail(err error) error {
	fmt.Fprintln(a.errOut, "Error:", err)

	return err
}
