// SPDX-License-Identifier: MIT

// Package config loads and validates the YAML run configuration of tourbench.
//
// Load starts from Default and overlays the file, so a partial file only
// changes the keys it names. Validation uses struct tags and reports every
// violated field at once, wrapped in ErrInvalidConfig.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tourbench/bench"
	"github.com/katalvlaran/tourbench/tsp"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the full run configuration.
type Config struct {
	// Seed is the session seed every run derives its RNG stream from.
	Seed int64 `yaml:"seed"`

	// Runs repeats every algorithm this many times.
	Runs int `yaml:"runs" validate:"min=1,max=10000"`

	// Algorithms run in this order.
	Algorithms []string `yaml:"algorithms" validate:"min=1,dive,oneof=genetic hybrid annealing two_opt nearest_neighbor"`

	// DatasetDir holds the .txt and .xlsx point sets offered by the picker.
	DatasetDir string `yaml:"dataset_dir" validate:"required"`

	Genetic   GeneticConfig   `yaml:"genetic"`
	Annealing AnnealingConfig `yaml:"annealing"`
	TwoOpt    TwoOptConfig    `yaml:"two_opt"`
	Log       LogConfig       `yaml:"log"`
}

// GeneticConfig tunes the genetic optimizer.
type GeneticConfig struct {
	PopulationSize int     `yaml:"population_size" validate:"min=1"`
	EliteSize      int     `yaml:"elite_size" validate:"min=0,ltfield=PopulationSize"`
	MutationRate   float64 `yaml:"mutation_rate" validate:"gte=0,lte=1"`
	Generations    int     `yaml:"generations" validate:"min=0"`
}

// AnnealingConfig tunes simulated annealing.
type AnnealingConfig struct {
	InitialTemp float64 `yaml:"initial_temp" validate:"gt=0"`
	Alpha       float64 `yaml:"alpha" validate:"gt=0,lt=1"`
	MinTemp     float64 `yaml:"min_temp" validate:"gt=0"`
	MaxIter     int     `yaml:"max_iter" validate:"min=0"`
}

// TwoOptConfig tunes 2-opt, standalone and as a post-pass.
type TwoOptConfig struct {
	Eps      float64 `yaml:"eps" validate:"gte=0"`
	MaxMoves int     `yaml:"max_moves" validate:"min=0"`
}

// LogConfig selects the log level and format.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `yaml:"json"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Seed: 1,
		Runs: 1,
		Algorithms: []string{
			bench.Genetic, bench.Hybrid, bench.Annealing, bench.TwoOpt, bench.NearestNeighbor,
		},
		DatasetDir: "datasets",
		Genetic: GeneticConfig{
			PopulationSize: 100,
			EliteSize:      10,
			MutationRate:   0.01,
			Generations:    1000,
		},
		Annealing: AnnealingConfig{
			InitialTemp: 10000,
			Alpha:       0.995,
			MinTemp:     1e-5,
			MaxIter:     1000,
		},
		TwoOpt: TwoOptConfig{Eps: tsp.DefaultEps},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the YAML file at path over Default and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Parse(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal encodes cfg as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field against its tags.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Params converts the solver sections to bench.Params.
func (c Config) Params() bench.Params {
	two := tsp.TwoOptOptions{Eps: c.TwoOpt.Eps, MaxMoves: c.TwoOpt.MaxMoves}

	return bench.Params{
		Genetic: tsp.GeneticOptions{
			PopulationSize: c.Genetic.PopulationSize,
			EliteSize:      c.Genetic.EliteSize,
			MutationRate:   c.Genetic.MutationRate,
			Generations:    c.Genetic.Generations,
			TwoOpt:         two,
		},
		Annealing: tsp.AnnealOptions{
			InitialTemp: c.Annealing.InitialTemp,
			Alpha:       c.Annealing.Alpha,
			MinTemp:     c.Annealing.MinTemp,
			MaxIter:     c.Annealing.MaxIter,
		},
		TwoOpt: two,
	}
}
