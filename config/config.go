// SPDX-License-Identifier: MIT
// Package config loads classifier and training settings from YAML.
//
// Contract:
//   - Default() returns the reference hyper-parameters; a file only overrides
//     the keys it names.
//   - Validate reports every range error found, joined, so one load shows all
//     problems at once.
//   - ClassifierOptions converts a validated Config into gnn options.

package config

import (
	"bytes"
	"errors"
	"io"
	"fmt"
	"os"

	"github.com/katalvlaran/kprop/gnn"
	"github.com/katalvlaran/kprop/kprop"
	"github.com/katalvlaran/kprop/normalize"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its accepted range.
var ErrInvalid = errors.New("config: invalid value")

// Reference hyper-parameters.
const (
	DefaultHidden       = 16
	DefaultLearningRate = 0.001
	DefaultWeightDecay  = 0.0
	DefaultMaxEpochs    = 1000
	DefaultPatience     = 200
	DefaultLogLevel     = "info"
)

// Model describes the classifier architecture.
type Model struct {
	// Hidden is the width of the propagated representation.
	Hidden int `yaml:"hidden"`

	// Hops is K of the propagation stage.
	Hops int `yaml:"k"`

	// Decay is p, shared by both stages.
	Decay float64 `yaml:"p"`

	// Aggregator is "gcn"/"symmetric" or "mean"/"uniform".
	Aggregator normalize.Aggregator `yaml:"aggregator"`

	// Dropout is applied between the stages during training.
	Dropout float64 `yaml:"dropout"`
}

// Training carries optimizer settings for the external training loop.
type Training struct {
	LearningRate float64 `yaml:"learning_rate"`
	WeightDecay  float64 `yaml:"weight_decay"`
	MaxEpochs    int     `yaml:"max_epochs"`
	Patience     int     `yaml:"patience"`
}

// Config is the root document.
type Config struct {
	Model    Model    `yaml:"model"`
	Training Training `yaml:"training"`

	// Seed feeds parameter initialization and dropout.
	Seed uint64 `yaml:"seed"`

	// Parallelism bounds aggregation goroutines; 0 keeps the runtime default.
	Parallelism int `yaml:"parallelism,omitempty"`

	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the reference configuration.
func Default() *Config {
	return &Config{
		Model: Model{
			Hidden:     DefaultHidden,
			Hops:       kprop.DefaultHops,
			Decay:      kprop.DefaultDecay,
			Aggregator: kprop.DefaultAggregator,
			Dropout:    gnn.DefaultDropout,
		},
		Training: Training{
			LearningRate: DefaultLearningRate,
			WeightDecay:  DefaultWeightDecay,
			MaxEpochs:    DefaultMaxEpochs,
			Patience:     DefaultPatience,
		},
		Seed:     kprop.DefaultSeed,
		LogLevel: DefaultLogLevel,
	}
}

// Parse decodes YAML over Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks every field and returns all violations joined.
func (c *Config) Validate() error {
	var errs []error
	bad := func(field string, v any) {
		errs = append(errs, fmt.Errorf("%s=%v: %w", field, v, ErrInvalid))
	}

	if c.Model.Hidden < 1 {
		bad("model.hidden", c.Model.Hidden)
	}
	if c.Model.Hops < 1 {
		bad("model.k", c.Model.Hops)
	}
	if !(c.Model.Decay >= 0) {
		bad("model.p", c.Model.Decay)
	}
	if !c.Model.Aggregator.Valid() {
		bad("model.aggregator", c.Model.Aggregator)
	}
	if !(c.Model.Dropout >= 0 && c.Model.Dropout <= 1) {
		bad("model.dropout", c.Model.Dropout)
	}
	if !(c.Training.LearningRate > 0) {
		bad("training.learning_rate", c.Training.LearningRate)
	}
	if !(c.Training.WeightDecay >= 0) {
		bad("training.weight_decay", c.Training.WeightDecay)
	}
	if c.Training.MaxEpochs < 1 {
		bad("training.max_epochs", c.Training.MaxEpochs)
	}
	if c.Training.Patience < 0 {
		bad("training.patience", c.Training.Patience)
	}
	if c.Parallelism < 0 {
		bad("parallelism", c.Parallelism)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		bad("log_level", c.LogLevel)
	}

	return errors.Join(errs...)
}

// Logger returns a logger at the configured level built on base.
func (c *Config) Logger(base zerolog.Logger) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return base.Level(lvl)
}

// ClassifierOptions converts the model section into gnn options.
// log is attached to the classifier and both stages.
func (c *Config) ClassifierOptions(log zerolog.Logger) []gnn.Option {
	opts := []gnn.Option{
		gnn.WithHops(c.Model.Hops),
		gnn.WithDecay(c.Model.Decay),
		gnn.WithAggregator(c.Model.Aggregator),
		gnn.WithDropout(c.Model.Dropout),
		gnn.WithSeed(c.Seed),
		gnn.WithLogger(c.Logger(log)),
	}
	if c.Parallelism > 0 {
		opts = append(opts, gnn.WithParallelism(c.Parallelism))
	}

	return opts
}

// NewClassifier builds a gnn.Classifier for inDim features and the given class count.
func (c *Config) NewClassifier(inDim, classes int, log zerolog.Logger) (*gnn.Classifier, error) {
	return gnn.New(inDim, c.Model.Hidden, classes, c.ClassifierOptions(log)...)
}
