// SPDX-License-Identifier: MIT
// Package kprop: functional options.
//
// Contract:
//   - Options are applied left-to-right over defaultConfig().
//   - Option constructors panic only on programmer errors (nil rng, workers < 1).
//   - Semantic range checks (K, p, aggregator) happen in New and return sentinels,
//     so configuration errors coming from files surface as errors, not panics.

package kprop

import (
	"math/rand/v2"
	"runtime"

	"github.com/katalvlaran/kprop/normalize"
	"github.com/rs/zerolog"
)

// Defaults (single source of truth).
const (
	// DefaultHops is the hop count K when WithHops is not given.
	DefaultHops = 1

	// DefaultDecay is the decay p when WithDecay is not given.
	DefaultDecay = 0.0

	// DefaultAggregator is the normalization scheme when WithAggregator is not given.
	DefaultAggregator = normalize.Symmetric

	// DefaultSeed seeds the parameter initializer when neither WithSeed nor WithRand is given.
	DefaultSeed uint64 = 12345

	// parallelMinRows is the node count below which aggregation stays on one goroutine.
	parallelMinRows = 1024
)

// config is the resolved, immutable-after-New configuration of an Operator.
type config struct {
	hops    int
	decay   float64
	agg     normalize.Aggregator
	cache   bool
	rng     *rand.Rand
	log     zerolog.Logger
	workers int
}

// Option mutates the operator configuration before construction.
type Option func(*config)

// WithHops sets the hop count K (validated by New: K >= 1).
func WithHops(k int) Option {
	return func(c *config) { c.hops = k }
}

// WithDecay sets the decay parameter p (validated by New: finite, p >= 0).
func WithDecay(p float64) Option {
	return func(c *config) { c.decay = p }
}

// WithAggregator selects the normalization scheme (validated by New).
func WithAggregator(a normalize.Aggregator) Option {
	return func(c *config) { c.agg = a }
}

// WithCache enables the keep-result cache of the diffused features.
func WithCache() Option {
	return func(c *config) { c.cache = true }
}

// WithRand uses r for parameter initialization. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("kprop: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed initializes parameters from a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithLogger attaches a structured logger (default: zerolog.Nop()).
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.log = l }
}

// WithParallelism bounds the goroutines used by aggregation. Panics on n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("kprop: WithParallelism(n<1)")
	}
	return func(c *config) { c.workers = n }
}

// defaultConfig returns the zero-option configuration.
func defaultConfig() config {
	return config{
		hops:    DefaultHops,
		decay:   DefaultDecay,
		agg:     DefaultAggregator,
		log:     zerolog.Nop(),
		workers: runtime.GOMAXPROCS(0),
	}
}

// gatherConfig applies opts and fills the RNG default last so WithSeed/WithRand win.
func gatherConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(DefaultSeed, DefaultSeed))
	}

	return cfg
}
