// SPDX-License-Identifier: MIT
// Package gnn: functional options.
//
// Contract:
//   - Options apply left-to-right over defaultConfig().
//   - Range checks happen in New; constructors panic only on nil rng or workers < 1.

package gnn

import (
	"math/rand/v2"
	"runtime"

	"github.com/katalvlaran/kprop/kprop"
	"github.com/katalvlaran/kprop/normalize"
	"github.com/rs/zerolog"
)

// DefaultDropout is the dropout rate when WithDropout is not given.
const DefaultDropout = 0.0

type config struct {
	hops    int
	decay   float64
	agg     normalize.Aggregator
	dropout float64
	rng     *rand.Rand
	log     zerolog.Logger
	workers int
}

// Option configures a Classifier.
type Option func(*config)

// WithHops sets K for the propagation stage (the head always uses one hop).
func WithHops(k int) Option { return func(c *config) { c.hops = k } }

// WithDecay sets p for both stages.
func WithDecay(p float64) Option { return func(c *config) { c.decay = p } }

// WithAggregator selects the normalization scheme for both stages.
func WithAggregator(a normalize.Aggregator) Option { return func(c *config) { c.agg = a } }

// WithDropout sets the dropout rate applied between the stages in Train mode.
func WithDropout(rate float64) Option { return func(c *config) { c.dropout = rate } }

// WithRand draws parameters and dropout masks from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gnn: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithSeed draws parameters and dropout masks from a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewPCG(seed, seed)) }
}

// WithLogger attaches a structured logger to the classifier and both stages.
func WithLogger(l zerolog.Logger) Option { return func(c *config) { c.log = l } }

// WithParallelism bounds aggregation goroutines in both stages. Panics on n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("gnn: WithParallelism(n<1)")
	}
	return func(c *config) { c.workers = n }
}

func defaultConfig() config {
	return config{
		hops:    kprop.DefaultHops,
		decay:   kprop.DefaultDecay,
		agg:     kprop.DefaultAggregator,
		dropout: DefaultDropout,
		log:     zerolog.Nop(),
		workers: runtime.GOMAXPROCS(0),
	}
}

func gatherConfig(opts ...Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(kprop.DefaultSeed, kprop.DefaultSeed))
	}

	return cfg
}
