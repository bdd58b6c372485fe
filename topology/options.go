// SPDX-License-Identifier: MIT
// Package: topology
//
// options.go — functional options for the fixture constructors.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package topology

import "math/rand/v2"

// builderConfig is the resolved option set shared by every constructor.
type builderConfig struct {
	directed bool       // emit only u→v (true) or both u→v and v→u (false)
	rng      *rand.Rand // required by RandomSparse when 0<p<1
}

// BuilderOption customizes a constructor before edges are emitted.
type BuilderOption func(*builderConfig)

// WithDirected emits each structural edge once (u→v). By default constructors
// are undirected and emit u→v immediately followed by v→u.
func WithDirected() BuilderOption {
	return func(c *builderConfig) { c.directed = true }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("topology: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new PCG-backed *rand.Rand with the given seed (deterministic).
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// newBuilderConfig applies opts left-to-right over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// emit appends u→v (and v→u unless directed) to ei.
func (c builderConfig) emit(ei EdgeIndex, u, v int) EdgeIndex {
	ei = append(ei, Edge{Src: u, Dst: v})
	if !c.directed && u != v {
		ei = append(ei, Edge{Src: v, Dst: u})
	}

	return ei
}
