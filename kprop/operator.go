// SPDX-License-Identifier: MIT
// Package kprop: the Operator (diffusion + projection) and its cache.
//
// Concurrency:
//   - Apply/Diffuse are synchronous. On caching operators a mutex serializes the
//     check-and-populate sequence, so a second caller observes the stored result.
//   - Non-caching operators take no lock; their state is immutable after New
//     apart from the Linear parameters, which the caller must not update
//     concurrently with Apply.

package kprop

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/kprop/matrix"
	"github.com/katalvlaran/kprop/normalize"
	"github.com/katalvlaran/kprop/topology"
	"github.com/rs/zerolog"
)

// Operator is one KProp layer. Build it with New; the configuration is fixed afterwards.
type Operator struct {
	in, out int
	hops    int
	decay   float64
	agg     normalize.Aggregator
	caching bool
	workers int
	log     zerolog.Logger

	linear *Linear

	mu     sync.Mutex    // guards cached
	cached *matrix.Dense // diffused features from the first computing call (caching only)
}

// New builds an operator mapping in-wide features to out-wide outputs.
//
// Errors:
//   - ErrBadDimension (in or out < 1), ErrBadHops (K < 1), ErrBadDecay (p < 0 or
//     non-finite), normalize.ErrUnknownAggregator.
func New(in, out int, opts ...Option) (*Operator, error) {
	cfg := gatherConfig(opts...)

	if in < 1 || out < 1 {
		return nil, kpropErrorf(opNew, fmt.Errorf("in=%d out=%d: %w", in, out, ErrBadDimension))
	}
	if cfg.hops < 1 {
		return nil, kpropErrorf(opNew, fmt.Errorf("K=%d: %w", cfg.hops, ErrBadHops))
	}
	if math.IsNaN(cfg.decay) || math.IsInf(cfg.decay, 0) || cfg.decay < 0 {
		return nil, kpropErrorf(opNew, fmt.Errorf("p=%g: %w", cfg.decay, ErrBadDecay))
	}
	if !cfg.agg.Valid() {
		return nil, kpropErrorf(opNew, fmt.Errorf("%v: %w", cfg.agg, normalize.ErrUnknownAggregator))
	}

	lin, err := newLinear(in, out, cfg.rng)
	if err != nil {
		return nil, kpropErrorf(opNew, err)
	}

	return &Operator{
		in:      in,
		out:     out,
		hops:    cfg.hops,
		decay:   cfg.decay,
		agg:     cfg.agg,
		caching: cfg.cache,
		workers: cfg.workers,
		log:     cfg.log,
		linear:  lin,
	}, nil
}

// InDim returns the configured input width.
func (op *Operator) InDim() int { return op.in }

// OutDim returns the configured output width.
func (op *Operator) OutDim() int { return op.out }

// Hops returns K.
func (op *Operator) Hops() int { return op.hops }

// Decay returns p.
func (op *Operator) Decay() float64 { return op.decay }

// Aggregator returns the normalization scheme.
func (op *Operator) Aggregator() normalize.Aggregator { return op.agg }

// Caching reports whether the keep-result cache is enabled.
func (op *Operator) Caching() bool { return op.caching }

// Linear returns the trainable projection.
func (op *Operator) Linear() *Linear { return op.linear }

// Cached reports whether a diffused matrix is currently stored.
func (op *Operator) Cached() bool {
	op.mu.Lock()
	defer op.mu.Unlock()

	return op.cached != nil
}

// Invalidate drops the cached diffusion. The next call recomputes it from its
// own arguments. Required whenever topology or input features change.
func (op *Operator) Invalidate() {
	op.mu.Lock()
	op.cached = nil
	op.mu.Unlock()
}

// Apply diffuses x over edges and projects the result: Linear(Diffuse(x)).
//
// Arguments:
//   - x: N×InDim features (never mutated).
//   - edges: topology over nodes 0..N-1.
//   - weights: nil to derive weights from the aggregator; otherwise one weight
//     per edge, used verbatim (no self-loops, no degree normalization).
//
// On a cache hit the arguments are not inspected at all; see the package doc.
//
// Returns:
//   - N×OutDim matrix.
func (op *Operator) Apply(x *matrix.Dense, edges topology.EdgeIndex, weights []float64) (*matrix.Dense, error) {
	diffused, err := op.diffuse(x, edges, weights)
	if err != nil {
		return nil, kpropErrorf(opApply, err)
	}
	out, err := op.linear.Forward(diffused)
	if err != nil {
		return nil, kpropErrorf(opApply, err)
	}

	return out, nil
}

// Diffuse returns a copy of the diffused features (the cached ones on a hit)
// without applying the projection.
func (op *Operator) Diffuse(x *matrix.Dense, edges topology.EdgeIndex, weights []float64) (*matrix.Dense, error) {
	diffused, err := op.diffuse(x, edges, weights)
	if err != nil {
		return nil, kpropErrorf(opDiffuse, err)
	}

	return diffused.CloneDense(), nil
}

// diffuse resolves the cache, or computes and (when caching) stores the diffusion.
// The returned matrix may be the cached instance; callers must treat it as read-only.
func (op *Operator) diffuse(x *matrix.Dense, edges topology.EdgeIndex, weights []float64) (*matrix.Dense, error) {
	if !op.caching {
		return op.compute(x, edges, weights)
	}

	op.mu.Lock()
	defer op.mu.Unlock()

	if op.cached != nil {
		op.log.Debug().Int("hops", op.hops).Msg("kprop: diffusion cache hit")
		return op.cached, nil
	}
	diffused, err := op.compute(x, edges, weights)
	if err != nil {
		return nil, err
	}
	op.cached = diffused
	op.log.Debug().Int("rows", diffused.Rows()).Int("cols", diffused.Cols()).Msg("kprop: diffusion cached")

	return diffused, nil
}

// compute runs the K-step propagation with compounding decay.
//
// Implementation:
//   - Stage 1: validate x against InDim and edges/weights against N = x.Rows().
//   - Stage 2: resolve weights (normalize unless supplied).
//   - Stage 3: coeff = 1; K times: X = Aggregate(X)·coeff; coeff *= exp(−p).
func (op *Operator) compute(x *matrix.Dense, edges topology.EdgeIndex, weights []float64) (*matrix.Dense, error) {
	if err := matrix.ValidateCols(x, op.in); err != nil {
		return nil, err
	}
	n := x.Rows()
	start := time.Now()

	var (
		useEdges   topology.EdgeIndex
		useWeights []float64
	)
	if weights != nil {
		if err := edges.Validate(n); err != nil {
			return nil, err
		}
		if len(weights) != len(edges) {
			return nil, fmt.Errorf("len(weights)=%d, edges=%d: %w", len(weights), len(edges), topology.ErrWeightLength)
		}
		useEdges, useWeights = edges, weights
	} else {
		norm, err := op.agg.Normalize(edges, n, op.hops == 1)
		if err != nil {
			return nil, err
		}
		useEdges, useWeights = norm.Edges, norm.Weights
	}

	agg, err := newAggregation(useEdges, useWeights, n, op.agg.Mean())
	if err != nil {
		return nil, err
	}

	step := math.Exp(-op.decay)
	coeff := 1.0
	diffused := x
	for k := 0; k < op.hops; k++ {
		if diffused, err = agg.apply(diffused, coeff, op.workers); err != nil {
			return nil, err
		}
		coeff *= step
	}

	op.log.Debug().
		Str("aggregator", op.agg.String()).
		Int("nodes", n).
		Int("edges", len(useEdges)).
		Int("hops", op.hops).
		Float64("decay", op.decay).
		Dur("took", time.Since(start)).
		Msg("kprop: diffusion computed")

	return diffused, nil
}
