// SPDX-License-Identifier: MIT
// Package gnn: the two-stage classifier.

package gnn

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/kprop/kprop"
	"github.com/katalvlaran/kprop/matrix"
	"github.com/katalvlaran/kprop/topology"
	"github.com/rs/zerolog"
)

// Mode selects training or inference behaviour of Forward.
type Mode int

const (
	// Eval disables dropout; Forward is deterministic.
	Eval Mode = iota
	// Train enables dropout between the stages.
	Train
)

// String returns "eval" or "train".
func (m Mode) String() string {
	switch m {
	case Eval:
		return "eval"
	case Train:
		return "train"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Classifier is a two-stage KProp network producing per-node log-probabilities.
type Classifier struct {
	prop    *kprop.Operator // K hops, cached, in → hidden
	head    *kprop.Operator // 1 hop, uncached, hidden → classes
	dropout float64
	rng     *rand.Rand
	log     zerolog.Logger
}

// New builds a classifier mapping inDim features to classes log-probabilities
// through a hiddenDim representation.
//
// Both stages share the aggregator and decay; parameters are drawn from the
// configured random source, propagation stage first.
//
// Errors:
//   - ErrBadDropout; kprop.ErrBadDimension, kprop.ErrBadHops, kprop.ErrBadDecay,
//     normalize.ErrUnknownAggregator from the stages.
func New(inDim, hiddenDim, classes int, opts ...Option) (*Classifier, error) {
	cfg := gatherConfig(opts...)
	if math.IsNaN(cfg.dropout) || cfg.dropout < 0 || cfg.dropout > 1 {
		return nil, gnnErrorf(stageNew, fmt.Errorf("rate=%g: %w", cfg.dropout, ErrBadDropout))
	}

	common := []kprop.Option{
		kprop.WithDecay(cfg.decay),
		kprop.WithAggregator(cfg.agg),
		kprop.WithRand(cfg.rng),
		kprop.WithLogger(cfg.log),
		kprop.WithParallelism(cfg.workers),
	}
	prop, err := kprop.New(inDim, hiddenDim, append(common, kprop.WithHops(cfg.hops), kprop.WithCache())...)
	if err != nil {
		return nil, gnnErrorf(stageNew, err)
	}
	head, err := kprop.New(hiddenDim, classes, append(common, kprop.WithHops(1))...)
	if err != nil {
		return nil, gnnErrorf(stageNew, err)
	}

	return &Classifier{prop: prop, head: head, dropout: cfg.dropout, rng: cfg.rng, log: cfg.log}, nil
}

// Propagation returns the first (K-hop, cached) stage.
func (c *Classifier) Propagation() *kprop.Operator { return c.prop }

// Head returns the second (one-hop) stage.
func (c *Classifier) Head() *kprop.Operator { return c.head }

// Dropout returns the configured dropout rate.
func (c *Classifier) Dropout() float64 { return c.dropout }

// Reset drops the cached diffusion of the propagation stage.
// Call it whenever the topology or input features change.
func (c *Classifier) Reset() { c.prop.Invalidate() }

// Forward computes N×classes log-probabilities.
//
// Implementation:
//   - Stage 1: H = SELU(prop(X)); the diffusion of X is cached after the first call.
//   - Stage 2: dropout on H when mode == Train.
//   - Stage 3: Y = LogSoftmax(head(H)), head always recomputed.
//
// Errors:
//   - ErrBadMode; any stage error aborts the pass, wrapped with the stage tag.
func (c *Classifier) Forward(x *matrix.Dense, edges topology.EdgeIndex, weights []float64, mode Mode) (*matrix.Dense, error) {
	if mode != Train && mode != Eval {
		return nil, gnnErrorf(stageForward, fmt.Errorf("%v: %w", mode, ErrBadMode))
	}
	start := time.Now()

	h, err := c.prop.Apply(x, edges, weights)
	if err != nil {
		return nil, gnnErrorf(stagePropagate, err)
	}
	seluInPlace(h)
	if mode == Train {
		dropoutInPlace(h, c.dropout, c.rng)
	}

	y, err := c.head.Apply(h, edges, weights)
	if err != nil {
		return nil, gnnErrorf(stageClassify, err)
	}
	if err = logSoftmaxInPlace(y); err != nil {
		return nil, gnnErrorf(stageLogSoftmax, err)
	}

	c.log.Debug().
		Stringer("mode", mode).
		Int("nodes", y.Rows()).
		Int("classes", y.Cols()).
		Dur("took", time.Since(start)).
		Msg("gnn: forward")

	return y, nil
}
