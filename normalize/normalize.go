// SPDX-License-Identifier: MIT
// Package: normalize
//
// normalize.go — the two weight functions and the Normalize entry point.
//
// Determinism:
//   • Output order follows topology.AddRemainingSelfLoops (or the input order
//     when no loops are added); weights are computed edge by edge.

package normalize

import (
	"fmt"
	"math"

	"github.com/katalvlaran/kprop/topology"
)

// loopFill is the weight given to self-loops added by the schemes.
const loopFill = 1.0

// Normalize computes the edge list and aligned weights for scheme a.
//
// Implementation:
//   - Stage 1: reject unknown variants (ErrUnknownAggregator).
//   - Stage 2: dispatch to the variant's weight function.
//
// Errors:
//   - ErrUnknownAggregator; topology.ErrNoNodes / topology.ErrNodeOutOfRange.
//
// Complexity:
//   - Time O(E + n), Space O(E + n).
func (a Aggregator) Normalize(ei topology.EdgeIndex, n int, addSelfLoops bool) (*Normalized, error) {
	sc, ok := schemes[a]
	if !ok {
		return nil, fmt.Errorf("Normalize(%v): %w", a, ErrUnknownAggregator)
	}
	out, err := sc.weigh(ei, n, addSelfLoops)
	if err != nil {
		return nil, fmt.Errorf("Normalize(%s): %w", sc.name, err)
	}

	return out, nil
}

// symmetricWeights implements the GCN normalization D^{-1/2} (A [+ I]) D^{-1/2}.
//
// Implementation:
//   - Stage 1: optionally add remaining self-loops (fill 1).
//   - Stage 2: deg[v] = in-degree of v (edge weights all 1).
//   - Stage 3: dinv[v] = deg[v]^{-1/2}, with +Inf (deg 0) replaced by 0.
//   - Stage 4: w(e) = dinv[src]·dinv[dst].
func symmetricWeights(ei topology.EdgeIndex, n int, addSelfLoops bool) (*Normalized, error) {
	edges, err := withLoops(ei, n, addSelfLoops)
	if err != nil {
		return nil, err
	}
	deg, err := topology.InDegree(edges, nil, n)
	if err != nil {
		return nil, err
	}

	dinv := make([]float64, n)
	for v, d := range deg {
		dinv[v] = math.Pow(d, -0.5)
		if math.IsInf(dinv[v], 1) {
			dinv[v] = 0
		}
	}

	weights := make([]float64, len(edges))
	for pos, e := range edges {
		weights[pos] = dinv[e.Src] * dinv[e.Dst]
	}

	return &Normalized{Edges: edges, Weights: weights}, nil
}

// uniformWeights gives every edge (and every added loop) weight 1.
func uniformWeights(ei topology.EdgeIndex, n int, addSelfLoops bool) (*Normalized, error) {
	edges, err := withLoops(ei, n, addSelfLoops)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, len(edges))
	for pos := range weights {
		weights[pos] = 1
	}

	return &Normalized{Edges: edges, Weights: weights}, nil
}

// withLoops validates ei and returns it (copied) with remaining self-loops when requested.
func withLoops(ei topology.EdgeIndex, n int, addSelfLoops bool) (topology.EdgeIndex, error) {
	if !addSelfLoops {
		if err := ei.Validate(n); err != nil {
			return nil, err
		}
		return ei.Clone(), nil
	}
	edges, _, err := topology.AddRemainingSelfLoops(ei, nil, loopFill, n)

	return edges, err
}
