// SPDX-License-Identifier: MIT
// Package: topology
//
// methods.go — degree, self-loop augmentation, target grouping, symmetrisation.
//
// Determinism:
//   • Every helper emits output in a fixed order derived only from input order
//     and node indices; no map iteration reaches the output.

package topology

import (
	"fmt"
	"slices"
)

// Method tags used in error wrappers.
const (
	methodInDegree      = "InDegree"
	methodAddSelfLoops  = "AddRemainingSelfLoops"
	methodGroupByTarget = "GroupByTarget"
	methodUndirected    = "Undirected"
)

// checkWeights validates len(weights) against the edge list; nil means "all ones".
func checkWeights(ei EdgeIndex, weights []float64) error {
	if weights != nil && len(weights) != len(ei) {
		return fmt.Errorf("len(weights)=%d, edges=%d: %w", len(weights), len(ei), ErrWeightLength)
	}

	return nil
}

// weightAt returns weights[pos], or 1 when weights is nil.
func weightAt(weights []float64, pos int) float64 {
	if weights == nil {
		return 1
	}

	return weights[pos]
}

// InDegree returns deg[v] = Σ weights[e] over edges with Dst == v.
// A nil weight vector counts every edge as 1.
//
// Errors:
//   - ErrNoNodes, ErrNodeOutOfRange, ErrWeightLength.
//
// Complexity:
//   - Time O(E + n), Space O(n).
func InDegree(ei EdgeIndex, weights []float64, n int) ([]float64, error) {
	if err := ei.Validate(n); err != nil {
		return nil, topologyErrorf(methodInDegree, err)
	}
	if err := checkWeights(ei, weights); err != nil {
		return nil, topologyErrorf(methodInDegree, err)
	}

	deg := make([]float64, n)
	for pos, e := range ei {
		deg[e.Dst] += weightAt(weights, pos)
	}

	return deg, nil
}

// AddRemainingSelfLoops returns an edge list holding exactly one self-loop per node.
//
// Implementation:
//   - Stage 1: copy every non-loop edge (and its weight) in input order.
//   - Stage 2: append loops 0→0 … (n-1)→(n-1) in node order. A node that already
//     carried a loop keeps that loop's weight (last occurrence wins, duplicates
//     collapse); every other node receives fill.
//
// Behavior highlights:
//   - A nil weight vector yields a nil output weight vector when fill == 1, so
//     the "all ones" meaning is preserved; otherwise weights are materialized.
//
// Errors:
//   - ErrNoNodes, ErrNodeOutOfRange, ErrWeightLength.
//
// Complexity:
//   - Time O(E + n), Space O(E + n).
func AddRemainingSelfLoops(ei EdgeIndex, weights []float64, fill float64, n int) (EdgeIndex, []float64, error) {
	if err := ei.Validate(n); err != nil {
		return nil, nil, topologyErrorf(methodAddSelfLoops, err)
	}
	if err := checkWeights(ei, weights); err != nil {
		return nil, nil, topologyErrorf(methodAddSelfLoops, err)
	}

	loopWeight := make([]float64, n)
	for v := range loopWeight {
		loopWeight[v] = fill
	}

	keepNil := weights == nil && fill == 1
	outEdges := make(EdgeIndex, 0, len(ei)+n)
	var outWeights []float64
	if !keepNil {
		outWeights = make([]float64, 0, len(ei)+n)
	}

	for pos, e := range ei {
		if e.IsLoop() {
			loopWeight[e.Src] = weightAt(weights, pos)
			continue
		}
		outEdges = append(outEdges, e)
		if !keepNil {
			outWeights = append(outWeights, weightAt(weights, pos))
		}
	}
	for v := 0; v < n; v++ {
		outEdges = append(outEdges, Edge{Src: v, Dst: v})
		if !keepNil {
			outWeights = append(outWeights, loopWeight[v])
		}
	}

	return outEdges, outWeights, nil
}

// GroupByTarget builds the Incoming CSR view of ei over n nodes.
//
// Implementation:
//   - Stage 1: count incoming edges per target.
//   - Stage 2: prefix-sum counts into Offsets.
//   - Stage 3: scatter edge positions in ascending position order.
//
// Errors:
//   - ErrNoNodes, ErrNodeOutOfRange.
//
// Complexity:
//   - Time O(E + n), Space O(E + n).
func GroupByTarget(ei EdgeIndex, n int) (*Incoming, error) {
	if err := ei.Validate(n); err != nil {
		return nil, topologyErrorf(methodGroupByTarget, err)
	}

	offsets := make([]int, n+1)
	for _, e := range ei {
		offsets[e.Dst+1]++
	}
	for v := 0; v < n; v++ {
		offsets[v+1] += offsets[v]
	}

	cursor := make([]int, n)
	copy(cursor, offsets[:n])
	positions := make([]int, len(ei))
	for pos, e := range ei {
		positions[cursor[e.Dst]] = pos
		cursor[e.Dst]++
	}

	return &Incoming{Offsets: offsets, Positions: positions}, nil
}

// Undirected returns the union of ei and its reversal, with duplicates removed
// and edges sorted by (Src, Dst). Self-loops appear once.
//
// Errors:
//   - ErrNoNodes, ErrNodeOutOfRange.
//
// Complexity:
//   - Time O(E log E), Space O(E).
func Undirected(ei EdgeIndex, n int) (EdgeIndex, error) {
	if err := ei.Validate(n); err != nil {
		return nil, topologyErrorf(methodUndirected, err)
	}

	out := make(EdgeIndex, 0, 2*len(ei))
	for _, e := range ei {
		out = append(out, e, Edge{Src: e.Dst, Dst: e.Src})
	}
	slices.SortFunc(out, func(a, b Edge) int {
		if a.Src != b.Src {
			return a.Src - b.Src
		}
		return a.Dst - b.Dst
	})

	return slices.Compact(out), nil
}
