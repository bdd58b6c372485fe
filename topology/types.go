// SPDX-License-Identifier: MIT
// Package: topology
//
// types.go — Edge, EdgeIndex and Incoming (CSR by target).
//
// Contract:
//   • EdgeIndex is an ordered list; positions align with edge-weight vectors.
//   • Edges are directed Src→Dst; information flows from Src into Dst.
//   • Values are never mutated in place by this package; helpers return copies.

package topology

import "fmt"

// Edge is one directed connection: features of Src flow into Dst.
type Edge struct {
	Src int // source node index
	Dst int // target node index
}

// IsLoop reports whether the edge is a self-loop.
func (e Edge) IsLoop() bool { return e.Src == e.Dst }

// String renders "src→dst" for diagnostics.
func (e Edge) String() string { return fmt.Sprintf("%d→%d", e.Src, e.Dst) }

// EdgeIndex is an ordered, possibly repetitive, list of directed edges.
type EdgeIndex []Edge

// FromPairs builds an EdgeIndex from parallel source/target slices.
//
// Errors:
//   - ErrWeightLength when len(src) != len(dst) (the two slices must align like weights do).
func FromPairs(src, dst []int) (EdgeIndex, error) {
	if len(src) != len(dst) {
		return nil, topologyErrorf("FromPairs", fmt.Errorf("len(src)=%d len(dst)=%d: %w", len(src), len(dst), ErrWeightLength))
	}
	out := make(EdgeIndex, len(src))
	for i := range src {
		out[i] = Edge{Src: src[i], Dst: dst[i]}
	}

	return out, nil
}

// Clone returns an independent copy.
func (ei EdgeIndex) Clone() EdgeIndex {
	if ei == nil {
		return nil
	}
	out := make(EdgeIndex, len(ei))
	copy(out, ei)

	return out
}

// Validate checks n > 0 and every endpoint within [0, n).
//
// Errors:
//   - ErrNoNodes, ErrNodeOutOfRange (wrapped with the offending edge position).
//
// Complexity:
//   - Time O(E), Space O(1).
func (ei EdgeIndex) Validate(n int) error {
	if n <= 0 {
		return topologyErrorf("Validate", ErrNoNodes)
	}
	for pos, e := range ei {
		if e.Src < 0 || e.Src >= n || e.Dst < 0 || e.Dst >= n {
			return topologyErrorf("Validate", fmt.Errorf("edge %d (%v) with n=%d: %w", pos, e, n, ErrNodeOutOfRange))
		}
	}

	return nil
}

// SelfLoopCounts returns, per node, how many self-loops the list holds.
// Assumes a validated index (see Validate).
func (ei EdgeIndex) SelfLoopCounts(n int) []int {
	counts := make([]int, n)
	for _, e := range ei {
		if e.IsLoop() {
			counts[e.Src]++
		}
	}

	return counts
}

// Incoming is a CSR view of an EdgeIndex grouped by target node.
//
// For target v, Positions[Offsets[v]:Offsets[v+1]] lists the positions (into
// the original EdgeIndex and its weight vector) of every edge with Dst == v,
// in ascending position order. Summation over that range is therefore
// deterministic and independent of how target rows are scheduled.
type Incoming struct {
	Offsets   []int // len n+1, Offsets[0]=0, Offsets[n]=E
	Positions []int // len E
}

// Count returns the number of incoming edges of node v.
func (in *Incoming) Count(v int) int { return in.Offsets[v+1] - in.Offsets[v] }

// Edges returns the edge positions pointing into node v (shared, do not mutate).
func (in *Incoming) Edges(v int) []int { return in.Positions[in.Offsets[v]:in.Offsets[v+1]] }
