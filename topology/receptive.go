// SPDX-License-Identifier: MIT
// Package: topology
//
// receptive.go — depth-limited breadth-first search against edge direction.
//
// A K-hop propagation computes row v from the features of nodes that reach v
// along at most K directed edges. UpstreamDistances finds them by walking
// incoming edges from v, level by level.

package topology

import "fmt"

const methodUpstream = "UpstreamDistances"

// Unreached marks nodes beyond the search depth in UpstreamDistances.
const Unreached = -1

// UpstreamDistances returns, for every node u, the length of the shortest
// directed path u→…→target, or Unreached when it exceeds maxDepth (or no path
// exists). target itself has distance 0. A negative maxDepth means unlimited.
//
// Implementation:
//   - Stage 1: group edges by target (GroupByTarget).
//   - Stage 2: FIFO queue seeded with target; pop v, enqueue unseen sources of
//     v's incoming edges at depth+1, stopping at maxDepth.
//
// Errors:
//   - ErrNoNodes, ErrNodeOutOfRange (edges or target).
//
// Complexity:
//   - Time O(E + n), Space O(E + n).
func UpstreamDistances(ei EdgeIndex, n, target, maxDepth int) ([]int, error) {
	in, err := GroupByTarget(ei, n)
	if err != nil {
		return nil, topologyErrorf(methodUpstream, err)
	}
	if target < 0 || target >= n {
		return nil, topologyErrorf(methodUpstream, fmt.Errorf("target %d with n=%d: %w", target, n, ErrNodeOutOfRange))
	}

	dist := make([]int, n)
	for v := range dist {
		dist[v] = Unreached
	}
	dist[target] = 0
	queue := make([]int, 0, n)
	queue = append(queue, target)

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if maxDepth >= 0 && dist[v] == maxDepth {
			continue
		}
		for _, pos := range in.Edges(v) {
			u := ei[pos].Src
			if dist[u] != Unreached {
				continue
			}
			dist[u] = dist[v] + 1
			queue = append(queue, u)
		}
	}

	return dist, nil
}
