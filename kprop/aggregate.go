// SPDX-License-Identifier: MIT
// Package kprop: the neighbourhood aggregation kernel.
//
// Determinism:
//   - Each target row sums its incoming messages in ascending edge position
//     (topology.Incoming order), so the result does not depend on how rows are
//     split across goroutines.

package kprop

import (
	"fmt"

	"github.com/katalvlaran/kprop/matrix"
	"github.com/katalvlaran/kprop/topology"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
)

// aggregation is one resolved propagation step: edges, aligned weights, the
// CSR view by target and the reduction mode.
type aggregation struct {
	edges   topology.EdgeIndex
	weights []float64
	in      *topology.Incoming
	mean    bool
}

// newAggregation groups edges by target and, for mean reduction, rejects
// nodes without incoming edges (lowest index reported).
func newAggregation(edges topology.EdgeIndex, weights []float64, n int, mean bool) (*aggregation, error) {
	in, err := topology.GroupByTarget(edges, n)
	if err != nil {
		return nil, err
	}
	if mean {
		for v := 0; v < n; v++ {
			if in.Count(v) == 0 {
				return nil, fmt.Errorf("node %d: %w", v, ErrEmptyNeighborhood)
			}
		}
	}

	return &aggregation{edges: edges, weights: weights, in: in, mean: mean}, nil
}

// apply returns coeff · Aggregate(x) as a new matrix.
//
// Implementation:
//   - Stage 1: allocate the N×D output.
//   - Stage 2: for each target v: out[v] = Σ w(e)·x[src(e)] over incoming e
//     (floats.AddScaled); mean divides by the incoming count; then scale by coeff.
//   - Stage 3: rows are processed in contiguous chunks, in parallel when
//     N ≥ parallelMinRows and workers > 1.
//
// Complexity:
//   - Time O(E·D), Space O(N·D).
func (a *aggregation) apply(x *matrix.Dense, coeff float64, workers int) (*matrix.Dense, error) {
	n, d := x.Shape()
	out, err := matrix.NewDense(n, d)
	if err != nil {
		return nil, kpropErrorf(opAggregate, err)
	}
	src, dst := x.Data(), out.Data()

	rows := func(lo, hi int) {
		for v := lo; v < hi; v++ {
			row := dst[v*d : (v+1)*d]
			for _, pos := range a.in.Edges(v) {
				s := a.edges[pos].Src
				floats.AddScaled(row, a.weights[pos], src[s*d:(s+1)*d])
			}
			if a.mean {
				cnt := float64(a.in.Count(v))
				for j := range row {
					row[j] /= cnt
				}
			}
			if coeff != 1 {
				floats.Scale(coeff, row)
			}
		}
	}

	if workers <= 1 || n < parallelMinRows {
		rows(0, n)
		return out, nil
	}

	chunk := (n + workers - 1) / workers
	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < n; lo += chunk {
		lo, hi := lo, min(lo+chunk, n)
		g.Go(func() error {
			rows(lo, hi)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, kpropErrorf(opAggregate, err)
	}

	return out, nil
}
