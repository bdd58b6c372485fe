// SPDX-License-Identifier: MIT
// Package: topology
//
// builder.go — deterministic fixture constructors.
//
// Contract:
//   • Node indices are 0..n-1.
//   • Edges are emitted in a stable order documented per constructor.
//   • Undirected mode (default) emits u→v immediately followed by v→u.
//   • Only sentinel errors are returned; constructors never panic.

package topology

import "fmt"

// File-local constants (stable method tags and domains).
const (
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 1
	minSparseNodes   = 1
	probMin          = 0.0
	probMax          = 1.0
)

// Cycle returns the ring C_n with edges i→(i+1)%n for i = 0..n-1.
func Cycle(n int, opts ...BuilderOption) (EdgeIndex, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	ei := make(EdgeIndex, 0, 2*n)
	for i := 0; i < n; i++ {
		ei = cfg.emit(ei, i, (i+1)%n)
	}

	return ei, nil
}

// Path returns P_n with edges i→i+1 for i = 0..n-2.
func Path(n int, opts ...BuilderOption) (EdgeIndex, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	ei := make(EdgeIndex, 0, 2*(n-1))
	for i := 0; i+1 < n; i++ {
		ei = cfg.emit(ei, i, i+1)
	}

	return ei, nil
}

// Star returns the star with hub 0 and leaves 1..n-1 (edges 0→i).
func Star(n int, opts ...BuilderOption) (EdgeIndex, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	ei := make(EdgeIndex, 0, 2*(n-1))
	for i := 1; i < n; i++ {
		ei = cfg.emit(ei, 0, i)
	}

	return ei, nil
}

// Complete returns K_n with edges i→j for every i<j in lexicographic order.
func Complete(n int, opts ...BuilderOption) (EdgeIndex, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	ei := make(EdgeIndex, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			ei = cfg.emit(ei, i, j)
		}
	}

	return ei, nil
}

// RandomSparse samples each pair i<j independently with probability p
// (Erdős–Rényi G(n,p)), in lexicographic pair order.
//
// Errors:
//   - ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource (0<p<1 without WithSeed/WithRand).
func RandomSparse(n int, p float64, opts ...BuilderOption) (EdgeIndex, error) {
	if n < minSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minSparseNodes, ErrTooFewVertices)
	}
	if !(p >= probMin && p <= probMax) {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil && p > probMin && p < probMax {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}

	var ei EdgeIndex
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch {
			case p == probMin:
				continue
			case p == probMax:
				ei = cfg.emit(ei, i, j)
			case cfg.rng.Float64() < p:
				ei = cfg.emit(ei, i, j)
			}
		}
	}

	return ei, nil
}
