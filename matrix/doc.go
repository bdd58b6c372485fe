// Package matrix provides the dense, row-major feature matrices consumed and
// produced by the propagation engine.
//
// The matrix package provides:
//
//   - Dense: an N×D row-major float64 buffer with bounds-safe At/Set and
//     zero-copy row access for hot kernels.
//   - Linear-algebra kernels used by the engine (Mul, Scale, AddRowVector)
//     plus AllClose for numeric comparisons in tests and callers.
//   - Thin adapters to gonum's mat.Dense so projections can run on BLAS.
//
// Every kernel validates its inputs through the central validators and
// returns package sentinels (ErrDimensionMismatch, ErrOutOfRange, ...) wrapped
// with an operation tag. Inputs are never mutated unless the function name
// says so.
package matrix
