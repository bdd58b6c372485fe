// Package kprop implements the K-hop feature propagation operator (KProp).
//
// An Operator diffuses a node-feature matrix over a fixed topology and then
// projects the result through a learned affine map:
//
//	coeff ← 1
//	repeat K times:
//	    X ← Aggregate(X) · coeff
//	    coeff ← coeff · exp(−p)
//	return X·W + b
//
// Because the coefficient compounds, the K-times aggregated signal carries a
// total factor exp(−p·K(K−1)/2), quadratic in K.
//
// Aggregate sums weighted incoming messages per target node (Symmetric) or
// averages them (Uniform). Weights come from package normalize unless the
// caller supplies them, in which case they are used verbatim and no self-loops
// or degree normalization are applied.
//
// Caching: an Operator built WithCache() stores the diffused matrix produced
// by its first computing call and reuses it on every later call without
// looking at the new arguments. The topology and input features must therefore
// stay fixed for the operator's lifetime; call Invalidate (or build a new
// Operator) when they change. The projection is always re-applied, so updated
// parameters take effect on cache hits.
//
// Errors:
//
//	ErrBadHops            - K < 1 at construction.
//	ErrBadDecay           - p < 0 or non-finite at construction.
//	ErrBadDimension       - in/out dimension < 1 at construction.
//	ErrEmptyNeighborhood  - Uniform aggregation over a node with no incoming edge.
//
// Shape violations surface as matrix.ErrDimensionMismatch,
// topology.ErrNodeOutOfRange or topology.ErrWeightLength.
package kprop
