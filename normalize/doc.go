// Package normalize turns a raw topology into per-edge aggregation weights.
//
// Two schemes exist, modelled as the Aggregator tagged variant and selected
// once at construction time by the caller:
//
//	Symmetric  w(u→v) = 1 / sqrt(deg(u)·deg(v))   (GCN-style, summed)
//	Uniform    w(u→v) = 1                         (averaged by the aggregator)
//
// Degrees are weighted in-degrees on the (possibly self-loop-augmented) graph.
// A node of degree zero contributes a zero factor: edges leaving a node with no
// incoming edges get weight 0 under Symmetric. That is accepted behaviour, not
// an error, and no epsilon is added to degrees.
//
// When addSelfLoops is set (hop count K == 1 in the engine), every node ends up
// with exactly one self-loop; see topology.AddRemainingSelfLoops for ordering.
// Normalize is pure: identical inputs always yield identical outputs.
package normalize
