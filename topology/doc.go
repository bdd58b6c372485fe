// Package topology holds the static graph structure consumed by the propagation
// engine: an ordered list of directed (source, target) node-index pairs.
//
// What & Why:
//
//	The engine never builds or mutates graphs; it reads an EdgeIndex together
//	with the node count implied by the feature matrix. This package owns the
//	structural helpers every normalization scheme needs:
//
//	  • Validate        — bounds-check every index against [0, N).
//	  • InDegree        — weighted in-degree per target node.
//	  • AddRemainingSelfLoops — guarantee exactly one self-loop per node.
//	  • GroupByTarget   — CSR view of incoming edges, in edge-list order.
//	  • Undirected      — symmetrise and coalesce an edge list.
//	  • UpstreamDistances — nodes whose features reach a target within K hops.
//
//	Small deterministic constructors (Cycle, Path, Star, Complete, RandomSparse)
//	produce fixtures for tests, examples and benchmarks.
//
// Duplicates and self edges are legal input. Node indices are 0-based.
package topology
