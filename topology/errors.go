// SPDX-License-Identifier: MIT
// Package: topology
//
// errors.go — sentinel errors for the topology package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (see topologyErrorf).
//   • Runtime code never panics; option constructors may panic on nonsense input.

package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrNoNodes indicates a node count N <= 0.
	ErrNoNodes = errors.New("topology: node count must be > 0")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, N).
	ErrNodeOutOfRange = errors.New("topology: node index out of range")

	// ErrWeightLength indicates an edge-weight vector not aligned with the edge list.
	ErrWeightLength = errors.New("topology: edge weights not aligned with edges")

	// ErrTooFewVertices indicates a constructor size parameter below its minimum.
	ErrTooFewVertices = errors.New("topology: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("topology: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor was called without an RNG.
	ErrNeedRandSource = errors.New("topology: rng is required")
)

// topologyErrorf attaches a method tag to err, preserving it for errors.Is.
func topologyErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
