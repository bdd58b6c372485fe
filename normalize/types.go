// SPDX-License-Identifier: MIT
// Package: normalize
//
// types.go — Aggregator variant, Normalized result and sentinel errors.

package normalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/kprop/topology"
)

// ErrUnknownAggregator indicates an unsupported aggregator selector.
var ErrUnknownAggregator = errors.New("normalize: unknown aggregator")

// Aggregator selects the normalization scheme and, with it, the reduction the
// propagation step applies over incoming edges (sum for Symmetric, mean for Uniform).
// The zero value is invalid.
type Aggregator int

const (
	// Symmetric weights each edge by 1/sqrt(deg(src)·deg(dst)) and sums incoming messages.
	Symmetric Aggregator = iota + 1

	// Uniform gives every edge weight 1 and averages incoming messages.
	Uniform
)

// Normalized is the output of a scheme: an edge list and its aligned weights.
// Weights is never nil.
type Normalized struct {
	Edges   topology.EdgeIndex
	Weights []float64
}

// scheme binds one Aggregator variant to its names and weight function.
type scheme struct {
	name    string
	aliases []string
	mean    bool
	weigh   func(ei topology.EdgeIndex, n int, addSelfLoops bool) (*Normalized, error)
}

// schemes is the closed table of supported variants.
var schemes = map[Aggregator]scheme{
	Symmetric: {name: "symmetric", aliases: []string{"gcn", "sym"}, weigh: symmetricWeights},
	Uniform:   {name: "uniform", aliases: []string{"mean"}, mean: true, weigh: uniformWeights},
}

// ParseAggregator resolves a selector string (case-insensitive).
// Accepted: "symmetric", "gcn", "sym" → Symmetric; "uniform", "mean" → Uniform.
func ParseAggregator(s string) (Aggregator, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, a := range []Aggregator{Symmetric, Uniform} {
		sc := schemes[a]
		if key == sc.name {
			return a, nil
		}
		for _, alias := range sc.aliases {
			if key == alias {
				return a, nil
			}
		}
	}

	return 0, fmt.Errorf("ParseAggregator(%q): %w", s, ErrUnknownAggregator)
}

// Valid reports whether a is one of the supported variants.
func (a Aggregator) Valid() bool {
	_, ok := schemes[a]
	return ok
}

// Mean reports whether the aggregation step divides by the incoming-edge count.
func (a Aggregator) Mean() bool { return schemes[a].mean }

// String returns the canonical selector name, or "Aggregator(n)" for invalid values.
func (a Aggregator) String() string {
	if sc, ok := schemes[a]; ok {
		return sc.name
	}

	return fmt.Sprintf("Aggregator(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler (used by config files).
func (a Aggregator) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(a), ErrUnknownAggregator)
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAggregator.
func (a *Aggregator) UnmarshalText(text []byte) error {
	parsed, err := ParseAggregator(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
