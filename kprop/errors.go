// SPDX-License-Identifier: MIT
// Package kprop: sentinel errors.
// Every message is prefixed with "kprop: ..."; callers match with errors.Is.

package kprop

import (
	"errors"
	"fmt"
)

var (
	// ErrBadHops indicates a hop count K < 1.
	ErrBadHops = errors.New("kprop: hop count must be >= 1")

	// ErrBadDecay indicates a decay p that is negative, NaN or infinite.
	ErrBadDecay = errors.New("kprop: decay must be finite and >= 0")

	// ErrBadDimension indicates an input or output dimension < 1.
	ErrBadDimension = errors.New("kprop: dimensions must be >= 1")

	// ErrEmptyNeighborhood indicates a mean over zero incoming edges.
	// Uniform aggregation reports it instead of producing NaN rows.
	ErrEmptyNeighborhood = errors.New("kprop: node has no incoming edges to average")
)

// Operation tags for error wrapping.
const (
	opNew       = "New"
	opApply     = "Apply"
	opDiffuse   = "Diffuse"
	opAggregate = "Aggregate"
	opLinear    = "Linear"
	opSetParams = "SetParams"
)

// kpropErrorf wraps err with an operation tag, preserving it for errors.Is.
func kpropErrorf(tag string, err error) error {
	return fmt.Errorf("kprop.%s: %w", tag, err)
}
