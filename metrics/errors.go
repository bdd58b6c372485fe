// SPDX-License-Identifier: MIT
// Package metrics: sentinel errors.

package metrics

import (
	"errors"
	"fmt"
)

var (
	// ErrLengthMismatch indicates labels or mask whose length differs from the row count.
	ErrLengthMismatch = errors.New("metrics: length does not match row count")

	// ErrLabelRange indicates a label outside [0, C) other than IgnoreLabel.
	ErrLabelRange = errors.New("metrics: label out of range")

	// ErrNoRows indicates that mask and labels leave no row to score.
	ErrNoRows = errors.New("metrics: no labelled rows selected")

	// ErrIndexRange indicates a mask index outside [0, n).
	ErrIndexRange = errors.New("metrics: index out of range")
)

func metricsErrorf(tag string, err error) error {
	return fmt.Errorf("metrics.%s: %w", tag, err)
}
