// SPDX-License-Identifier: MIT
// Package gnn: sentinel errors and stage tags.

package gnn

import (
	"errors"
	"fmt"
)

var (
	// ErrBadDropout indicates a dropout rate outside [0, 1] or NaN.
	ErrBadDropout = errors.New("gnn: dropout rate must be in [0, 1]")

	// ErrBadMode indicates a Mode other than Train or Eval.
	ErrBadMode = errors.New("gnn: unknown mode")
)

// Stage tags for error wrapping.
const (
	stageNew        = "New"
	stagePropagate  = "Propagate"
	stageClassify   = "Classify"
	stageLogSoftmax = "LogSoftmax"
	stageForward    = "Forward"
)

func gnnErrorf(stage string, err error) error {
	return fmt.Errorf("gnn.%s: %w", stage, err)
}
