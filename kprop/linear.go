// SPDX-License-Identifier: MIT
// Package kprop: the learned affine projection X·W + b.

package kprop

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/kprop/matrix"
	"gonum.org/v1/gonum/stat/distuv"
)

// Linear is an affine map from in to out features: Y = X·W + b.
// W is in×out, b has length out. Both are trainable by an external optimizer
// through Params / SetParams.
type Linear struct {
	w *matrix.Dense
	b []float64
}

// newLinear draws W and b from U(−1/√in, 1/√in).
func newLinear(in, out int, rng *rand.Rand) (*Linear, error) {
	w, err := matrix.NewDense(in, out)
	if err != nil {
		return nil, err
	}
	bound := 1 / math.Sqrt(float64(in))
	dist := distuv.Uniform{Min: -bound, Max: bound, Src: rng}

	data := w.Data()
	for i := range data {
		data[i] = dist.Rand()
	}
	b := make([]float64, out)
	for j := range b {
		b[j] = dist.Rand()
	}

	return &Linear{w: w, b: b}, nil
}

// In returns the input width.
func (l *Linear) In() int { return l.w.Rows() }

// Out returns the output width.
func (l *Linear) Out() int { return l.w.Cols() }

// Forward computes x·W + b into a new matrix.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch when x.Cols() != In().
func (l *Linear) Forward(x *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateCols(x, l.In()); err != nil {
		return nil, kpropErrorf(opLinear, err)
	}
	xw, err := matrix.Mul(x, l.w)
	if err != nil {
		return nil, kpropErrorf(opLinear, err)
	}
	out, err := matrix.AddRowVector(xw, l.b)
	if err != nil {
		return nil, kpropErrorf(opLinear, err)
	}

	return out, nil
}

// Params returns the live weight matrix and bias vector. Mutations are visible
// to the next Forward call; an optimizer may update them in place.
func (l *Linear) Params() (*matrix.Dense, []float64) { return l.w, l.b }

// SetParams replaces W and b by copies of w and b.
//
// Errors:
//   - matrix.ErrNilMatrix; matrix.ErrDimensionMismatch for shapes other than In()×Out() / Out().
func (l *Linear) SetParams(w *matrix.Dense, b []float64) error {
	if err := matrix.ValidateNotNil(w); err != nil {
		return kpropErrorf(opSetParams, err)
	}
	if w.Rows() != l.In() || w.Cols() != l.Out() {
		return kpropErrorf(opSetParams, fmt.Errorf("W is %dx%d, want %dx%d: %w",
			w.Rows(), w.Cols(), l.In(), l.Out(), matrix.ErrDimensionMismatch))
	}
	if err := matrix.ValidateVecLen(b, l.Out()); err != nil {
		return kpropErrorf(opSetParams, err)
	}
	l.w = w.CloneDense()
	l.b = append([]float64(nil), b...)

	return nil
}
