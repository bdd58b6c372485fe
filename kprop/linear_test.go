// SPDX-License-Identifier: MIT
package kprop_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/kprop/kprop"
	"github.com/katalvlaran/kprop/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear_InitBoundsAndSeed(t *testing.T) {
	a, err := kprop.New(9, 5, kprop.WithSeed(42))
	require.NoError(t, err)
	b, err := kprop.New(9, 5, kprop.WithSeed(42))
	require.NoError(t, err)
	c, err := kprop.New(9, 5, kprop.WithSeed(43))
	require.NoError(t, err)

	wa, ba := a.Linear().Params()
	wb, bb := b.Linear().Params()
	wc, _ := c.Linear().Params()
	assert.Equal(t, wa.Data(), wb.Data())
	assert.Equal(t, ba, bb)
	assert.NotEqual(t, wa.Data(), wc.Data())

	assert.Equal(t, 9, a.Linear().In())
	assert.Equal(t, 5, a.Linear().Out())
	bound := 1 / math.Sqrt(9)
	for _, v := range append(append([]float64(nil), wa.Data()...), ba...) {
		assert.LessOrEqual(t, math.Abs(v), bound)
	}
}

func TestLinear_ForwardAndSetParams(t *testing.T) {
	op, err := kprop.New(2, 3)
	require.NoError(t, err)
	lin := op.Linear()

	w := mustFrom(t, [][]float64{{1, 0, 2}, {0, 1, -1}})
	require.NoError(t, lin.SetParams(w, []float64{0.5, 0, 1}))

	// SetParams copies: later edits to the caller's matrix are not seen.
	require.NoError(t, w.Set(0, 0, 100))

	out, err := lin.Forward(mustFrom(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, 1, 3.5, 4, 3}, out.Data())

	require.ErrorIs(t, lin.SetParams(nil, []float64{0, 0, 0}), matrix.ErrNilMatrix)
	require.ErrorIs(t, lin.SetParams(mustFrom(t, [][]float64{{1, 2, 3}}), []float64{0, 0, 0}), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, lin.SetParams(mustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), []float64{0}), matrix.ErrDimensionMismatch)

	_, err = lin.Forward(mustFrom(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
