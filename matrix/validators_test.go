// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/kprop/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	a := MustDense(t, 2, 3)
	b := MustDense(t, 3, 1)
	var typedNil *matrix.Dense

	require.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil(typedNil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateNotNil(hide{a}))

	require.NoError(t, matrix.ValidateSameShape(a, a.CloneDense()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateCols(a, 3))
	require.ErrorIs(t, matrix.ValidateCols(a, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateCols(typedNil, 2), matrix.ErrNilMatrix)

	require.NoError(t, matrix.ValidateVecLen(make([]float64, 3), 3))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 1), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(a, b))
	require.ErrorIs(t, matrix.ValidateMulCompatible(b, a), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(a, nil), matrix.ErrNilMatrix)
}
