// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by projection
// layers: matrix product, scalar scaling and row-vector broadcast.
//
// Purpose:
//   - Declare canonical kernels with central validation and tagged errors.
//   - Route *Dense operands to gonum's BLAS-backed product; keep a generic
//     At/Set fallback for other Matrix implementations.
//
// Notes:
//   - Inputs are never mutated; every kernel allocates a fresh *Dense.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul          = "Mul"
	opScale        = "Scale"
	opAddRowVector = "AddRowVector"
	opAllClose     = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a × b as a new *Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate Dense(a.Rows, b.Cols).
//   - Stage 2: both *Dense → gonum mat.Dense.Mul over shared buffers.
//   - Stage 3: otherwise generic i→j→k loop via At/Set.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path for two Dense matrices: BLAS gemm on the flat buffers.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			res.Gonum().Mul(da.Gonum(), db.Gonum())
			return res, nil
		}
	}

	var (
		i, j, k       int
		av, bv, accum float64
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			accum = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue // skip zero for performance
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				accum += av * bv
			}
			res.data[i*bCols+j] = accum
		}
	}

	return res, nil
}

// Scale returns alpha*m as a new *Dense.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when alpha is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, matrixErrorf(opScale, ErrNaNInf)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	if dm, ok := m.(*Dense); ok {
		for idx, v := range dm.data {
			res.data[idx] = v * alpha
		}
		return res, nil
	}

	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScale, err)
			}
			res.data[i*c+j] = v * alpha
		}
	}

	return res, nil
}

// AddRowVector returns m + 1·vᵀ: v is added to every row of m.
// This is the bias broadcast of an affine projection.
//
// Errors:
//   - ErrNilMatrix; ErrDimensionMismatch when len(v) != m.Cols().
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func AddRowVector(m Matrix, v []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAddRowVector, err)
	}
	if err := ValidateVecLen(v, m.Cols()); err != nil {
		return nil, matrixErrorf(opAddRowVector, err)
	}
	r, c := m.Rows(), m.Cols()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opAddRowVector, err)
	}

	var x float64
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			if dm, ok := m.(*Dense); ok {
				x = dm.data[base+j]
			} else if x, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAddRowVector, err)
			}
			res.data[base+j] = x + v[j]
		}
	}

	return res, nil
}
