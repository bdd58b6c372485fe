// SPDX-License-Identifier: MIT

// Package matrix - gonum interop.
//
// Gonum() shares the Dense buffer with a *mat.Dense (no copy), so BLAS kernels can
// write straight into matrices owned by this package. FromGonum copies in the
// other direction because gonum matrices may carry a stride.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Gonum returns a *mat.Dense view over m's buffer. Writes through either side are shared.
// Complexity: O(1).
func (m *Dense) Gonum() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// FromGonum copies a gonum matrix into a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix for a nil input; ErrInvalidDimensions for empty shapes.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGonum: %w", ErrNilMatrix)
	}
	r, c := g.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	res.Gonum().Copy(g)

	return res, nil
}
