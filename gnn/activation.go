// SPDX-License-Identifier: MIT
// Package gnn: in-place element-wise stages (SELU, dropout, log-softmax).

package gnn

import (
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/kprop/matrix"
	"gonum.org/v1/gonum/floats"
)

// SELU constants (Klambauer et al., 2017).
const (
	seluAlpha = 1.6732632423543772848170429916717
	seluScale = 1.0507009873554804934193349852946
)

// selu returns scale·x for x > 0 and scale·alpha·(eˣ − 1) otherwise.
func selu(x float64) float64 {
	if x > 0 {
		return seluScale * x
	}

	return seluScale * seluAlpha * math.Expm1(x)
}

// seluInPlace applies selu to every entry of m.
func seluInPlace(m *matrix.Dense) {
	data := m.Data()
	for i, v := range data {
		data[i] = selu(v)
	}
}

// dropoutInPlace zeroes each entry with probability rate and scales survivors
// by 1/(1−rate). rate 0 draws nothing; rate 1 zeroes everything.
func dropoutInPlace(m *matrix.Dense, rate float64, rng *rand.Rand) {
	if rate == 0 {
		return
	}
	data := m.Data()
	if rate == 1 {
		clear(data)
		return
	}
	keep := 1 / (1 - rate)
	for i := range data {
		if rng.Float64() < rate {
			data[i] = 0
		} else {
			data[i] *= keep
		}
	}
}

// logSoftmaxInPlace replaces each row r by r − log Σ exp(r).
func logSoftmaxInPlace(m *matrix.Dense) error {
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		floats.AddConst(-floats.LogSumExp(row), row)
	}

	return nil
}
