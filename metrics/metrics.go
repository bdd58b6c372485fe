// SPDX-License-Identifier: MIT
// Package metrics: masked loss, predictions and accuracy.

package metrics

import (
	"fmt"

	"github.com/katalvlaran/kprop/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// IgnoreLabel marks a row without a target class.
const IgnoreLabel = -1

// Report bundles the scores of one split.
type Report struct {
	Loss     float64 // mean negative log-likelihood
	Accuracy float64 // fraction of correct argmax predictions
	Count    int     // rows scored
}

// selected returns the indices of rows that are masked in and labelled.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrLengthMismatch, ErrLabelRange, ErrNoRows.
func selected(logp *matrix.Dense, labels []int, mask []bool) ([]int, error) {
	if err := matrix.ValidateNotNil(logp); err != nil {
		return nil, err
	}
	n, c := logp.Shape()
	if len(labels) != n {
		return nil, fmt.Errorf("labels=%d rows=%d: %w", len(labels), n, ErrLengthMismatch)
	}
	if mask != nil && len(mask) != n {
		return nil, fmt.Errorf("mask=%d rows=%d: %w", len(mask), n, ErrLengthMismatch)
	}

	rows := make([]int, 0, n)
	for i, y := range labels {
		if y == IgnoreLabel || (mask != nil && !mask[i]) {
			continue
		}
		if y < 0 || y >= c {
			return nil, fmt.Errorf("row %d label %d with %d classes: %w", i, y, c, ErrLabelRange)
		}
		rows = append(rows, i)
	}
	if len(rows) == 0 {
		return nil, ErrNoRows
	}

	return rows, nil
}

// NLLLoss returns the mean of −logp[i, labels[i]] over selected rows.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrLengthMismatch, ErrLabelRange, ErrNoRows.
func NLLLoss(logp *matrix.Dense, labels []int, mask []bool) (float64, error) {
	rows, err := selected(logp, labels, mask)
	if err != nil {
		return 0, metricsErrorf("NLLLoss", err)
	}

	return meanNLL(logp, labels, rows), nil
}

func meanNLL(logp *matrix.Dense, labels []int, rows []int) float64 {
	c := logp.Cols()
	data := logp.Data()
	terms := make([]float64, len(rows))
	for k, i := range rows {
		terms[k] = -data[i*c+labels[i]]
	}

	return stat.Mean(terms, nil)
}

// Argmax returns, per row, the index of the largest entry (lowest index on ties).
//
// Errors:
//   - matrix.ErrNilMatrix.
func Argmax(logp *matrix.Dense) ([]int, error) {
	if err := matrix.ValidateNotNil(logp); err != nil {
		return nil, metricsErrorf("Argmax", err)
	}
	pred := make([]int, logp.Rows())
	for i := range pred {
		row, err := logp.Row(i)
		if err != nil {
			return nil, metricsErrorf("Argmax", err)
		}
		pred[i] = floats.MaxIdx(row)
	}

	return pred, nil
}

// Accuracy returns the fraction of selected rows whose argmax equals the label.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrLengthMismatch, ErrLabelRange, ErrNoRows.
func Accuracy(logp *matrix.Dense, labels []int, mask []bool) (float64, error) {
	rows, err := selected(logp, labels, mask)
	if err != nil {
		return 0, metricsErrorf("Accuracy", err)
	}

	return hitRate(logp, labels, rows), nil
}

func hitRate(logp *matrix.Dense, labels []int, rows []int) float64 {
	c := logp.Cols()
	data := logp.Data()
	hits := 0
	for _, i := range rows {
		if floats.MaxIdx(data[i*c:(i+1)*c]) == labels[i] {
			hits++
		}
	}

	return float64(hits) / float64(len(rows))
}

// Evaluate computes loss and accuracy over the same selection.
func Evaluate(logp *matrix.Dense, labels []int, mask []bool) (Report, error) {
	rows, err := selected(logp, labels, mask)
	if err != nil {
		return Report{}, metricsErrorf("Evaluate", err)
	}

	return Report{
		Loss:     meanNLL(logp, labels, rows),
		Accuracy: hitRate(logp, labels, rows),
		Count:    len(rows),
	}, nil
}

// MaskFromIndices returns a length-n mask with the listed rows set.
//
// Errors:
//   - ErrIndexRange for any index outside [0, n).
func MaskFromIndices(n int, idx []int) ([]bool, error) {
	mask := make([]bool, n)
	for _, i := range idx {
		if i < 0 || i >= n {
			return nil, metricsErrorf("MaskFromIndices", fmt.Errorf("index %d with n=%d: %w", i, n, ErrIndexRange))
		}
		mask[i] = true
	}

	return mask, nil
}
