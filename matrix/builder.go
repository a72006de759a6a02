// SPDX-License-Identifier: MIT

// Package matrix - builders for the square systems used by solvers and tests.
//
// Every builder validates its inputs before allocating, applies the numeric
// policy resolved from ...Option, and returns a fresh *Dense.
package matrix

import (
	"fmt"
	"math"
)

const (
	opIdentity    = "NewIdentity"
	opFromRows    = "NewDenseFromRows"
	opDiagonal    = "NewDiagonal"
	opTridiagonal = "NewTridiagonal"
)

// NewIdentity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions if n <= 0.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1
	}

	return d, nil
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: under the numeric policy, reject NaN/±Inf.
//   - Stage 3: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (no rows or an empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite value while validation is on).
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	d, err := newDenseWithPolicy(r, c, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}

	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			v = rows[i][j]
			if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
			d.data[i*c+j] = v
		}
	}

	return d, nil
}

// NewDiagonal returns a square matrix with diag on its main diagonal.
// Errors: ErrInvalidDimensions for an empty diag, ErrNaNInf under validation.
func NewDiagonal(diag []float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	n := len(diag)
	d, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i, v := range diag {
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opDiagonal, denseErrorf(ctxSet, i, i, ErrNaNInf))
		}
		d.data[i*n+i] = v
	}

	return d, nil
}

// NewTridiagonal builds the symmetric tridiagonal matrix with main diagonal
// diag and off-diagonal off, mirrored above and below: A[i,i+1] = A[i+1,i] = off[i].
// len(off) must be len(diag)-1.
//
// Errors:
//   - ErrInvalidDimensions for an empty diag.
//   - ErrDimensionMismatch when len(off) != len(diag)-1.
//   - ErrNaNInf under validation.
//
// Complexity: O(n²) for the zero-filled buffer, O(n) writes.
func NewTridiagonal(diag, off []float64, opts ...Option) (*Dense, error) {
	n := len(diag)
	if n > 0 && len(off) != n-1 {
		return nil, matrixErrorf(opTridiagonal, ErrDimensionMismatch)
	}
	d, err := NewDiagonal(diag, opts...)
	if err != nil {
		return nil, matrixErrorf(opTridiagonal, err)
	}
	for i, v := range off {
		if d.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opTridiagonal, denseErrorf(ctxSet, i, i+1, ErrNaNInf))
		}
		d.data[i*n+i+1] = v   // upper
		d.data[(i+1)*n+i] = v // mirror
	}

	return d, nil
}
