// SPDX-License-Identifier: MIT

// Package matrix - Cholesky factorization A = L·Lᵗ and triangular solves.
//
// Purpose:
//   - Fast direct solve for symmetric positive-definite systems.
//   - Cheap positive-definiteness probe (IsPositiveDefinite) for iterative solvers.
//
// Determinism:
//   - Fixed i→j→k loop order (Cholesky–Banachiewicz, row by row).
package matrix

import (
	"fmt"
	"math"
)

// CholeskyFactor holds the lower-triangular factor L of A = L·Lᵗ.
type CholeskyFactor struct {
	n int
	l []float64 // row-major n×n, strictly upper part is zero
}

// Cholesky factorizes a symmetric positive-definite matrix.
//
// Implementation:
//   - Stage 1: Validate (not nil, square, finite, symmetric within eps).
//   - Stage 2: For i=0..n-1, j=0..i:
//     s = A[i,j] - Σ_{k<j} L[i,k]·L[j,k];
//     L[i,i] = √s (s must be > 0), L[i,j] = s / L[j,j] otherwise.
//
// Inputs:
//   - m: square Matrix.
//   - opts: WithEpsilon tunes the symmetry tolerance (DefaultEpsilon).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//   - ErrAsymmetry when |A[i,j]-A[j,i]| > eps·max(1, |A[i,j]|, |A[j,i]|).
//   - ErrNotPositiveDefinite on a non-positive (or NaN) pivot.
//
// Complexity:
//   - Time O(n³/3), Space O(n²).
func Cholesky(m Matrix, opts ...Option) (*CholeskyFactor, error) {
	o := gatherOptions(opts...)
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opCholesky, ErrNaNInf)
		}
	}
	if err = ValidateSymmetric(a, o.eps); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := a.r
	l := make([]float64, n*n)
	var (
		i, j, k int
		s       float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			s = a.data[i*n+j]
			for k = 0; k < j; k++ {
				s -= l[i*n+k] * l[j*n+k]
			}
			if i == j {
				// !(s > 0) also catches NaN.
				if !(s > 0) {
					return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d = %g: %w", i, s, ErrNotPositiveDefinite))
				}
				l[i*n+i] = math.Sqrt(s)
				continue
			}
			l[i*n+j] = s / l[j*n+j]
		}
	}

	return &CholeskyFactor{n: n, l: l}, nil
}

// IsPositiveDefinite reports whether Cholesky(m, opts...) succeeds.
// Factorization errors are swallowed; nil or non-square input yields false.
func IsPositiveDefinite(m Matrix, opts ...Option) bool {
	_, err := Cholesky(m, opts...)

	return err == nil
}

// L returns the lower-triangular factor as a new Dense.
func (f *CholeskyFactor) L() *Dense {
	buf := make([]float64, len(f.l))
	copy(buf, f.l)

	return &Dense{r: f.n, c: f.n, data: buf, validateNaNInf: DefaultValidateNaNInf}
}

// Solve returns x with A·x = b: L·y = b by forward substitution, then
// Lᵗ·x = y by back substitution.
//
// Errors: ErrNilMatrix / ErrDimensionMismatch for a bad b.
// Complexity: O(n²).
func (f *CholeskyFactor) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opCholSolve, err)
	}
	y := forwardSubst(f.l, f.n, b)

	return backSubstTransposed(f.l, f.n, y), nil
}

// ForwardSubst solves L·y = b for a lower-triangular L (the strictly upper
// part is ignored).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrSingular on a zero diagonal entry.
func ForwardSubst(lower Matrix, b []float64) ([]float64, error) {
	l, n, err := triangularInput(lower, b)
	if err != nil {
		return nil, matrixErrorf(opForward, err)
	}

	return forwardSubst(l, n, b), nil
}

// BackSubstTransposed solves Lᵗ·x = y for a lower-triangular L without
// forming the transpose.
//
// Errors: as ForwardSubst.
func BackSubstTransposed(lower Matrix, y []float64) ([]float64, error) {
	l, n, err := triangularInput(lower, y)
	if err != nil {
		return nil, matrixErrorf(opBackward, err)
	}

	return backSubstTransposed(l, n, y), nil
}

// triangularInput validates a triangular-solve call and returns L's packed data.
func triangularInput(lower Matrix, v []float64) ([]float64, int, error) {
	if err := ValidateSquareNonNil(lower); err != nil {
		return nil, 0, err
	}
	n := lower.Rows()
	if err := ValidateVecLen(v, n); err != nil {
		return nil, 0, err
	}
	d, err := denseCopy(lower)
	if err != nil {
		return nil, 0, err
	}
	for i := 0; i < n; i++ {
		if d.data[i*n+i] == ZeroPivot {
			return nil, 0, ErrSingular
		}
	}

	return d.data, n, nil
}

// forwardSubst: y[i] = (b[i] - Σ_{k<i} L[i,k]·y[k]) / L[i,i].
func forwardSubst(l []float64, n int, b []float64) []float64 {
	y := make([]float64, n)
	var i, k int
	var sum float64
	for i = 0; i < n; i++ {
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= l[i*n+k] * y[k]
		}
		y[i] = sum / l[i*n+i]
	}

	return y
}

// backSubstTransposed: x[i] = (y[i] - Σ_{k>i} L[k,i]·x[k]) / L[i,i].
func backSubstTransposed(l []float64, n int, y []float64) []float64 {
	x := make([]float64, n)
	var i, k int
	var sum float64
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= l[k*n+i] * x[k]
		}
		x[i] = sum / l[i*n+i]
	}

	return x
}
