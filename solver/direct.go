// SPDX-License-Identifier: MIT

package solver

import (
	"errors"

	"github.com/katalvlaran/linsolve/matrix"
)

// SolveDirect solves A·x = b without iterating.
//
// Implementation:
//   - Stage 1: validate A and b.
//   - Stage 2: attempt Cholesky; when it succeeds and PreferCholesky is on,
//     solve L·y = b then Lᵗ·x = y.
//   - Stage 3: otherwise (not SPD, or Cholesky disabled) solve through the
//     pivoted LU factorization.
//
// The tolerance does not apply. The result is deterministic: identical
// inputs yield identical output.
//
// Errors:
//   - ErrInvalidDimension: nil/non-square A or len(b) mismatch.
//   - ErrNonFinite: NaN/Inf in A or b.
//   - ErrSingularMatrix: LU found no usable pivot (also matches matrix.ErrSingular).
//
// Complexity: O(n³) time, O(n²) space.
func (s *Solver) SolveDirect(a matrix.Matrix, b []float64) (Result, error) {
	if _, err := validateSystem(opDirect, a, b); err != nil {
		return Result{}, err
	}

	var (
		x      []float64
		method Method
	)
	chol, err := matrix.Cholesky(a)
	if err == nil && s.opts.preferCholesky {
		method = MethodCholesky
		if x, err = chol.Solve(b); err != nil {
			return Result{}, classify(opDirect, err)
		}
	} else {
		// A non-finite entry fails both factorizations; report it as such.
		if err != nil && errors.Is(err, matrix.ErrNaNInf) {
			return Result{}, classify(opDirect, err)
		}
		method = MethodLU
		lu, luErr := matrix.LU(a)
		if luErr != nil {
			return Result{}, classify(opDirect, luErr)
		}
		if x, err = lu.Solve(b); err != nil {
			return Result{}, classify(opDirect, err)
		}
	}

	res, err := finalResidual(a, x, b)
	if err != nil {
		return Result{}, classify(opDirect, err)
	}

	return Result{
		X:            x,
		Method:       method,
		Converged:    true,
		ResidualNorm: res,
	}, nil
}
