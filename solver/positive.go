// SPDX-License-Identifier: MIT

package solver

import "github.com/katalvlaran/linsolve/matrix"

// CheckPositiveDefinite reports whether a Cholesky factorization of A exists
// (A symmetric within matrix.DefaultEpsilon relative to its entries, every
// pivot strictly positive).
// It never returns the factorization error: nil, non-square, asymmetric or
// indefinite input all yield false. Side-effect free.
func (s *Solver) CheckPositiveDefinite(a matrix.Matrix) bool {
	return matrix.IsPositiveDefinite(a)
}

// requireSPD is the precondition gate of the iterative methods; it runs on
// every call (no caching).
func (s *Solver) requireSPD(op string, a matrix.Matrix) error {
	if s.CheckPositiveDefinite(a) {
		return nil
	}

	return solverErrorf(op, ErrInvalidMatrix, nil)
}
