// SPDX-License-Identifier: MIT
// Package solver: sentinel error set.
// Every solve operation fails fast with one of these sentinels wrapped by the
// operation name; the matrix-level cause stays reachable through errors.Is.
// Non-convergence within the iteration cap is NOT an error: it is reported
// through Result.Converged.

package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimension: A is nil or not square, or len(b) differs from A's order.
	ErrInvalidDimension = errors.New("solver: invalid dimension")

	// ErrSingularMatrix: the direct solve met a non-invertible system.
	ErrSingularMatrix = errors.New("solver: singular matrix")

	// ErrInvalidMatrix: an iterative method was given a matrix that failed the
	// positive-definiteness probe.
	ErrInvalidMatrix = errors.New("solver: matrix must be symmetric positive definite")

	// ErrNonFinite: A or b holds NaN or ±Inf.
	ErrNonFinite = errors.New("solver: NaN or Inf in input")

	// ErrUnknownMethod: Solve was asked for a Method it does not implement.
	ErrUnknownMethod = errors.New("solver: unknown method")
)

// solverErrorf tags err with the operation name and, when cause is non-nil,
// keeps the lower-level cause matchable as well: "op: sentinel: cause".
func solverErrorf(op string, sentinel, cause error) error {
	if cause == nil {
		return fmt.Errorf("%s: %w", op, sentinel)
	}

	return fmt.Errorf("%s: %w: %w", op, sentinel, cause)
}
