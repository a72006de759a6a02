// SPDX-License-Identifier: MIT

package solver

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
)

const (
	opSolve     = "Solve"
	opDirect    = "SolveDirect"
	opSteepest  = "SolveSteepestDescent"
	opConjugate = "SolveConjugateGradient"
)

// Solver solves dense square systems A·x = b with a selectable strategy.
// Configuration is fixed at construction; methods never mutate the Solver,
// so one instance may serve concurrent callers.
type Solver struct {
	opts Options
}

// New returns a Solver configured by opts on top of the defaults
// (DefaultTolerance, DefaultPreferCholesky, DefaultMaxIterations, zero
// initial guess). No matrix is inspected here; every solve validates its own
// inputs.
func New(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// Tolerance returns the absolute stopping threshold of the iterative methods.
func (s *Solver) Tolerance() float64 { return s.opts.tolerance }

// PreferCholesky reports whether SolveDirect tries the Cholesky path first.
func (s *Solver) PreferCholesky() bool { return s.opts.preferCholesky }

// MaxIterations returns the iteration cap of the iterative methods.
func (s *Solver) MaxIterations() int { return s.opts.maxIterations }

// Solve dispatches to the strategy named by method.
// MethodCholesky and MethodLU route to SolveDirect.
func (s *Solver) Solve(method Method, a matrix.Matrix, b []float64) (Result, error) {
	switch method {
	case MethodDirect, MethodCholesky, MethodLU:
		return s.SolveDirect(a, b)
	case MethodSteepestDescent:
		return s.SolveSteepestDescent(a, b)
	case MethodConjugateGradient:
		return s.SolveConjugateGradient(a, b)
	default:
		return Result{}, solverErrorf(opSolve, ErrUnknownMethod, fmt.Errorf("method %d", int(method)))
	}
}

// validateSystem checks A (non-nil, square, non-empty) and b (length n, finite).
// Priority: dimension errors before non-finite values.
func validateSystem(op string, a matrix.Matrix, b []float64) (int, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, solverErrorf(op, ErrInvalidDimension, err)
	}
	n := a.Rows()
	if n == 0 {
		return 0, solverErrorf(op, ErrInvalidDimension, matrix.ErrInvalidDimensions)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return 0, solverErrorf(op, ErrInvalidDimension, err)
	}
	if err := matrix.ValidateFiniteVec(b); err != nil {
		return 0, solverErrorf(op, ErrNonFinite, err)
	}

	return n, nil
}

// classify maps a matrix-level failure to the solver taxonomy.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, matrix.ErrSingular):
		return solverErrorf(op, ErrSingularMatrix, err)
	case errors.Is(err, matrix.ErrNaNInf):
		return solverErrorf(op, ErrNonFinite, err)
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrNilMatrix):
		return solverErrorf(op, ErrInvalidDimension, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// residual writes r = b − A·x into r (len n) and returns ‖r‖₂.
func residual(r []float64, a matrix.Matrix, x, b []float64) (float64, error) {
	if err := matrix.MatVecTo(r, a, x); err != nil {
		return 0, err
	}
	floats.SubTo(r, b, r)

	return floats.Norm(r, 2), nil
}

// finalResidual is residual with its own scratch vector.
func finalResidual(a matrix.Matrix, x, b []float64) (float64, error) {
	return residual(make([]float64, len(b)), a, x, b)
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
