// SPDX-License-Identifier: MIT

package solver

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
)

// SolveSteepestDescent solves A·x = b for symmetric positive-definite A by
// moving along the residual with an exact line search.
//
// Implementation:
//   - Stage 1: validate A and b; require CheckPositiveDefinite(A).
//   - Stage 2: x₀ from the initial-guess source (zeros by default).
//   - Stage 3: for k < MaxIterations:
//     dₖ = b − A·xₖ, αₖ = (dₖ·dₖ)/(dₖ·A·dₖ), xₖ₊₁ = xₖ + αₖ·dₖ;
//     stop once ‖xₖ₊₁ − xₖ‖ < Tolerance.
//
// A zero direction means xₖ already solves the system; the loop stops
// converged without taking a step. Exhausting the cap is not an error: the
// last iterate comes back with Converged=false.
//
// Errors: ErrInvalidDimension, ErrNonFinite (b), ErrInvalidMatrix.
//
// Complexity: O(k·n²) time for k iterations, O(n) extra space.
func (s *Solver) SolveSteepestDescent(a matrix.Matrix, b []float64) (Result, error) {
	n, err := validateSystem(opSteepest, a, b)
	if err != nil {
		return Result{}, err
	}
	if err = s.requireSPD(opSteepest, a); err != nil {
		return Result{}, err
	}
	x, err := s.initialGuess(opSteepest, n)
	if err != nil {
		return Result{}, err
	}

	var (
		d       = make([]float64, n) // direction = residual
		ad      = make([]float64, n) // A·d
		history = make([]float64, 0, s.opts.maxIterations)
		iters   int
		done    bool
	)
	for iters < s.opts.maxIterations {
		dNorm, rErr := residual(d, a, x, b)
		if rErr != nil {
			return Result{}, classify(opSteepest, rErr)
		}
		if dNorm == 0 {
			done = true
			break
		}

		if err = matrix.MatVecTo(ad, a, d); err != nil {
			return Result{}, classify(opSteepest, err)
		}
		dAd := floats.Dot(d, ad)
		if !(dAd > 0) || !isFinite(dAd) {
			// Curvature lost to rounding; x is as good as it gets.
			break
		}
		alpha := floats.Dot(d, d) / dAd

		floats.AddScaled(x, alpha, d)
		history = append(history, dNorm)
		iters++

		// ‖xₖ₊₁ − xₖ‖ = |α|·‖d‖
		if alpha*dNorm < s.opts.tolerance {
			done = true
			break
		}
	}

	res, err := finalResidual(a, x, b)
	if err != nil {
		return Result{}, classify(opSteepest, err)
	}

	return Result{
		X:            x,
		Method:       MethodSteepestDescent,
		Converged:    done,
		Iterations:   iters,
		ResidualNorm: res,
		History:      history,
	}, nil
}
