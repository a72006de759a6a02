// SPDX-License-Identifier: MIT

package solver

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linsolve/matrix"
)

// SolveConjugateGradient solves A·x = b for symmetric positive-definite A
// with the classic (unpreconditioned) conjugate-gradient iteration.
//
// Implementation:
//   - Stage 1: validate A and b; require CheckPositiveDefinite(A).
//   - Stage 2: x₀ from the initial-guess source; r₀ = b − A·x₀; p₀ = copy of r₀.
//     If ‖r₀‖ < Tolerance, x₀ is returned converged after zero iterations.
//   - Stage 3: for k < MaxIterations:
//     αₖ = (rₖ·rₖ)/(pₖ·A·pₖ); xₖ₊₁ = xₖ + αₖ·pₖ; rₖ₊₁ = rₖ − αₖ·A·pₖ;
//     stop once ‖rₖ₊₁‖ < Tolerance;
//     βₖ = (rₖ₊₁·rₖ₊₁)/(rₖ·rₖ); pₖ₊₁ = rₖ₊₁ + βₖ·pₖ.
//
// In exact arithmetic CG terminates within n steps; with the default cap of
// DefaultMaxIterations that holds only for n ≤ 20 (see WithMaxIterations).
// Exhausting the cap returns the last iterate with Converged=false.
//
// Result.History records ‖rₖ₊₁‖ as updated by the recurrence;
// Result.ResidualNorm is recomputed from X.
//
// Errors: ErrInvalidDimension, ErrNonFinite (b), ErrInvalidMatrix.
//
// Complexity: O(k·n²) time for k iterations, O(n) extra space.
func (s *Solver) SolveConjugateGradient(a matrix.Matrix, b []float64) (Result, error) {
	n, err := validateSystem(opConjugate, a, b)
	if err != nil {
		return Result{}, err
	}
	if err = s.requireSPD(opConjugate, a); err != nil {
		return Result{}, err
	}
	x, err := s.initialGuess(opConjugate, n)
	if err != nil {
		return Result{}, err
	}

	r := make([]float64, n)
	rNorm, err := residual(r, a, x, b)
	if err != nil {
		return Result{}, classify(opConjugate, err)
	}

	var (
		p       = make([]float64, n)
		ap      = make([]float64, n)
		history = make([]float64, 0, s.opts.maxIterations)
		rr      = floats.Dot(r, r)
		iters   int
		done    = rNorm < s.opts.tolerance
	)
	copy(p, r)

	for !done && iters < s.opts.maxIterations {
		if err = matrix.MatVecTo(ap, a, p); err != nil {
			return Result{}, classify(opConjugate, err)
		}
		pAp := floats.Dot(p, ap)
		if !(pAp > 0) || !isFinite(pAp) {
			break
		}
		alpha := rr / pAp

		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)
		iters++

		rNorm = floats.Norm(r, 2)
		history = append(history, rNorm)
		if rNorm < s.opts.tolerance {
			done = true
			break
		}

		rrNext := floats.Dot(r, r)
		beta := rrNext / rr
		rr = rrNext
		// p ← r + β·p
		floats.AddScaledTo(p, r, beta, p)
	}

	res, err := finalResidual(a, x, b)
	if err != nil {
		return Result{}, classify(opConjugate, err)
	}

	return Result{
		X:            x,
		Method:       MethodConjugateGradient,
		Converged:    done,
		Iterations:   iters,
		ResidualNorm: res,
		History:      history,
	}, nil
}
