// SPDX-License-Identifier: MIT

package solver

// Method identifies a solve strategy.
type Method int

const (
	// MethodDirect lets SolveDirect pick Cholesky or LU.
	MethodDirect Method = iota
	// MethodCholesky reports a direct solve through A = L·Lᵗ.
	MethodCholesky
	// MethodLU reports a direct solve through the pivoted LU factorization.
	MethodLU
	// MethodSteepestDescent is the steepest-descent iteration.
	MethodSteepestDescent
	// MethodConjugateGradient is the conjugate-gradient iteration.
	MethodConjugateGradient
)

// String returns a stable, human-readable name.
func (m Method) String() string {
	switch m {
	case MethodDirect:
		return "direct"
	case MethodCholesky:
		return "cholesky"
	case MethodLU:
		return "lu"
	case MethodSteepestDescent:
		return "steepest-descent"
	case MethodConjugateGradient:
		return "conjugate-gradient"
	default:
		return "unknown"
	}
}

// Result is the outcome of a solve.
//
// Direct solves always report Converged=true and Iterations=0. Iterative
// solves that exhaust the cap return the last iterate with Converged=false;
// that is not an error.
type Result struct {
	// X is the (approximate) solution; the caller owns it.
	X []float64
	// Method is the strategy that produced X (Cholesky or LU for direct solves).
	Method Method
	// Converged reports whether the tolerance test was met.
	Converged bool
	// Iterations is the number of updates applied to the initial guess.
	Iterations int
	// ResidualNorm is ‖b − A·X‖₂ recomputed from X.
	ResidualNorm float64
	// History holds one norm per step taken, so len(History) == Iterations:
	// ‖dₖ‖ for steepest descent, ‖rₖ₊₁‖ for CG. Empty for direct solves and
	// for iterative solves that start at the solution.
	History []float64
}
