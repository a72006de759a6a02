// SPDX-License-Identifier: MIT

// Package solver solves dense square linear systems A·x = b.
//
// Three interchangeable strategies share one configured *Solver:
//
//   - SolveDirect: Cholesky (A = L·Lᵗ) when A is SPD and PreferCholesky is
//     on, pivoted LU otherwise. Exact up to rounding; tolerance unused.
//   - SolveSteepestDescent: residual-direction line search, SPD only.
//   - SolveConjugateGradient: classic CG, SPD only.
//
// CheckPositiveDefinite is the Cholesky probe the iterative methods run on
// every call; it never returns an error.
//
// Every solve returns a Result. Iterative methods that exhaust the iteration
// cap (DefaultMaxIterations unless WithMaxIterations says otherwise) are not
// failures: the last iterate is returned with Converged=false and the true
// residual norm, so callers decide what "good enough" means.
//
// Reproducibility:
//
//	The default initial guess is the zero vector. WithInitialGuess fixes any
//	other start; WithSeed draws uniform [0,1) values from a stream re-seeded on
//	every call. Identical inputs therefore always give identical output.
//
// Errors (match with errors.Is):
//
//	ErrInvalidDimension  nil or non-square A, len(b) ≠ n, bad initial guess length
//	ErrSingularMatrix    direct solve hit a non-invertible system
//	ErrInvalidMatrix     iterative method on a matrix that is not SPD
//	ErrNonFinite         NaN/Inf in b (or in A for the direct path)
//	ErrUnknownMethod     Solve called with an unsupported Method
//
// Concurrency:
//
//	A *Solver is immutable after New. Each call allocates its own working
//	vectors, so one Solver may be used from many goroutines.
//
// Example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	res, err := solver.New(solver.WithTolerance(1e-10)).SolveConjugateGradient(a, []float64{1, 2})
//	if err != nil { … }
//	fmt.Println(res.X, res.Converged)
package solver
