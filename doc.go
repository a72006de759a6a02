// Package linsolve is a small dense linear-system toolkit: build a square
// matrix, factor it, and solve A·x = b directly or iteratively.
//
// 🚀 What is linsolve?
//
//	A pure-Go library for small dense systems that brings together:
//		• Dense matrices with bounds-checked access and a NaN/Inf policy
//		• Factorizations: Cholesky (A = L·Lᵗ) and LU with partial pivoting
//		• A solver with three strategies: direct, steepest descent, conjugate gradient
//		• Explicit results: solution, convergence flag, iterations, residual norm
//
// ✨ Why linsolve?
//
//   - Deterministic – zero initial guess by default, seeded random on request
//   - Honest – hitting the iteration cap is reported, not hidden or raised
//   - Safe to share – a configured Solver is immutable
//
// Packages:
//
//	matrix/            Dense type, builders, kernels, LU, Cholesky, validators
//	solver/            SolveDirect, SolveSteepestDescent, SolveConjugateGradient, CheckPositiveDefinite
//	internal/config/   YAML configuration of the demo
//	internal/report/   YAML run report and convergence plot
//	cmd/linsolve-demo  tridiagonal demo comparing every strategy with a reference solve
//
// Quick example:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 1}, {1, 3}})
//	res, _ := solver.New().SolveConjugateGradient(a, []float64{1, 2})
//	// res.X ≈ [0.0909 0.6364], res.Converged == true
//
//	go get github.com/katalvlaran/linsolve
package linsolve
