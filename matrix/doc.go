// Package matrix offers a small dense linear-algebra toolkit for square
// systems A·x = b.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional NaN/Inf rejection policy.
//   - Builders: NewIdentity, NewDenseFromRows, NewTridiagonal.
//   - Kernels: MatVec, Mul, Transpose with a *Dense fast path and a generic
//     Matrix fallback.
//   - Factorizations: LU with partial pivoting and Cholesky (A = L·Lᵗ),
//     both exposing a Solve(b) method.
//
// All public functions validate their inputs and return sentinel errors
// (see errors.go) wrapped with an operation tag; match them with errors.Is.
// Inputs are never mutated; results are freshly allocated.
//
// Matrices are best for dense, small systems where O(n²) memory and O(n³)
// factorization time are acceptable.
package matrix
