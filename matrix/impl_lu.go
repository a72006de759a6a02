// SPDX-License-Identifier: MIT

package matrix

import "math"

// LUFactor holds a row-pivoted Doolittle factorization P·A = L·U.
// L (unit lower) and U (upper) share one packed n×n buffer; piv[i] is the
// original row placed at position i.
type LUFactor struct {
	n   int
	lu  []float64 // packed: strict lower part = L, upper part incl. diagonal = U
	piv []int
}

// LU computes P·A = L·U with partial (row) pivoting.
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy A into the packed buffer.
//   - Stage 2: For each column k pick the row with the largest |a[i,k]| (first
//     one wins on ties), swap it into position k, then eliminate below it.
//
// Behavior highlights:
//   - Deterministic pivot choice; identical inputs give identical factors.
//   - Pivoting keeps non-singular but zero-led matrices (e.g. [[0,1],[1,0]])
//     solvable.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//   - ErrNaNInf if A holds a non-finite value.
//   - ErrSingular if a column has no non-zero pivot candidate.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix) (*LUFactor, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	for _, v := range a.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opLU, ErrNaNInf)
		}
	}

	n := a.r
	lu := a.data
	piv := make([]int, n)
	for i := range piv {
		piv[i] = i
	}

	var (
		i, j, k, p int
		maxAbs, v  float64
		factor     float64
		pivot      float64
	)
	for k = 0; k < n; k++ {
		// Pivot search in column k, rows k..n-1.
		p = k
		maxAbs = math.Abs(lu[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(lu[i*n+k]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if maxAbs == ZeroPivot {
			return nil, matrixErrorf(opLU, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				lu[k*n+j], lu[p*n+j] = lu[p*n+j], lu[k*n+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		// Eliminate below the pivot; multipliers are stored in place (L part).
		pivot = lu[k*n+k]
		for i = k + 1; i < n; i++ {
			factor = lu[i*n+k] / pivot
			lu[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				lu[i*n+j] -= factor * lu[k*n+j]
			}
		}
	}

	return &LUFactor{n: n, lu: lu, piv: piv}, nil
}

// Solve returns x with A·x = b using the stored factors:
// forward substitution L·y = P·b, then back substitution U·x = y.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a bad b.
//   - ErrSingular if the back substitution produced a non-finite entry
//     (overflow from a vanishing pivot).
//
// Complexity: O(n²).
func (f *LUFactor) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	n, lu := f.n, f.lu
	x := make([]float64, n)

	var i, k int
	var sum float64
	// Forward: L has a unit diagonal.
	for i = 0; i < n; i++ {
		sum = b[f.piv[i]]
		for k = 0; k < i; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward: U·x = y, in place.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum / lu[i*n+i]
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return nil, matrixErrorf(opLUSolve, ErrSingular)
		}
	}

	return x, nil
}

// L returns the unit lower-triangular factor as a new Dense.
func (f *LUFactor) L() *Dense {
	n := f.n
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
		out.data[i*n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a new Dense.
func (f *LUFactor) U() *Dense {
	n := f.n
	out := &Dense{r: n, c: n, data: make([]float64, n*n), validateNaNInf: DefaultValidateNaNInf}
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.data[i*n+j] = f.lu[i*n+j]
		}
	}

	return out
}

// Pivots returns a copy of the row permutation: row i of P·A is row Pivots()[i] of A.
func (f *LUFactor) Pivots() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}
