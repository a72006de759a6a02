// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linsolve/matrix"
)

func TestLU_Errors(t *testing.T) {
	_, err := matrix.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.LU(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.LU(MustDense(t, 3, 3)) // all zeros
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.LU(MustRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	nan, err := matrix.NewDenseFromRows([][]float64{{math.NaN()}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	_, err = matrix.LU(nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestLU_PivotsZeroLeadingEntry(t *testing.T) {
	a := MustRows(t, [][]float64{{0, 1}, {1, 0}})
	f, err := matrix.LU(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, f.Pivots())

	x, err := f.Solve([]float64{2, 3})
	require.NoError(t, err)
	require.Equal(t, []float64{3, 2}, x)
}

func TestLU_Reconstruction(t *testing.T) {
	a := MustRows(t, [][]float64{
		{2, 1, 1, 0},
		{4, 3, 3, 1},
		{8, 7, 9, 5},
		{6, 7, 9, 8},
	})
	for name, m := range map[string]matrix.Matrix{"dense": a, "fallback": hide{a}} {
		f, err := matrix.LU(m)
		require.NoError(t, err, name)

		l, u := f.L(), f.U()
		lu, err := matrix.Mul(l, u)
		require.NoError(t, err)

		piv := f.Pivots()
		for i := 0; i < 4; i++ {
			require.InDelta(t, 1.0, MustAt(t, l, i, i), 0)
			for j := 0; j < 4; j++ {
				if j > i {
					require.Equal(t, 0.0, MustAt(t, l, i, j))
				}
				if j < i {
					require.Equal(t, 0.0, MustAt(t, u, i, j))
				}
				// Row i of L·U is row piv[i] of A.
				require.InDelta(t, MustAt(t, a, piv[i], j), MustAt(t, lu, i, j), 1e-12, "[%d,%d]", i, j)
			}
		}
	}
}

func TestLU_Solve_Residual(t *testing.T) {
	const n = 8
	a := RandomSPD(t, n, 7)
	b := randVec(n, 11)

	f, err := matrix.LU(a)
	require.NoError(t, err)
	x, err := f.Solve(b)
	require.NoError(t, err)
	require.Less(t, residualNorm(t, a, x, b), 1e-12)

	_, err = f.Solve([]float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
