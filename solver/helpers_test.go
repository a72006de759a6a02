// SPDX-License-Identifier: MIT

package solver_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/matrix"
)

// hide strips the concrete type so the generic Matrix paths run.
type hide struct{ matrix.Matrix }

func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// tridiagonal builds the diagonally dominant system used by the demo:
// unit diagonal, off-diagonals 0.1·U[0,1). Eigenvalues stay in [0.8, 1.2].
func tridiagonal(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	diag := make([]float64, n)
	off := make([]float64, n-1)
	for i := range diag {
		diag[i] = 1
	}
	for i := range off {
		off[i] = 0.1 * rng.Float64()
	}
	m, err := matrix.NewTridiagonal(diag, off)
	require.NoError(t, err)

	return m
}

// randomSPD returns a strictly diagonally dominant symmetric matrix.
func randomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v := rng.Float64() - 0.5
			rows[i][j], rows[j][i] = v, v
		}
		rows[i][i] = float64(n) + rng.Float64()
	}

	return mustRows(t, rows)
}

func randVec(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	v := make([]float64, n)
	for i := range v {
		v[i] = rng.Float64()
	}

	return v
}

// residualNorm recomputes ‖A·x − b‖₂ independently of the solver.
func residualNorm(t testing.TB, a matrix.Matrix, x, b []float64) float64 {
	t.Helper()
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	floats.Sub(ax, b)

	return floats.Norm(ax, 2)
}

// referenceSolve solves the system with gonum's LU as an oracle.
func referenceSolve(t testing.TB, a *matrix.Dense, b []float64) []float64 {
	t.Helper()
	n := a.Rows()
	data := make([]float64, 0, n*n)
	for i := 0; i < n; i++ {
		row, err := a.RawRowView(i)
		require.NoError(t, err)
		data = append(data, row...)
	}
	var x mat.VecDense
	require.NoError(t, x.SolveVec(mat.NewDense(n, n, data), mat.NewVecDense(n, append([]float64(nil), b...))))

	return x.RawVector().Data
}
