package main

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linsolve/internal/config"
	"github.com/katalvlaran/linsolve/internal/report"
	"github.com/katalvlaran/linsolve/matrix"
	"github.com/katalvlaran/linsolve/solver"
)

// buildSystem generates the demo system: unit diagonal, symmetric
// off-diagonals OffScale·U[0,1), and b ~ U[0,1)ⁿ. With OffScale ≤ 0.5 the
// matrix is diagonally dominant and hence SPD.
func buildSystem(sc config.SystemConfig) (*matrix.Dense, []float64, error) {
	rng := rand.New(rand.NewSource(*sc.Seed))
	n := sc.Dimension

	diag := make([]float64, n)
	off := make([]float64, n-1)
	for i := range diag {
		diag[i] = 1
	}
	for i := range off {
		off[i] = *sc.OffScale * rng.Float64()
	}
	a, err := matrix.NewTridiagonal(diag, off)
	if err != nil {
		return nil, nil, fmt.Errorf("build system: %w", err)
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = rng.Float64()
	}

	return a, b, nil
}

// referenceSolve solves A·x = b with gonum's LU, independently of solver.
func referenceSolve(a *matrix.Dense, b []float64) ([]float64, error) {
	n := a.Rows()
	ga := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		row, err := a.RawRowView(i)
		if err != nil {
			return nil, err
		}
		ga.SetRow(i, row)
	}

	var x mat.VecDense
	if err := x.SolveVec(ga, mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		return nil, fmt.Errorf("reference solve: %w", err)
	}

	return append([]float64(nil), x.RawVector().Data...), nil
}

// strategies lists the solves the demo runs, in print order.
var strategies = []solver.Method{
	solver.MethodConjugateGradient,
	solver.MethodSteepestDescent,
	solver.MethodDirect,
}

// runAll solves the configured system with every strategy and returns the
// report (without CreatedAt, which main stamps).
func runAll(cfg *config.AppConfig) (*report.Report, error) {
	a, b, err := buildSystem(cfg.System)
	if err != nil {
		return nil, err
	}
	ref, err := referenceSolve(a, b)
	if err != nil {
		return nil, err
	}

	sv := solver.New(cfg.SolverOptions()...)
	rep := &report.Report{
		Dimension:      cfg.System.Dimension,
		Tolerance:      sv.Tolerance(),
		PreferCholesky: sv.PreferCholesky(),
		MaxIterations:  sv.MaxIterations(),
		Seed:           *cfg.System.Seed,
	}
	for _, m := range strategies {
		res, err := sv.Solve(m, a, b)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m, err)
		}
		rep.Runs = append(rep.Runs, report.NewRun(res, ref))
	}

	return rep, nil
}
