// SPDX-License-Identifier: MIT

// Package solver: functional configuration of a Solver.
//
// Design goals:
//   - Immutable after New: a Solver can be shared across goroutines.
//   - Deterministic by default: the initial guess is the zero vector unless a
//     fixed vector or a seed is supplied.
//   - Panic only on nonsensical option values (programmer error).
package solver

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute stopping threshold of the iterative
	// methods (update norm for steepest descent, residual norm for CG).
	DefaultTolerance = 1e-8

	// DefaultPreferCholesky selects the Cholesky fast path of SolveDirect when
	// the matrix admits it.
	DefaultPreferCholesky = true

	// DefaultMaxIterations is the fixed iteration cap of the iterative methods.
	DefaultMaxIterations = 20
)

const (
	panicToleranceInvalid = "solver: WithTolerance: tol must be finite and > 0"
	panicMaxIterInvalid   = "solver: WithMaxIterations: n must be > 0"
	panicInitialGuessNil  = "solver: WithInitialGuess: x0 must be non-nil"
)

// Option configures a Solver at construction time.
type Option func(*Options)

// Options holds the resolved Solver configuration.
type Options struct {
	tolerance      float64
	preferCholesky bool
	maxIterations  int

	// initial guess source: x0 wins over seed; neither means zeros.
	x0     []float64
	seed   int64
	seeded bool
}

// WithTolerance sets the absolute convergence tolerance.
// Panics when tol is not finite or not strictly positive.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tolerance = tol }
}

// WithPreferCholesky toggles the Cholesky path of SolveDirect.
// When false, SolveDirect always uses the pivoted LU solve.
func WithPreferCholesky(prefer bool) Option {
	return func(o *Options) { o.preferCholesky = prefer }
}

// WithMaxIterations overrides the iteration cap (DefaultMaxIterations).
// CG terminates in at most n steps in exact arithmetic for an n×n SPD system,
// so a cap of at least n keeps that guarantee for large systems.
func WithMaxIterations(n int) Option {
	if n <= 0 {
		panic(panicMaxIterInvalid)
	}

	return func(o *Options) { o.maxIterations = n }
}

// WithInitialGuess fixes the starting vector of the iterative methods.
// The slice is copied; its length is checked against b on every solve.
func WithInitialGuess(x0 []float64) Option {
	if x0 == nil {
		panic(panicInitialGuessNil)
	}
	buf := make([]float64, len(x0))
	copy(buf, x0)

	return func(o *Options) {
		o.x0 = buf
		o.seeded = false
	}
}

// WithSeed makes the iterative methods start from independent uniform [0,1)
// values drawn from a stream seeded with seed. Every call re-seeds, so the
// same inputs give the same result.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
		o.x0 = nil
	}
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		tolerance:      DefaultTolerance,
		preferCholesky: DefaultPreferCholesky,
		maxIterations:  DefaultMaxIterations,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
