// Package solver - initial-guess source for the iterative methods.
//
// Goals:
//   - Determinism: same seed ⇒ identical starting vector across runs.
//   - Concurrency: a fresh *rand.Rand per call; nothing shared between calls.
package solver

import (
	"fmt"
	"math/rand"
)

// initialGuess returns the starting vector for an n-dimensional system.
// Policy: fixed x0 if configured, else seeded uniform [0,1), else zeros.
//
// Complexity: O(n).
func (s *Solver) initialGuess(op string, n int) ([]float64, error) {
	x := make([]float64, n)
	switch {
	case s.opts.x0 != nil:
		if len(s.opts.x0) != n {
			return nil, solverErrorf(op, ErrInvalidDimension,
				fmt.Errorf("initial guess has length %d, want %d", len(s.opts.x0), n))
		}
		copy(x, s.opts.x0)
	case s.opts.seeded:
		// math/rand.Rand is not goroutine-safe; keep it local to the call.
		rng := rand.New(rand.NewSource(s.opts.seed))
		for i := range x {
			x[i] = rng.Float64()
		}
	}

	return x, nil
}
