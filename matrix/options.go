// SPDX-License-Identifier: MIT

// Package matrix: options shared by the builders and by Cholesky.
//
// Two knobs exist: the symmetry tolerance Cholesky applies before factoring,
// and whether builders reject NaN/Inf entries. Both default to the strict
// setting. Invalid values panic at option construction.
package matrix

import "math"

const (
	// DefaultEpsilon is the absolute tolerance used by the symmetry check
	// that guards Cholesky: |A[i,j] - A[j,i]| ≤ eps·max(1, |A[i,j]|, |A[j,i]|).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set and
	// in builders.
	DefaultValidateNaNInf = true
)

const panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"

// Option adjusts Options; applying the same Option twice is harmless.
type Option func(*Options)

// Options is the resolved configuration; see NewOptions.
type Options struct {
	eps            float64 // >= 0; DefaultEpsilon
	validateNaNInf bool    // DefaultValidateNaNInf
}

// WithEpsilon sets the tolerance used by structural checks (symmetry).
// Panics when eps is NaN, ±Inf or negative.
//
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on newly built matrices.
// Existing matrices keep their policy.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// Epsilon reports the resolved symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// ValidateNaNInf reports whether builders reject non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// NewOptions resolves option setters against documented defaults.
// Last-writer-wins for repeated setters.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided setters on top of defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:            DefaultEpsilon,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // in order, later options override
		}
	}

	return o
}
