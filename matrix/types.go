// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write view the kernels, factorizations and solvers accept.
// *Dense is the only implementation in this module; other implementations
// take the slower At-based paths.
type Matrix interface {
	Rows() int
	Cols() int

	// At returns entry (i, j), or ErrOutOfRange outside [0,Rows)×[0,Cols).
	At(i, j int) (float64, error)

	// Set writes entry (i, j); ErrOutOfRange outside the bounds.
	Set(i, j int, v float64) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
