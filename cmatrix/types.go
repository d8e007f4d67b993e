// SPDX-License-Identifier: MIT

package cmatrix

// Matrix is a two-dimensional mutable array of complex128 values.
// Every accessor enforces bounds and reports misuse through errors.
//
// Complexity: all methods O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (i, j) or ErrOutOfRange.
	At(i, j int) (complex128, error)

	// Set assigns v at (i, j). Returns ErrOutOfRange or ErrNaNInf.
	Set(i, j int, v complex128) error

	// Clone returns an independent deep copy.
	Clone() Matrix
}
