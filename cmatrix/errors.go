// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// Every kernel returns one of these sentinels, optionally wrapped with an
// operation tag via fmt.Errorf("%s: %w"). Callers match with errors.Is.

package cmatrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested dimensions are out of domain
	// (non-positive for NewDense, negative for NewZeros).
	ErrInvalidDimensions = errors.New("cmatrix: invalid dimensions")

	// ErrBadShape is returned when row-slice input is ragged.
	ErrBadShape = errors.New("cmatrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add of different shapes or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNaNInf signals a NaN or Inf component where finite values are required.
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")
)
