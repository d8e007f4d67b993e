// SPDX-License-Identifier: MIT
// Package wick: sentinel errors and typed failures.
// Typed errors unwrap to their sentinel, so callers may use either
// errors.Is(err, ErrDimensionMismatch) or errors.As(err, &*DimensionError).

package wick

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch indicates a non-square 1-RDM or a one-body matrix
	// whose shape differs from the 1-RDM's.
	ErrDimensionMismatch = errors.New("wick: dimension mismatch")

	// ErrInvalidExponent indicates a negative power.
	ErrInvalidExponent = errors.New("wick: invalid exponent")

	// ErrNilMatrix indicates a nil 1-RDM or one-body matrix.
	ErrNilMatrix = errors.New("wick: nil matrix")

	// ErrTooManyFactors indicates a product longer than MaxProductFactors.
	ErrTooManyFactors = errors.New("wick: too many factors in product")
)

// Operand names the argument a DimensionError refers to.
type Operand string

const (
	// OperandOneRDM is the one-particle reduced density matrix.
	OperandOneRDM Operand = "one-rdm"
	// OperandOneBody is a one-body coefficient matrix.
	OperandOneBody Operand = "one-body"
)

// DimensionError reports an operand whose shape is inconsistent with the
// 1-RDM. Index is the operator position (-1 for the 1-RDM itself); Want is
// the expected square dimension.
type DimensionError struct {
	Operand    Operand
	Index      int
	Rows, Cols int
	Want       int
}

func (e *DimensionError) Error() string {
	if e.Operand == OperandOneRDM {
		return fmt.Sprintf("wick: one-rdm is %d×%d, must be square", e.Rows, e.Cols)
	}

	return fmt.Sprintf("wick: one-body matrix %d is %d×%d, want %d×%d",
		e.Index, e.Rows, e.Cols, e.Want, e.Want)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// ExponentError reports a negative power.
type ExponentError struct {
	Power int
}

func (e *ExponentError) Error() string {
	return fmt.Sprintf("wick: power %d is negative", e.Power)
}

// Unwrap exposes ErrInvalidExponent to errors.Is.
func (e *ExponentError) Unwrap() error { return ErrInvalidExponent }
