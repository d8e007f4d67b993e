// SPDX-License-Identifier: MIT

package wick

import (
	"fmt"

	"github.com/katalvlaran/wick/cmatrix"
)

// Operation tags for error wrapping.
const (
	opProduct   = "ProductExpectation"
	opPower     = "PowerExpectation"
	opMoments   = "PowerMoments"
	opCumulants = "Cumulants"
)

// wickErrorf wraps a non-nil err with an operation tag.
func wickErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil catches both untyped and typed-nil *Dense operands.
func isNil(m cmatrix.Matrix) bool {
	return cmatrix.ValidateNotNil(m) != nil
}

// prepare validates every operand before any arithmetic and returns the
// transposed 1-RDM P = γᵀ together with Dense views of the operators.
//
// Validation order: 1-RDM nil → 1-RDM square → each operator nil → each
// operator shape. Inputs are never mutated; operator views may alias the
// caller's *Dense values.
func prepare(oneRDM cmatrix.Matrix, ops []cmatrix.Matrix) (*cmatrix.Dense, []*cmatrix.Dense, error) {
	if isNil(oneRDM) {
		return nil, nil, fmt.Errorf("%s: %w", OperandOneRDM, ErrNilMatrix)
	}
	n := oneRDM.Rows()
	if oneRDM.Cols() != n {
		return nil, nil, &DimensionError{Operand: OperandOneRDM, Index: -1, Rows: n, Cols: oneRDM.Cols(), Want: n}
	}
	for i, op := range ops {
		if isNil(op) {
			return nil, nil, fmt.Errorf("%s %d: %w", OperandOneBody, i, ErrNilMatrix)
		}
		if op.Rows() != n || op.Cols() != n {
			return nil, nil, &DimensionError{Operand: OperandOneBody, Index: i, Rows: op.Rows(), Cols: op.Cols(), Want: n}
		}
	}

	gammaT, err := cmatrix.Transpose(oneRDM)
	if err != nil {
		return nil, nil, err
	}
	hs := make([]*cmatrix.Dense, len(ops))
	for i, op := range ops {
		if hs[i], err = cmatrix.AsDense(op); err != nil {
			return nil, nil, err
		}
	}

	return gammaT, hs, nil
}
