// SPDX-License-Identifier: MIT

package cmatrix

import (
	"math/cmplx"

	"gonum.org/v1/gonum/floats/scalar"
)

// AllClose reports whether |a[i,j]-b[i,j]| <= atol + rtol*|b[i,j]| for every
// entry (numpy.allclose semantics on complex moduli).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i, av := range da.data {
		if !Close(av, db.data[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}

// Close is the scalar form of AllClose.
func Close(a, b complex128, rtol, atol float64) bool {
	return scalar.EqualWithinAbs(cmplx.Abs(a-b), 0, atol+rtol*cmplx.Abs(b))
}
