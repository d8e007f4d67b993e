// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/wick/cmatrix"
)

func TestValidators(t *testing.T) {
	sq := RandomDense(t, 2, 1)
	rect := MustFromRows(t, [][]complex128{{1, 2, 3}})

	assert.NoError(t, cmatrix.ValidateNotNil(sq))
	assert.ErrorIs(t, cmatrix.ValidateNotNil(nil), cmatrix.ErrNilMatrix)

	assert.NoError(t, cmatrix.ValidateSquare(sq))
	assert.ErrorIs(t, cmatrix.ValidateSquare(rect), cmatrix.ErrNonSquare)

	assert.NoError(t, cmatrix.ValidateSameShape(sq, sq))
	assert.ErrorIs(t, cmatrix.ValidateSameShape(sq, rect), cmatrix.ErrDimensionMismatch)

	assert.NoError(t, cmatrix.ValidateMulCompatible(rect, MustFromRows(t, [][]complex128{{1}, {2}, {3}})))
	assert.ErrorIs(t, cmatrix.ValidateMulCompatible(sq, rect), cmatrix.ErrDimensionMismatch)
}

func TestAllClose(t *testing.T) {
	a := MustFromRows(t, [][]complex128{{1, 1i}})
	b := MustFromRows(t, [][]complex128{{1 + 1e-12, 1i}})
	c := MustFromRows(t, [][]complex128{{1.1, 1i}})

	ok, err := cmatrix.AllClose(a, b, 0, 1e-9)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = cmatrix.AllClose(a, c, 0, 1e-9)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, err = cmatrix.AllClose(a, RandomDense(t, 2, 1), 0, 1)
	assert.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}
