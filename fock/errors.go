// SPDX-License-Identifier: MIT

package fock

import "errors"

var (
	// ErrTooManyModes is returned when modes exceeds MaxModes.
	ErrTooManyModes = errors.New("fock: too many modes")

	// ErrBadParticleNumber is returned for particles outside [0, modes].
	ErrBadParticleNumber = errors.New("fock: particle number out of range")

	// ErrDimensionMismatch is returned when a one-body matrix is not modes×modes.
	ErrDimensionMismatch = errors.New("fock: dimension mismatch")

	// ErrVectorLength is returned when a state vector length differs from Dim().
	ErrVectorLength = errors.New("fock: state vector length mismatch")

	// ErrNilBasis is returned when a nil basis is supplied.
	ErrNilBasis = errors.New("fock: nil basis")
)
