// SPDX-License-Identifier: MIT

package slater

import "errors"

var (
	// ErrBadOccupation marks an orbital index outside [0, norb) or a duplicate.
	ErrBadOccupation = errors.New("slater: invalid occupation")

	// ErrNegativeOrbitals is returned for norb < 0.
	ErrNegativeOrbitals = errors.New("slater: negative number of orbitals")

	// ErrBadRotation is returned when a rotation is not norb×norb.
	ErrBadRotation = errors.New("slater: rotation must be norb×norb")
)
