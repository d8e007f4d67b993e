// SPDX-License-Identifier: MIT

// Package random generates reproducible complex fixtures: Gaussian matrices,
// Hermitian matrices and Haar-distributed unitaries (orbital rotations).
//
// Every generator requires an explicit RNG, supplied with WithSeed or
// WithRand, so fixtures are deterministic for a fixed seed:
//
//	u, err := random.Unitary(4, random.WithSeed(42))
//	h, err := random.Matrix(4, random.WithSeed(7))
package random
