// SPDX-License-Identifier: MIT
// Package wick_test: shared fixtures.
//
// A fixture pairs the 1-RDM of a rotated Slater determinant with its full
// state vector, so every engine result can be checked against explicit
// operator application in the fock basis.

package wick_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/cmatrix"
	"github.com/katalvlaran/wick/fock"
	"github.com/katalvlaran/wick/random"
	"github.com/katalvlaran/wick/slater"
)

// rtol and atol bound engine-vs-state-vector deviations.
const (
	rtol = 1e-8
	atol = 1e-8
)

// hide wraps a Matrix to hide its concrete type.
type hide struct{ cmatrix.Matrix }

type fixture struct {
	norb  int
	gamma *cmatrix.Dense
	basis *fock.Basis
	state []complex128
}

// newFixture builds the determinant occ over norb orbitals, rotated by a
// Haar-random unitary drawn from seed (seed < 0 keeps it unrotated).
func newFixture(t testing.TB, norb int, occ slater.Occupation, seed int64) fixture {
	t.Helper()
	var opts []slater.Option
	if seed >= 0 {
		u, err := random.Unitary(norb, random.WithSeed(seed))
		require.NoError(t, err)
		opts = append(opts, slater.WithOrbitalRotation(u))
	}
	gamma, err := slater.OneRDM(norb, occ, opts...)
	require.NoError(t, err)
	basis, state, err := slater.StateVector(norb, occ, opts...)
	require.NoError(t, err)

	return fixture{norb: norb, gamma: gamma, basis: basis, state: state}
}

// oracle evaluates ⟨Ψ|Ô_1⋯Ô_n|Ψ⟩ by applying operators to the state vector.
func (fx fixture) oracle(t testing.TB, hs []cmatrix.Matrix) complex128 {
	t.Helper()
	ops := make([]*fock.OneBodyOperator, len(hs))
	for i, h := range hs {
		op, err := fock.NewOneBodyOperator(h, fx.basis)
		require.NoError(t, err)
		ops[i] = op
	}
	v, err := fock.Expectation(fx.state, ops...)
	require.NoError(t, err)

	return v
}

// randomOps draws k general (non-Hermitian) dim×dim matrices.
func randomOps(t testing.TB, dim, k int, seed int64) []cmatrix.Matrix {
	t.Helper()
	hs := make([]cmatrix.Matrix, k)
	for i := range hs {
		h, err := random.Matrix(dim, random.WithSeed(seed+int64(i)), random.WithScale(0.4))
		require.NoError(t, err)
		hs[i] = h
	}

	return hs
}

// repeat returns [h]*k.
func repeat(h cmatrix.Matrix, k int) []cmatrix.Matrix {
	hs := make([]cmatrix.Matrix, k)
	for i := range hs {
		hs[i] = h
	}

	return hs
}

func mustFromRows(t testing.TB, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func requireClose(t testing.TB, want, got complex128, msgAndArgs ...any) {
	t.Helper()
	require.Truef(t, cmatrix.Close(got, want, rtol, atol),
		"want %v, got %v (%v)", want, got, msgAndArgs)
}
