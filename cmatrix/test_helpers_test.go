// SPDX-License-Identifier: MIT
// Package cmatrix_test contains shared test fixtures.
//
// Purpose:
//   • Provide small deterministic matrices and must-helpers.
//   • Keep all data finite to avoid numeric-policy interference.

package cmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/cmatrix"
)

// tol is the default absolute tolerance for numeric comparisons.
const tol = 1e-10

// hide wraps any Matrix to hide its concrete type and force the At-based
// fallback paths in code under test.
type hide struct{ cmatrix.Matrix }

// MustFromRows builds a Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m cmatrix.Matrix, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomDense fills an n×n Dense with deterministic complex noise in [-1,1)².
func RandomDense(t testing.TB, n int, seed int64) *cmatrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := cmatrix.NewZeros(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, complex(2*rng.Float64()-1, 2*rng.Float64()-1)))
		}
	}

	return m
}

// naiveMul is the reference triple loop used to check the GEMM path.
func naiveMul(t testing.TB, a, b cmatrix.Matrix) [][]complex128 {
	t.Helper()
	out := make([][]complex128, a.Rows())
	for i := range out {
		out[i] = make([]complex128, b.Cols())
		for j := range out[i] {
			for k := 0; k < a.Cols(); k++ {
				out[i][j] += MustAt(t, a, i, k) * MustAt(t, b, k, j)
			}
		}
	}

	return out
}

// requireClose asserts m equals want entry-wise within tol.
func requireClose(t testing.TB, want [][]complex128, m cmatrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i, row := range want {
		require.Equal(t, len(row), m.Cols(), "cols")
		for j, w := range row {
			got := MustAt(t, m, i, j)
			require.Truef(t, cmatrix.Close(got, w, 0, tol), "[%d,%d]: got %v want %v", i, j, got, w)
		}
	}
}
