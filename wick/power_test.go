// SPDX-License-Identifier: MIT

package wick_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/cmatrix"
	"github.com/katalvlaran/wick/random"
	"github.com/katalvlaran/wick/slater"
	"github.com/katalvlaran/wick/wick"
)

func TestPowerExpectation_Oracle(t *testing.T) {
	const norb = 5
	fx := newFixture(t, norb, slater.Occupation{Alpha: []int{0, 1, 2}, Beta: []int{0}}, 2024)

	spatial, err := random.Hermitian(norb, random.WithSeed(8), random.WithScale(0.5))
	require.NoError(t, err)
	hermitian, err := slater.ExpandSpin(spatial)
	require.NoError(t, err)
	general := randomOps(t, 2*norb, 1, 99)[0]

	for name, h := range map[string]cmatrix.Matrix{"hermitian": hermitian, "general": general} {
		for k := 0; k <= 6; k++ {
			t.Run(fmt.Sprintf("%s/power=%d", name, k), func(t *testing.T) {
				got, err := wick.PowerExpectation(fx.gamma, h, k)
				require.NoError(t, err)
				requireClose(t, fx.oracle(t, repeat(h, k)), got)
			})
		}
	}
}

func TestPowerExpectation_ZeroPower(t *testing.T) {
	fx := newFixture(t, 3, slater.Occupation{Alpha: []int{1}}, 6)
	h := randomOps(t, 6, 1, 3)[0]
	got, err := wick.PowerExpectation(fx.gamma, h, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), got)
}

// One beta electron on orbital 0 of two, hopping operator squared.
func TestPowerExpectation_HoppingSquared(t *testing.T) {
	gamma, err := slater.OneRDM(2, slater.Occupation{Beta: []int{0}})
	require.NoError(t, err)
	h, err := slater.ExpandSpin(mustFromRows(t, [][]complex128{{0, 1}, {1, 0}}))
	require.NoError(t, err)

	got, err := wick.PowerExpectation(gamma, h, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, real(got), 1e-12)
	assert.InDelta(t, 0.0, imag(got), 1e-12)

	fx := newFixture(t, 2, slater.Occupation{Beta: []int{0}}, -1)
	requireClose(t, fx.oracle(t, repeat(h, 2)), got)
}

func TestPowerExpectation_MatchesRepeatedProduct(t *testing.T) {
	fx := newFixture(t, 3, slater.Occupation{Alpha: []int{0, 1}, Beta: []int{2}}, 55)
	h := randomOps(t, 6, 1, 41)[0]
	for k := 1; k <= 5; k++ {
		pow, err := wick.PowerExpectation(fx.gamma, h, k)
		require.NoError(t, err)
		prod, err := wick.ProductExpectation(fx.gamma, repeat(h, k))
		require.NoError(t, err)
		requireClose(t, prod, pow, "k=%d", k)
	}
}

func TestPowerMoments(t *testing.T) {
	fx := newFixture(t, 3, slater.Occupation{Alpha: []int{0}, Beta: []int{0, 2}}, 71)
	h := randomOps(t, 6, 1, 13)[0]

	moments, err := wick.PowerMoments(fx.gamma, h, 5)
	require.NoError(t, err)
	require.Len(t, moments, 6)
	assert.Equal(t, complex(1, 0), moments[0])
	for k := 1; k <= 5; k++ {
		want, err := wick.PowerExpectation(fx.gamma, h, k)
		require.NoError(t, err)
		requireClose(t, want, moments[k], "k=%d", k)
	}

	only, err := wick.PowerMoments(fx.gamma, h, 0)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1}, only)
}

func TestCumulants(t *testing.T) {
	fx := newFixture(t, 3, slater.Occupation{Alpha: []int{1, 2}, Beta: []int{0}}, 72)
	h := randomOps(t, 6, 1, 14)[0]

	kappa, err := wick.Cumulants(fx.gamma, h, 3)
	require.NoError(t, err)
	require.Len(t, kappa, 3)

	gammaT, err := cmatrix.Transpose(fx.gamma)
	require.NoError(t, err)
	mean, err := cmatrix.TraceOfProduct(gammaT, h)
	require.NoError(t, err)
	requireClose(t, mean, kappa[0])

	mu, err := wick.PowerMoments(fx.gamma, h, 3)
	require.NoError(t, err)
	requireClose(t, mu[2]-mu[1]*mu[1], kappa[1])
	requireClose(t, mu[3]-3*mu[2]*mu[1]+2*mu[1]*mu[1]*mu[1], kappa[2])

	none, err := wick.Cumulants(fx.gamma, h, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPower_Errors(t *testing.T) {
	gamma, err := cmatrix.NewIdentity(4)
	require.NoError(t, err)
	h3, err := cmatrix.NewIdentity(3)
	require.NoError(t, err)

	_, err = wick.PowerExpectation(gamma, gamma, -1)
	require.ErrorIs(t, err, wick.ErrInvalidExponent)
	var ee *wick.ExponentError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, -1, ee.Power)

	_, err = wick.PowerExpectation(gamma, h3, 2)
	assert.ErrorIs(t, err, wick.ErrDimensionMismatch)

	_, err = wick.PowerExpectation(gamma, nil, 2)
	assert.ErrorIs(t, err, wick.ErrNilMatrix)

	_, err = wick.PowerMoments(gamma, gamma, -3)
	assert.ErrorIs(t, err, wick.ErrInvalidExponent)

	_, err = wick.Cumulants(gamma, h3, 2)
	assert.ErrorIs(t, err, wick.ErrDimensionMismatch)
}

func TestPowerExpectation_ZeroModes(t *testing.T) {
	empty, err := cmatrix.NewZeros(0, 0)
	require.NoError(t, err)

	got, err := wick.PowerExpectation(empty, empty, 0)
	require.NoError(t, err)
	assert.Equal(t, complex(1, 0), got)

	got, err = wick.PowerExpectation(empty, empty, 3)
	require.NoError(t, err)
	assert.Equal(t, complex(0, 0), got)
}
