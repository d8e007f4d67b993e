// SPDX-License-Identifier: MIT

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wick/slater"
)

func TestLoadProblem(t *testing.T) {
	p, err := LoadProblem("testdata/hopping.yaml")
	require.NoError(t, err)

	assert.Equal(t, 2, p.Norb)
	assert.Equal(t, []int{0}, p.Occupied.Beta)
	assert.Empty(t, p.Occupied.Alpha)
	assert.True(t, p.SpinExpand)
	require.Len(t, p.Jobs, 4)
	require.NotNil(t, p.Jobs[0].Power)
	assert.Equal(t, 2, *p.Jobs[0].Power)
	assert.Nil(t, p.Jobs[1].Power)
	assert.Equal(t, Complex(complex(1, -1)), p.Matrices["twist"][0][1])
	assert.Equal(t, Complex(complex(-0.5, 0)), p.Matrices["onsite"][1][1])

	ms, err := p.matrices()
	require.NoError(t, err)
	assert.Equal(t, 4, ms["hop"].Rows())
}

func TestLoadProblem_Missing(t *testing.T) {
	_, err := LoadProblem("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestParseProblem_Errors(t *testing.T) {
	cases := map[string]struct {
		yaml string
		want error
	}{
		"unknown field": {
			yaml: "norb: 1\nbogus: 3\njobs: [{name: a}]\n",
			want: ErrInvalidProblem,
		},
		"bad complex": {
			yaml: "norb: 1\nmatrices: {h: [[\"1+\", \"0\"], [\"0\", \"0\"]]}\njobs: [{name: a, operators: [h]}]\n",
			want: ErrInvalidProblem,
		},
		"bad occupation": {
			yaml: "norb: 1\noccupied: {alpha: [1]}\njobs: [{name: a}]\n",
			want: slater.ErrBadOccupation,
		},
		"no jobs": {
			yaml: "norb: 1\n",
			want: ErrInvalidProblem,
		},
		"unknown matrix": {
			yaml: "norb: 1\njobs: [{name: a, operators: [h]}]\n",
			want: ErrUnknownMatrix,
		},
		"power with two operators": {
			yaml: "norb: 1\nmatrices: {h: [[\"1\", \"0\"], [\"0\", \"1\"]]}\njobs: [{name: a, operators: [h, h], power: 2}]\n",
			want: ErrInvalidProblem,
		},
		"wrong shape": {
			yaml: "norb: 1\nspin_expand: true\nmatrices: {h: [[\"1\", \"0\"], [\"0\", \"1\"]]}\njobs: [{name: a, operators: [h]}]\n",
			want: ErrInvalidProblem,
		},
		"exclusive spin flags": {
			yaml: "norb: 1\nspin_expand: true\nspin_summed: true\njobs: [{name: a}]\n",
			want: ErrInvalidProblem,
		},
		"duplicate job": {
			yaml: "norb: 1\njobs: [{name: a}, {name: a}]\n",
			want: ErrInvalidProblem,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseProblem([]byte(tc.yaml))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseProblem_SpinSummedDim(t *testing.T) {
	p, err := ParseProblem([]byte("norb: 2\nspin_summed: true\nmatrices: {n: [[\"1\", \"0\"], [\"0\", \"1\"]]}\njobs: [{name: a, operators: [n]}]\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, p.Dim())
}
