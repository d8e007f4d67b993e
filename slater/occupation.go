// SPDX-License-Identifier: MIT

package slater

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat/combin"
)

// Occupation lists the occupied spatial orbitals of each spin sector.
// Order inside a sector does not matter.
type Occupation struct {
	Alpha []int `yaml:"alpha"`
	Beta  []int `yaml:"beta"`
}

// Validate checks every index is in [0, norb) and unique within its sector.
func (o Occupation) Validate(norb int) error {
	if norb < 0 {
		return fmt.Errorf("Validate: norb=%d: %w", norb, ErrNegativeOrbitals)
	}
	for _, sector := range []struct {
		name string
		orbs []int
	}{{"alpha", o.Alpha}, {"beta", o.Beta}} {
		seen := make(map[int]bool, len(sector.orbs))
		for _, p := range sector.orbs {
			if p < 0 || p >= norb {
				return fmt.Errorf("Validate: %s orbital %d outside [0,%d): %w", sector.name, p, norb, ErrBadOccupation)
			}
			if seen[p] {
				return fmt.Errorf("Validate: duplicate %s orbital %d: %w", sector.name, p, ErrBadOccupation)
			}
			seen[p] = true
		}
	}

	return nil
}

// Particles returns the total electron count.
func (o Occupation) Particles() int { return len(o.Alpha) + len(o.Beta) }

// Modes returns the occupied spin-orbitals in ascending order: alpha p maps to
// p and beta p to norb+p.
func Modes(norb int, occ Occupation) ([]int, error) {
	if err := occ.Validate(norb); err != nil {
		return nil, err
	}
	modes := make([]int, 0, occ.Particles())
	alpha := slices.Sorted(slices.Values(occ.Alpha))
	beta := slices.Sorted(slices.Values(occ.Beta))
	modes = append(modes, alpha...)
	for _, p := range beta {
		modes = append(modes, norb+p)
	}

	return modes, nil
}

// Dim returns C(norb, nAlpha)·C(norb, nBeta), the number of determinants with
// fixed spin populations.
func Dim(norb, nAlpha, nBeta int) (int, error) {
	if norb < 0 {
		return 0, fmt.Errorf("Dim: norb=%d: %w", norb, ErrNegativeOrbitals)
	}
	if nAlpha < 0 || nAlpha > norb || nBeta < 0 || nBeta > norb {
		return 0, fmt.Errorf("Dim: nelec=(%d,%d), norb=%d: %w", nAlpha, nBeta, norb, ErrBadOccupation)
	}

	return combin.Binomial(norb, nAlpha) * combin.Binomial(norb, nBeta), nil
}
