// SPDX-License-Identifier: MIT

package slater

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/wick/cmatrix"
	"github.com/katalvlaran/wick/fock"
)

// orbitals returns C, the 2norb×N coefficient matrix whose column k is the
// k-th occupied spin-orbital in the block-spin layout, as row slices.
func orbitals(norb int, occ Occupation, cfg config) ([][]complex128, error) {
	modes, err := Modes(norb, occ)
	if err != nil {
		return nil, err
	}
	ua, err := rotation(norb, cfg.alpha)
	if err != nil {
		return nil, fmt.Errorf("alpha: %w", err)
	}
	ub, err := rotation(norb, cfg.beta)
	if err != nil {
		return nil, fmt.Errorf("beta: %w", err)
	}
	u, err := cmatrix.BlockDiag(ua, ub)
	if err != nil {
		return nil, err
	}
	full := u.Rows2D()

	c := make([][]complex128, 2*norb)
	for p := range c {
		c[p] = make([]complex128, len(modes))
		for k, m := range modes {
			c[p][k] = full[p][m]
		}
	}

	return c, nil
}

// rotation returns u as a norb×norb Dense, or the identity when u is nil.
func rotation(norb int, u cmatrix.Matrix) (*cmatrix.Dense, error) {
	if u == nil {
		return cmatrix.NewIdentity(norb)
	}
	d, err := cmatrix.AsDense(u)
	if err != nil {
		return nil, err
	}
	if d.Rows() != norb || d.Cols() != norb {
		return nil, fmt.Errorf("got %d×%d, norb=%d: %w", d.Rows(), d.Cols(), norb, ErrBadRotation)
	}

	return d, nil
}

// OneRDM returns γ[p,q] = Σ_k conj(C[p,k])·C[q,k] over the occupied orbitals.
//
// The result is 2norb×2norb in the block-spin layout, or norb×norb with
// WithSpinSummed. Rotations are assumed unitary and are not checked.
//
// Errors: ErrNegativeOrbitals, ErrBadOccupation, ErrBadRotation.
// Complexity: O(norb²·N).
func OneRDM(norb int, occ Occupation, opts ...Option) (*cmatrix.Dense, error) {
	cfg := newConfig(opts...)
	c, err := orbitals(norb, occ, cfg)
	if err != nil {
		return nil, fmt.Errorf("OneRDM: %w", err)
	}

	dim := 2 * norb
	gamma := make([][]complex128, dim)
	for p := range gamma {
		gamma[p] = make([]complex128, dim)
		for q := range gamma[p] {
			var acc complex128
			for k := range c[p] {
				acc += cmplx.Conj(c[p][k]) * c[q][k]
			}
			gamma[p][q] = acc
		}
	}

	if cfg.spinSummed {
		summed := make([][]complex128, norb)
		for p := range summed {
			summed[p] = make([]complex128, norb)
			for q := range summed[p] {
				summed[p][q] = gamma[p][q] + gamma[norb+p][norb+q]
			}
		}
		gamma = summed
	}

	return cmatrix.NewFromRows(gamma)
}

// StateVector expands the determinant over the N-particle basis of all 2norb
// spin-orbitals. The amplitude on determinant S = {s_1 < ⋯ < s_N} is
// det(C[S, :]); sectors with other spin populations carry zero amplitude
// unless a rotation mixes them.
//
// Errors: ErrNegativeOrbitals, ErrBadOccupation, ErrBadRotation, and
// fock.ErrTooManyModes for norb > fock.MaxModes/2.
// Complexity: O(C(2norb, N)·N³).
func StateVector(norb int, occ Occupation, opts ...Option) (*fock.Basis, []complex128, error) {
	cfg := newConfig(opts...)
	c, err := orbitals(norb, occ, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("StateVector: %w", err)
	}
	n := occ.Particles()
	basis, err := fock.NewBasis(2*norb, n)
	if err != nil {
		return nil, nil, fmt.Errorf("StateVector: %w", err)
	}

	vec := make([]complex128, basis.Dim())
	minor := make([][]complex128, n)
	for i := range vec {
		bits := basis.Bits(i)
		row := 0
		for p := 0; p < 2*norb; p++ {
			if bits&(1<<uint(p)) != 0 {
				minor[row] = c[p]
				row++
			}
		}
		m, err := cmatrix.NewFromRows(minor)
		if err != nil {
			return nil, nil, fmt.Errorf("StateVector: %w", err)
		}
		if vec[i], err = cmatrix.Det(m); err != nil {
			return nil, nil, fmt.Errorf("StateVector: %w", err)
		}
	}

	return basis, vec, nil
}

// ExpandSpin returns block_diag(h, h): a spin-free norb×norb one-body tensor
// lifted to the 2norb block-spin layout.
//
// Errors: cmatrix.ErrNilMatrix, cmatrix.ErrNonSquare.
func ExpandSpin(h cmatrix.Matrix) (*cmatrix.Dense, error) {
	if err := cmatrix.ValidateSquare(h); err != nil {
		return nil, fmt.Errorf("ExpandSpin: %w", err)
	}

	return cmatrix.BlockDiag(h, h)
}
