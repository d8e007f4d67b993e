// SPDX-License-Identifier: MIT

// Package slater builds single Slater determinants over norb spatial orbitals
// with two spin sectors, in the forms the rest of the module consumes:
//
//   - OneRDM: the one-particle reduced density matrix γ[p,q] = ⟨a†_p a_q⟩,
//     the only input the wick engine needs.
//   - StateVector: the full amplitude vector over a fock.Basis, used as
//     ground truth.
//
// Spin-orbitals use the block-spin layout: alpha orbital p is mode p, beta
// orbital p is mode norb+p. Orbital rotations are unitaries U whose column k
// is the occupied orbital φ_k = Σ_p U[p,k] a†_p; the identity rotation gives
// the plain occupation-number determinant.
//
//	occ := slater.Occupation{Alpha: []int{0, 1}, Beta: []int{0}}
//	gamma, _ := slater.OneRDM(4, occ, slater.WithOrbitalRotation(u))
package slater
