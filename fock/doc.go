// SPDX-License-Identifier: MIT

// Package fock is the brute-force many-body layer: the determinant basis of a
// fixed particle-number sector and one-body operators acting on it.
//
// Determinants are bitstrings over `modes` spin-orbitals; bit p set means mode
// p is occupied. The basis state for bits s_1 < s_2 < ⋯ < s_N is
// a†_{s_1} a†_{s_2} ⋯ a†_{s_N}|0⟩, so moving an operator onto mode p costs the
// Jordan–Wigner sign (−1)^{#occupied modes below p}.
//
// The package exists to produce ground truth: state vectors grow as
// C(modes, N), so it is meant for small systems, tests and verification.
//
//	basis, _ := fock.NewBasis(4, 2)
//	op, _ := fock.NewOneBodyOperator(h, basis)
//	val, _ := fock.Expectation(state, op, op)
package fock
