// Package wick computes expectation values of fermionic one-body operators on
// a single Slater determinant, from nothing but its one-particle reduced
// density matrix.
//
// 🚀 What is inside?
//
//	A small, dependency-light toolkit that brings together:
//		• Contraction engine: ⟨Ô_1⋯Ô_n⟩ and ⟨Ô^k⟩ via Wick's theorem
//		• Moments & cumulants: all ⟨Ô^k⟩ (and κ_k) from one recursion
//		• Reference states: 1-RDMs and state vectors of rotated determinants
//		• Brute-force oracle: determinant bases and one-body operators
//		• Complex matrices: dense storage, GEMM, traces, determinants
//
// ✨ Why wick?
//
//   - Exact – agrees with explicit state-vector contraction to round-off
//   - Polynomial powers – ⟨Ô^k⟩ in O(k²) matrix products
//   - Pure functions – no shared state, safe for concurrent use
//   - Explicit errors – sentinels plus typed errors with context
//
// Packages:
//
//	wick/     — ProductExpectation, PowerExpectation, PowerMoments, Cumulants
//	slater/   — occupations, orbital rotations, 1-RDMs and state vectors
//	fock/     — fixed-particle-number determinant basis, one-body operators
//	cmatrix/  — complex128 dense matrices on top of gonum BLAS
//	random/   — reproducible random matrices and Haar unitaries
//	cmd/wickcalc — YAML-driven command-line evaluator
//
// Quick example:
//
//	gamma, _ := slater.OneRDM(2, slater.Occupation{Beta: []int{0}})
//	h, _ := slater.ExpandSpin(hop)
//	v, _ := wick.PowerExpectation(gamma, h, 2) // 1
//
//	go get github.com/katalvlaran/wick
package wick
