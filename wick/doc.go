// SPDX-License-Identifier: MIT

// Package wick evaluates expectation values of products and integer powers of
// fermionic one-body operators on a Slater determinant, using nothing but the
// determinant's one-particle reduced density matrix (1-RDM).
//
// 🚀 What is computed?
//
//	For γ[p,q] = ⟨Ψ|a†_p a_q|Ψ⟩ and one-body operators Ô_k = Σ h_k[p,q] a†_p a_q,
//
//	  ProductExpectation(γ, [h_1..h_n]) = ⟨Ψ|Ô_1 Ô_2 ⋯ Ô_n|Ψ⟩
//	  PowerExpectation(γ, h, k)         = ⟨Ψ|Ô^k|Ψ⟩
//
//	without ever building the many-body state. Wick's theorem reduces every
//	operator string to loops of contractions closed by traces; on a
//	quasi-free state all loops resum into the generating function
//
//	  ⟨Γ(e^{t_1h_1}) ⋯ Γ(e^{t_nh_n})⟩ = det(Q + P e^{t_1h_1} ⋯ e^{t_nh_n}),
//	  P = γᵀ, Q = I − P.
//
// ✨ Key features:
//   - Exact: agrees with brute-force state-vector contraction to round-off.
//   - Order-aware: products are evaluated in the given order, never symmetrized.
//   - Complex throughout; h need not be Hermitian, γ is not checked for physicality.
//   - Spin-agnostic: any square dimension (norb or 2·norb block-spin layout).
//   - Pure functions: no shared state, safe for concurrent use.
//
// ⚙️ Usage:
//
//	val, err := wick.ProductExpectation(gamma, []cmatrix.Matrix{h1, h2, h3})
//	sq, err := wick.PowerExpectation(gamma, h, 2)
//	var dim *wick.DimensionError
//	if errors.As(err, &dim) { ... }
//
// Performance:
//
//   - PowerExpectation: O(k²) products of norb×norb matrices (h^j built incrementally).
//   - ProductExpectation: O(n·3ⁿ) products over the subset lattice of the
//     sequence; bounded by MaxProductFactors.
package wick
