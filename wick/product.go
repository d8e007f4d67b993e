// SPDX-License-Identifier: MIT

package wick

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/wick/cmatrix"
)

// MaxProductFactors bounds the length of a ProductExpectation sequence.
// Lattice storage grows as 2ⁿ matrices and work as 3ⁿ matrix products.
const MaxProductFactors = 16

// ProductExpectation returns ⟨Ψ|Ô_1 Ô_2 ⋯ Ô_n|Ψ⟩ for the Slater determinant
// with 1-RDM oneRDM, where Ô_k = Σ ops[k][p,q] a†_p a_q.
//
// Algorithm:
//
//	With nilpotent t_k, e^{t_kÔ_k} = 1 + t_kÔ_k exactly, so the expectation is
//	the coefficient of t_1⋯t_n in det(I + N), N = P(∏_k(I + t_k h_k) − I),
//	P = γᵀ. The coefficient of N on a subset S = {s_1 < ⋯ < s_m} is
//	P·h_{s_1}⋯h_{s_m}, a contraction chain in operator order. Power sums
//	p_j = tr(N^j) are the sums of contraction loops closed by a trace, and
//	Newton's identities turn them into det(I + N) = Σ_j e_j:
//
//	  e_0 = 1,  j·e_j = Σ_{i=1..j} (−1)^{i−1} e_{j−i} p_i.
//
//	Terms with j > n vanish by nilpotency, so the recursion stops at n.
//
// Inputs:
//   - oneRDM: square γ (not checked for Hermiticity or idempotency).
//   - ops: ordered one-body matrices, each with γ's shape; empty means ⟨Ψ|Ψ⟩ = 1.
//
// Errors:
//   - *DimensionError (ErrDimensionMismatch), ErrNilMatrix, ErrTooManyFactors.
//     All are detected before any arithmetic.
//
// Complexity:
//   - Time O(n·3ⁿ·norb³) worst case, Space O(2ⁿ·norb²).
func ProductExpectation(oneRDM cmatrix.Matrix, ops []cmatrix.Matrix) (complex128, error) {
	gammaT, hs, err := prepare(oneRDM, ops)
	if err != nil {
		return 0, wickErrorf(opProduct, err)
	}
	if len(hs) > MaxProductFactors {
		return 0, wickErrorf(opProduct, fmt.Errorf("%d factors, limit %d: %w", len(hs), MaxProductFactors, ErrTooManyFactors))
	}
	if len(hs) == 0 {
		return 1, nil
	}

	v, err := productExpectation(gammaT, hs)
	if err != nil {
		return 0, wickErrorf(opProduct, err)
	}

	return v, nil
}

// productExpectation runs the lattice recursion on validated operands.
func productExpectation(gammaT *cmatrix.Dense, hs []*cmatrix.Dense) (complex128, error) {
	n := len(hs)
	full := 1<<n - 1
	dim := gammaT.Rows()

	// Stage 1: contraction chains. chain[S] = h_{s_1}⋯h_{s_m} is extended by
	// the highest factor of S, so each chain costs one product.
	chain := make([]*cmatrix.Dense, full+1)
	loops := make(latticeMatrix, full+1)
	var err error
	for s := 1; s <= full; s++ {
		hi := bits.Len(uint(s)) - 1
		if rest := s &^ (1 << hi); rest == 0 {
			chain[s] = hs[hi]
		} else if chain[s], err = cmatrix.Mul(chain[rest], hs[hi]); err != nil {
			return 0, err
		}
		if loops[s], err = cmatrix.Mul(gammaT, chain[s]); err != nil {
			return 0, err
		}
	}

	// Stage 2: power sums p_j = tr(N^j), j = 1..n. The last power is only
	// needed under the trace, so it is never materialized.
	powerSums := make([]latticeScalar, n+1)
	if powerSums[1], err = trace(loops); err != nil {
		return 0, err
	}
	cur := loops
	for j := 2; j <= n; j++ {
		if powerSums[j], err = traceOfMul(cur, loops); err != nil {
			return 0, err
		}
		if j < n {
			if cur, err = mulMatrix(cur, loops, dim); err != nil {
				return 0, err
			}
		}
	}

	// Stage 3: Newton's identities, accumulating det(I + N) = Σ_j e_j.
	elem := make([]latticeScalar, n+1)
	elem[0] = unitScalar(n)
	det := unitScalar(n)
	for j := 1; j <= n; j++ {
		acc := make(latticeScalar, full+1)
		sign := complex(1, 0)
		for i := 1; i <= j; i++ {
			acc.axpy(sign, mulScalar(elem[j-i], powerSums[i]))
			sign = -sign
		}
		elem[j] = make(latticeScalar, full+1)
		elem[j].axpy(complex(1/float64(j), 0), acc)
		det.axpy(1, elem[j])
	}

	return det[full], nil
}
