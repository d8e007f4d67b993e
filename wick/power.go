// SPDX-License-Identifier: MIT

package wick

import (
	"fmt"

	"github.com/katalvlaran/wick/cmatrix"
)

// PowerExpectation returns ⟨Ψ|Ô^power|Ψ⟩ for Ô = Σ op[p,q] a†_p a_q.
//
// It is semantically ProductExpectation(oneRDM, [op]*power) but runs a
// dedicated recursion over h^1..h^power (built incrementally), costing
// O(power²) matrix products instead of the lattice's exponential growth.
// power == 0 yields 1 regardless of op.
//
// Errors:
//   - *ExponentError (ErrInvalidExponent) for power < 0.
//   - *DimensionError (ErrDimensionMismatch), ErrNilMatrix.
func PowerExpectation(oneRDM, op cmatrix.Matrix, power int) (complex128, error) {
	moments, err := powerMoments(oneRDM, op, power)
	if err != nil {
		return 0, wickErrorf(opPower, err)
	}

	return moments[power], nil
}

// PowerMoments returns ⟨Ô^k⟩ for k = 0..maxPower from a single pass of the
// power recursion. moments[0] is always 1.
//
// Errors: same as PowerExpectation, with maxPower in place of power.
func PowerMoments(oneRDM, op cmatrix.Matrix, maxPower int) ([]complex128, error) {
	moments, err := powerMoments(oneRDM, op, maxPower)
	if err != nil {
		return nil, wickErrorf(opMoments, err)
	}

	return moments, nil
}

// Cumulants returns the connected moments κ_1..κ_order of Ô on the reference
// state: κ_1 = ⟨Ô⟩, κ_2 = ⟨Ô²⟩ − ⟨Ô⟩², and so on. Index 0 holds κ_1.
//
// Errors: same as PowerExpectation, with order in place of power.
func Cumulants(oneRDM, op cmatrix.Matrix, order int) ([]complex128, error) {
	gammaT, h, err := preparePower(oneRDM, op, order)
	if err != nil {
		return nil, wickErrorf(opCumulants, err)
	}
	kappa, err := cumulants(gammaT, h, order)
	if err != nil {
		return nil, wickErrorf(opCumulants, err)
	}

	return kappa, nil
}

// preparePower validates the exponent and the two matrix operands.
func preparePower(oneRDM, op cmatrix.Matrix, power int) (*cmatrix.Dense, *cmatrix.Dense, error) {
	if power < 0 {
		return nil, nil, &ExponentError{Power: power}
	}
	gammaT, hs, err := prepare(oneRDM, []cmatrix.Matrix{op})
	if err != nil {
		return nil, nil, err
	}

	return gammaT, hs[0], nil
}

// powerMoments converts cumulants into raw moments with the standard
// recursion μ_{m+1} = Σ_{j=0..m} C(m,j) κ_{j+1} μ_{m−j}, μ_0 = 1.
func powerMoments(oneRDM, op cmatrix.Matrix, maxPower int) ([]complex128, error) {
	gammaT, h, err := preparePower(oneRDM, op, maxPower)
	if err != nil {
		return nil, err
	}
	kappa, err := cumulants(gammaT, h, maxPower)
	if err != nil {
		return nil, err
	}

	mu := make([]complex128, maxPower+1)
	mu[0] = 1
	binom := []float64{1}
	for m := 0; m < maxPower; m++ {
		var acc complex128
		for j := 0; j <= m; j++ {
			acc += complex(binom[j], 0) * kappa[j] * mu[m-j]
		}
		mu[m+1] = acc
		binom = nextBinomialRow(binom)
	}

	return mu, nil
}

// cumulants evaluates κ_1..κ_order of Ô on the state with P = gammaT.
//
// Derivation: D(t) = ⟨e^{tÔ}⟩ = det(Q + P e^{th}). Writing
// Q + P e^{th} = (P + Q e^{−th}) e^{th} and using cyclicity of the trace,
//
//	d/dt log D = tr(W(t)⁻¹ P h),  W(t) = I + Q(e^{−th} − I).
//
// Expanding W⁻¹ = Σ_m U_m t^m / m! gives U_0 = I and
//
//	U_m = Σ_{j=1..m} (−1)^{j+1} C(m,j) Q h^j U_{m−j},
//
// and the cumulants are κ_{m+1} = tr(U_m P h).
//
// Complexity: O(order²) matrix products; every Q·h^j is computed once.
func cumulants(gammaT, h *cmatrix.Dense, order int) ([]complex128, error) {
	kappa := make([]complex128, order)
	if order == 0 {
		return kappa, nil
	}
	dim := gammaT.Rows()

	id, err := cmatrix.NewIdentity(dim)
	if err != nil {
		return nil, err
	}
	q, err := cmatrix.Sub(id, gammaT)
	if err != nil {
		return nil, err
	}
	ph, err := cmatrix.Mul(gammaT, h)
	if err != nil {
		return nil, err
	}
	if kappa[0], err = cmatrix.Trace(ph); err != nil {
		return nil, err
	}

	us := make([]*cmatrix.Dense, order)
	qh := make([]*cmatrix.Dense, order) // qh[j] = Q·h^j, j >= 1
	us[0] = id
	hPow := h
	binom := []float64{1}
	for m := 1; m < order; m++ {
		if m > 1 {
			if hPow, err = cmatrix.Mul(hPow, h); err != nil {
				return nil, err
			}
		}
		if qh[m], err = cmatrix.Mul(q, hPow); err != nil {
			return nil, err
		}

		binom = nextBinomialRow(binom) // C(m, ·)
		u, _ := cmatrix.NewZeros(dim, dim)
		sign := complex(1, 0)
		for j := 1; j <= m; j++ {
			if err = cmatrix.MulAccumulate(u, sign*complex(binom[j], 0), qh[j], us[m-j]); err != nil {
				return nil, fmt.Errorf("U_%d: %w", m, err)
			}
			sign = -sign
		}
		us[m] = u
		if kappa[m], err = cmatrix.TraceOfProduct(u, ph); err != nil {
			return nil, err
		}
	}

	return kappa, nil
}

// nextBinomialRow maps Pascal row m to row m+1. Entries are exact in float64
// up to 2⁵³.
func nextBinomialRow(row []float64) []float64 {
	next := make([]float64, len(row)+1)
	next[0], next[len(row)] = 1, 1
	for j := 1; j < len(row); j++ {
		next[j] = row[j-1] + row[j]
	}

	return next
}
