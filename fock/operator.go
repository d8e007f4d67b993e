// SPDX-License-Identifier: MIT

package fock

import (
	"fmt"
	"math/bits"
	"math/cmplx"

	"github.com/katalvlaran/wick/cmatrix"
)

// OneBodyOperator is Ô = Σ h[p,q] a†_p a_q restricted to one Basis.
type OneBodyOperator struct {
	h     [][]complex128
	basis *Basis
}

// NewOneBodyOperator binds h (modes×modes) to basis. h is copied.
//
// Errors: ErrNilBasis, cmatrix.ErrNilMatrix, ErrDimensionMismatch.
func NewOneBodyOperator(h cmatrix.Matrix, basis *Basis) (*OneBodyOperator, error) {
	if basis == nil {
		return nil, ErrNilBasis
	}
	d, err := cmatrix.AsDense(h)
	if err != nil {
		return nil, fmt.Errorf("NewOneBodyOperator: %w", err)
	}
	if d.Rows() != basis.modes || d.Cols() != basis.modes {
		return nil, fmt.Errorf("NewOneBodyOperator: h is %d×%d, modes=%d: %w",
			d.Rows(), d.Cols(), basis.modes, ErrDimensionMismatch)
	}

	return &OneBodyOperator{h: d.Rows2D(), basis: basis}, nil
}

// Basis returns the sector the operator acts on.
func (o *OneBodyOperator) Basis() *Basis { return o.basis }

// parity returns −1 when an odd number of modes below p are occupied in s.
func parity(s uint64, p int) complex128 {
	if bits.OnesCount64(s&(1<<uint(p)-1))%2 == 1 {
		return -1
	}

	return 1
}

// Apply returns Ô·src as a fresh vector.
//
// Implementation:
//   - For every determinant s with non-zero amplitude and every occupied q,
//     annihilate q (sign from modes below q), then create every p that is
//     free in the intermediate (sign from modes below p).
//
// Errors: ErrVectorLength.
// Complexity: O(Dim · N · modes).
func (o *OneBodyOperator) Apply(src []complex128) ([]complex128, error) {
	b := o.basis
	if len(src) != b.Dim() {
		return nil, fmt.Errorf("Apply: len=%d, dim=%d: %w", len(src), b.Dim(), ErrVectorLength)
	}
	dst := make([]complex128, len(src))
	for i, x := range src {
		if x == 0 {
			continue
		}
		s := b.states[i]
		for q := 0; q < b.modes; q++ {
			if s&(1<<uint(q)) == 0 {
				continue
			}
			sq := parity(s, q)
			rest := s &^ (1 << uint(q))
			for p := 0; p < b.modes; p++ {
				hpq := o.h[p][q]
				if hpq == 0 || rest&(1<<uint(p)) != 0 {
					continue
				}
				j := b.index[rest|1<<uint(p)]
				dst[j] += hpq * sq * parity(rest, p) * x
			}
		}
	}

	return dst, nil
}

// Vdot returns ⟨x|y⟩ = Σ conj(x_i)·y_i. Lengths must match.
func Vdot(x, y []complex128) (complex128, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Vdot: %d vs %d: %w", len(x), len(y), ErrVectorLength)
	}
	var acc complex128
	for i, v := range x {
		acc += cmplx.Conj(v) * y[i]
	}

	return acc, nil
}

// Expectation returns ⟨ψ|Ô_1 Ô_2 ⋯ Ô_n|ψ⟩, applying operators right to left.
// With no operators it returns ⟨ψ|ψ⟩.
//
// Errors: ErrVectorLength, ErrDimensionMismatch when operators live on
// different bases.
func Expectation(state []complex128, ops ...*OneBodyOperator) (complex128, error) {
	v := state
	var err error
	for k := len(ops) - 1; k >= 0; k-- {
		if k < len(ops)-1 && ops[k].basis != ops[k+1].basis {
			return 0, fmt.Errorf("Expectation: operator %d: %w", k, ErrDimensionMismatch)
		}
		if v, err = ops[k].Apply(v); err != nil {
			return 0, fmt.Errorf("Expectation: operator %d: %w", k, err)
		}
	}

	return Vdot(state, v)
}
