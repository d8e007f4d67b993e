// SPDX-License-Identifier: MIT
// Package wick: call-local arithmetic over the subset lattice.
//
// Elements are polynomials in nilpotent generators t_0..t_{n-1} (t_i² = 0),
// stored densely by subset mask: coefficient [S] multiplies Π_{i∈S} t_i.
// Multiplication is subset convolution: (a·b)[S] = Σ_{T⊆S} a[T]·b[S∖T].
// Matrix-valued elements keep nil for the zero matrix so sparse supports
// (e.g. powers of a matrix with no constant term) skip work.

package wick

import "github.com/katalvlaran/wick/cmatrix"

// latticeScalar is a scalar polynomial indexed by subset mask.
type latticeScalar []complex128

// latticeMatrix is a matrix-valued polynomial indexed by subset mask.
type latticeMatrix []*cmatrix.Dense

// unitScalar returns the constant polynomial 1 over n generators.
func unitScalar(n int) latticeScalar {
	s := make(latticeScalar, 1<<n)
	s[0] = 1

	return s
}

// subsets calls fn(t, s^t) for every t ⊆ s, including ∅ and s itself.
func subsets(s int, fn func(t, rest int)) {
	for t := s; ; t = (t - 1) & s {
		fn(t, s^t)
		if t == 0 {
			return
		}
	}
}

// mulScalar returns a·b. Complexity: O(3ⁿ).
func mulScalar(a, b latticeScalar) latticeScalar {
	out := make(latticeScalar, len(a))
	for s := range out {
		var acc complex128
		subsets(s, func(t, rest int) {
			acc += a[t] * b[rest]
		})
		out[s] = acc
	}

	return out
}

// axpy performs dst += alpha*x in place.
func (dst latticeScalar) axpy(alpha complex128, x latticeScalar) {
	for i, v := range x {
		dst[i] += alpha * v
	}
}

// mulMatrix returns a·b with matrix products inside each convolution term.
// Complexity: O(3ⁿ) matrix products in the worst case, fewer on sparse supports.
func mulMatrix(a, b latticeMatrix, dim int) (latticeMatrix, error) {
	out := make(latticeMatrix, len(a))
	var err error
	for s := range out {
		subsets(s, func(t, rest int) {
			if err != nil || a[t] == nil || b[rest] == nil {
				return
			}
			if out[s] == nil {
				out[s], _ = cmatrix.NewZeros(dim, dim)
			}
			err = cmatrix.MulAccumulate(out[s], 1, a[t], b[rest])
		})
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// traceOfMul returns tr(a·b) coefficient-wise without materializing the
// product matrices. Complexity: O(3ⁿ·dim²).
func traceOfMul(a, b latticeMatrix) (latticeScalar, error) {
	out := make(latticeScalar, len(a))
	var err error
	for s := range out {
		var acc complex128
		subsets(s, func(t, rest int) {
			if err != nil || a[t] == nil || b[rest] == nil {
				return
			}
			var v complex128
			v, err = cmatrix.TraceOfProduct(a[t], b[rest])
			acc += v
		})
		if err != nil {
			return nil, err
		}
		out[s] = acc
	}

	return out, nil
}

// trace returns tr(a) coefficient-wise.
func trace(a latticeMatrix) (latticeScalar, error) {
	out := make(latticeScalar, len(a))
	var err error
	for s, m := range a {
		if m == nil {
			continue
		}
		if out[s], err = cmatrix.Trace(m); err != nil {
			return nil, err
		}
	}

	return out, nil
}
