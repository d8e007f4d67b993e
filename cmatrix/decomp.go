// SPDX-License-Identifier: MIT

package cmatrix

import "math/cmplx"

// Det returns the determinant of a square matrix (1 for 0×0).
//
// Implementation:
//   - Stage 1: copy into a scratch Dense (input is never mutated).
//   - Stage 2: Doolittle elimination with partial pivoting on |a[k,k]|;
//     every row swap flips the sign.
//   - Stage 3: product of pivots; an exactly zero pivot column short-circuits to 0.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Singular input is not an error here: the determinant is simply 0.
func Det(m Matrix) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	src, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	a := src.clone()
	n := a.r
	det := complex(1, 0)
	var (
		i, j, k, p int
		best, mag  float64
		f          complex128
	)
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, cmplx.Abs(a.data[k*n+k])
		for i = k + 1; i < n; i++ {
			if mag = cmplx.Abs(a.data[i*n+k]); mag > best {
				p, best = i, mag
			}
		}
		if best == 0 {
			return 0, nil
		}
		if p != k {
			for j = 0; j < n; j++ {
				a.data[k*n+j], a.data[p*n+j] = a.data[p*n+j], a.data[k*n+j]
			}
			det = -det
		}
		det *= a.data[k*n+k]
		for i = k + 1; i < n; i++ {
			f = a.data[i*n+k] / a.data[k*n+k]
			if f == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a.data[i*n+j] -= f * a.data[k*n+j]
			}
		}
	}

	return det, nil
}
