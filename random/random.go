// SPDX-License-Identifier: MIT

package random

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/katalvlaran/wick/cmatrix"
)

const (
	methodMatrix    = "Matrix"
	methodHermitian = "Hermitian"
	methodUnitary   = "Unitary"
)

// resolve validates the size and the RNG presence for method.
func resolve(method string, n int, opts []Option) (config, error) {
	if n < 0 {
		return config{}, fmt.Errorf("%s: n=%d: %w", method, n, ErrNegativeSize)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return config{}, fmt.Errorf("%s: %w", method, ErrNeedRandSource)
	}

	return cfg, nil
}

// gaussian draws re + i·im with independent standard normal components.
func gaussian(rng *rand.Rand) complex128 {
	return complex(rng.NormFloat64(), rng.NormFloat64())
}

// gaussianRows draws an n×n complex Gaussian array in row-major order.
func gaussianRows(rng *rand.Rand, n int, scale float64) [][]complex128 {
	rows := make([][]complex128, n)
	s := complex(scale, 0)
	for i := range rows {
		rows[i] = make([]complex128, n)
		for j := range rows[i] {
			rows[i][j] = s * gaussian(rng)
		}
	}

	return rows
}

// Matrix returns an n×n matrix with i.i.d. complex standard normal entries
// (times the configured scale). Not Hermitian in general.
//
// Errors: ErrNegativeSize, ErrNeedRandSource.
// Complexity: O(n²).
func Matrix(n int, opts ...Option) (*cmatrix.Dense, error) {
	cfg, err := resolve(methodMatrix, n, opts)
	if err != nil {
		return nil, err
	}

	return cmatrix.NewFromRows(gaussianRows(cfg.rng, n, cfg.scale))
}

// Hermitian returns (A + A†)/2 for a Gaussian A.
func Hermitian(n int, opts ...Option) (*cmatrix.Dense, error) {
	cfg, err := resolve(methodHermitian, n, opts)
	if err != nil {
		return nil, err
	}
	a := gaussianRows(cfg.rng, n, cfg.scale)
	for i := 0; i < n; i++ {
		a[i][i] = complex(real(a[i][i]), 0)
		for j := i + 1; j < n; j++ {
			v := (a[i][j] + cmplx.Conj(a[j][i])) / 2
			a[i][j], a[j][i] = v, cmplx.Conj(v)
		}
	}

	return cmatrix.NewFromRows(a)
}

// Unitary returns a Haar-distributed n×n unitary.
//
// Implementation:
//   - Stage 1: draw a complex Gaussian matrix Z.
//   - Stage 2: orthonormalize its columns by modified Gram–Schmidt, run twice
//     per column to stay orthogonal to working precision.
//
// Gram–Schmidt yields Z = QR with a positive real diagonal on R, which is the
// phase convention that makes Q Haar-distributed.
//
// Errors: ErrNegativeSize, ErrNeedRandSource.
// Complexity: O(n³).
func Unitary(n int, opts ...Option) (*cmatrix.Dense, error) {
	cfg, err := resolve(methodUnitary, n, opts)
	if err != nil {
		return nil, err
	}

	// cols[k] is column k of Z, orthonormalized in place.
	cols := make([][]complex128, n)
	for k := range cols {
		cols[k] = make([]complex128, n)
	}
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			cols[k][i] = gaussian(cfg.rng)
		}
	}
	for k := 0; k < n; k++ {
		for pass := 0; pass < 2; pass++ {
			for j := 0; j < k; j++ {
				proj := dot(cols[j], cols[k])
				for i := range cols[k] {
					cols[k][i] -= proj * cols[j][i]
				}
			}
		}
		norm := math.Sqrt(real(dot(cols[k], cols[k])))
		if norm == 0 {
			// Probability zero for Gaussian input.
			return nil, fmt.Errorf("%s: degenerate column %d", methodUnitary, k)
		}
		for i := range cols[k] {
			cols[k][i] /= complex(norm, 0)
		}
	}

	rows := make([][]complex128, n)
	for i := range rows {
		rows[i] = make([]complex128, n)
		for k := 0; k < n; k++ {
			rows[i][k] = cols[k][i]
		}
	}

	return cmatrix.NewFromRows(rows)
}

// dot returns the inner product ⟨x|y⟩ = Σ conj(x_i)·y_i.
func dot(x, y []complex128) complex128 {
	var acc complex128
	for i, v := range x {
		acc += cmplx.Conj(v) * y[i]
	}

	return acc
}
