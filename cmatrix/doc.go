// SPDX-License-Identifier: MIT

// Package cmatrix provides dense complex128 matrices and the small set of
// linear-algebra kernels the expectation engine is built from.
//
// What & Why:
//
//	One-body coefficient matrices and one-particle density matrices are
//	complex and square. cmatrix stores them row-major in a flat slice,
//	validates every public access, and exposes kernels (Mul, Trace,
//	TraceOfProduct, BlockDiag, Det, ...) that never mutate their inputs.
//
// Key features:
//   - Row-major Dense with bounds-checked At/Set (errors, never panics).
//   - Zero-sized shapes via NewZeros, so a 0×0 density matrix is legal.
//   - Complex GEMM through gonum's cblas128 (pure Go by default).
//   - Fast path for *Dense operands, At-based fallback for any Matrix.
//   - Sentinel errors (errors.go) matched with errors.Is.
//
// Usage:
//
//	h, _ := cmatrix.NewFromRows([][]complex128{{0, 1}, {1, 0}})
//	g, _ := cmatrix.NewDiagonal([]complex128{1, 0})
//	gh, _ := cmatrix.Mul(g, h)
//	tr, _ := cmatrix.Trace(gh)
//
// Complexity:
//   - At/Set O(1); Clone O(r*c); Mul O(r*n*c); Trace O(n); Det O(n³).
package cmatrix
