// SPDX-License-Identifier: MIT
// Package cmatrix provides universal operations on any Matrix implementation:
// products, sums, transposes, traces and block assembly. All functions perform
// fail-fast validation and never mutate their inputs (MulAccumulate mutates
// only its explicit destination).
//
// Notes:
//   - *Dense operands take a fast path over the flat buffer; any other Matrix
//     is first materialized through AsDense (At-based fallback).
//   - Products go through gonum's cblas128.Gemm.

package cmatrix

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
)

// Operation tags for uniform error wrapping.
const (
	opAsDense       = "AsDense"
	opMul           = "Mul"
	opMulAccumulate = "MulAccumulate"
	opAdd           = "Add"
	opSub           = "Sub"
	opScale         = "Scale"
	opTranspose     = "Transpose"
	opConjTranspose = "ConjTranspose"
	opTrace         = "Trace"
	opTraceProduct  = "TraceOfProduct"
	opBlockDiag     = "BlockDiag"
	opDet           = "Det"
	opAllClose      = "AllClose"
)

// matrixErrorf wraps a non-nil err with an operation tag, preserving the
// sentinel for errors.Is. Never call it with a nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AsDense returns m itself when it is a *Dense, otherwise a Dense copy read
// through At. The result may alias m; callers must treat it as read-only.
//
// Errors: ErrNilMatrix, or any error surfaced by m.At.
// Complexity: O(1) fast path, O(r*c) fallback.
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewZeros(r, c)
	if err != nil {
		return nil, matrixErrorf(opAsDense, err)
	}
	var v complex128
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAsDense, err)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// general exposes the buffer as a cblas128 view. Stride must be >= 1 even for
// zero-column matrices.
func (m *Dense) general() cblas128.General {
	return cblas128.General{Rows: m.r, Cols: m.c, Stride: max(m.c, 1), Data: m.data}
}

// gemm computes c = alpha*a*b + beta*c on pre-validated shapes.
func gemm(alpha complex128, a, b *Dense, beta complex128, c *Dense) {
	if c.r == 0 || c.c == 0 {
		return
	}
	if a.c == 0 {
		// Empty inner dimension: the product term vanishes.
		for i := range c.data {
			c.data[i] *= beta
		}
		return
	}
	cblas128.Gemm(blas.NoTrans, blas.NoTrans, alpha, a.general(), b.general(), beta, c.general())
}

// Mul performs C = A × B into a fresh Dense.
//
// Implementation:
//   - Stage 1: validate non-nil operands and inner dimension (A.Cols == B.Rows).
//   - Stage 2: materialize both as *Dense (fast path: no copy).
//   - Stage 3: one complex GEMM into a zeroed result.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res, _ := NewZeros(da.r, db.c)
	gemm(1, da, db, 0, res)

	return res, nil
}

// MulAccumulate performs dst += alpha * A × B in place.
// dst must already have shape (A.Rows × B.Cols). dst must not alias a or b.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c), no allocation.
func MulAccumulate(dst *Dense, alpha complex128, a, b *Dense) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return matrixErrorf(opMulAccumulate, err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return matrixErrorf(opMulAccumulate, err)
	}
	if dst.r != a.r || dst.c != b.c {
		return matrixErrorf(opMulAccumulate, ErrDimensionMismatch)
	}
	gemm(alpha, a, b, 1, dst)

	return nil
}

// addSub is the shared kernel behind Add and Sub: C = A + sign*B.
func addSub(a, b Matrix, sign complex128, tag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	da, err := AsDense(a)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, _ := NewZeros(da.r, da.c)
	for i := range res.data {
		res.data[i] = da.data[i] + sign*db.data[i]
	}

	return res, nil
}

// Add computes C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha * m.
func Scale(m Matrix, alpha complex128) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res, _ := NewZeros(d.r, d.c)
	for i, v := range d.data {
		res.data[i] = alpha * v
	}

	return res, nil
}

// transpose is the shared kernel behind Transpose and ConjTranspose.
func transpose(m Matrix, conj bool, tag string) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	res, _ := NewZeros(d.c, d.r)
	var v complex128
	for i := 0; i < d.r; i++ {
		for j := 0; j < d.c; j++ {
			v = d.data[i*d.c+j]
			if conj {
				v = complex(real(v), -imag(v))
			}
			res.data[j*d.r+i] = v
		}
	}

	return res, nil
}

// Transpose returns mᵀ.
func Transpose(m Matrix) (*Dense, error) { return transpose(m, false, opTranspose) }

// ConjTranspose returns the Hermitian adjoint m†.
func ConjTranspose(m Matrix) (*Dense, error) { return transpose(m, true, opConjTranspose) }

// Trace returns Σ m[i,i] for a square m (0 for 0×0).
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(n).
func Trace(m Matrix) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	d, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	var sum complex128
	for i := 0; i < d.r; i++ {
		sum += d.data[i*d.c+i]
	}

	return sum, nil
}

// TraceOfProduct returns tr(A·B) without forming the product:
// Σ_ij A[i,j]·B[j,i]. A must be r×n and B n×r.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n) instead of O(r²n).
func TraceOfProduct(a, b Matrix) (complex128, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return 0, matrixErrorf(opTraceProduct, err)
	}
	if a.Rows() != b.Cols() {
		return 0, matrixErrorf(opTraceProduct, ErrDimensionMismatch)
	}
	da, err := AsDense(a)
	if err != nil {
		return 0, matrixErrorf(opTraceProduct, err)
	}
	db, err := AsDense(b)
	if err != nil {
		return 0, matrixErrorf(opTraceProduct, err)
	}
	var sum complex128
	for i := 0; i < da.r; i++ {
		row := da.data[i*da.c : (i+1)*da.c]
		for j, av := range row {
			sum += av * db.data[j*db.c+i]
		}
	}

	return sum, nil
}

// BlockDiag assembles diag(blocks...) as one Dense. Blocks may be rectangular;
// zero blocks arguments yield a 0×0 matrix.
//
// Errors: ErrNilMatrix for any nil block.
// Complexity: O(R*C) for the R×C result.
func BlockDiag(blocks ...Matrix) (*Dense, error) {
	ds := make([]*Dense, len(blocks))
	rows, cols := 0, 0
	for k, b := range blocks {
		d, err := AsDense(b)
		if err != nil {
			return nil, matrixErrorf(opBlockDiag, fmt.Errorf("block %d: %w", k, err))
		}
		ds[k] = d
		rows += d.r
		cols += d.c
	}
	res, _ := NewZeros(rows, cols)
	r0, c0 := 0, 0
	for _, d := range ds {
		for i := 0; i < d.r; i++ {
			copy(res.data[(r0+i)*cols+c0:(r0+i)*cols+c0+d.c], d.data[i*d.c:(i+1)*d.c])
		}
		r0 += d.r
		c0 += d.c
	}

	return res, nil
}
