// SPDX-License-Identifier: MIT

// Package cmatrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep loops deterministic (fixed orders, no map iteration).
//
// Complexity quicksheet:
//   - NewDense/NewZeros: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package cmatrix

import (
	"fmt"
	"math/cmplx"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxRows = "NewFromRows"
)

// denseErrorf wraps err with a uniform Dense context and callsite indices.
// Output shape: "Dense.<method>(row,col): <err>"; the sentinel survives via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols); zero is legal only via NewZeros.
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense struct {
	r, c int
	data []complex128
}

var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled flat buffer.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - The public constructor forbids empty shapes to avoid accidental 0×0
//     matrices; use NewZeros where an empty orbital space is meaningful.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewZeros is like NewDense but accepts rows==0 or cols==0.
// Negative dimensions return ErrInvalidDimensions.
func NewZeros(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// NewIdentity returns the n×n identity (n may be 0).
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	m, err := NewZeros(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// NewDiagonal returns a square matrix with d on the diagonal.
func NewDiagonal(d []complex128) (*Dense, error) {
	n := len(d)
	m, _ := NewZeros(n, n) // n >= 0 always
	for i, v := range d {
		if !isFinite(v) {
			return nil, denseErrorf(ctxSet, i, i, ErrNaNInf)
		}
		m.data[i*n+i] = v
	}

	return m, nil
}

// NewFromRows copies a rectangular [][]complex128 into a new Dense.
//
// Implementation:
//   - Stage 1: infer cols from the first row; reject ragged rows (ErrBadShape).
//   - Stage 2: copy row by row, rejecting NaN/Inf (ErrNaNInf).
//
// An empty (or nil) rows slice yields a 0×0 matrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]complex128) (*Dense, error) {
	r := len(rows)
	c := 0
	if r > 0 {
		c = len(rows[0])
	}
	m, _ := NewZeros(r, c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxRows, i, len(row), c, ErrBadShape)
		}
		for j, v := range row {
			if !isFinite(v) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange
// wrapped with the caller's method tag.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col); NaN/Inf components are rejected.
func (m *Dense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy as Matrix.
func (m *Dense) Clone() Matrix { return m.clone() }

func (m *Dense) clone() *Dense {
	buf := make([]complex128, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Rows2D exports the matrix as a freshly allocated [][]complex128.
func (m *Dense) Rows2D() [][]complex128 {
	out := make([][]complex128, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]complex128, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// isFinite reports whether both components of v are finite.
func isFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !cmplx.IsInf(v)
}
