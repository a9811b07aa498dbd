// SPDX-License-Identifier: MIT

// Package cmatrix: CDense is the concrete row-major complex matrix type.
// Elements live in a flat slice for performance and cache friendliness;
// every other file in this package builds on it.
package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// CDense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type CDense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// cdenseErrorf wraps an underlying error with CDense method context.
func cdenseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, err)
}

// NewCDense creates an r×c CDense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new CDense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int) (*CDense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]complex128, rows*cols)

	// Return initialized CDense
	return &CDense{r: rows, c: cols, data: data}, nil
}

// NewCDenseData creates an r×c CDense adopting the supplied backing slice.
// The slice is used directly, not copied; the caller hands over ownership.
// Stage 1 (Validate): rows/cols > 0 and len(data) == rows*cols.
// Stage 2 (Finalize): wrap the slice.
// Complexity: O(1).
func NewCDenseData(rows, cols int, data []complex128) (*CDense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) != rows*cols {
		return nil, ErrDimensionMismatch
	}

	return &CDense{r: rows, c: cols, data: data}, nil
}

// Identity returns the n×n identity matrix.
// Complexity: O(n²) time and memory.
func Identity(n int) (*CDense, error) {
	m, err := NewCDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *CDense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *CDense) Cols() int {
	return m.c
}

// indexOf computes the flat index for (row, col) or returns ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *CDense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, cdenseErrorf(method, row, col, ErrIndexOutOfBounds)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, cdenseErrorf(method, row, col, ErrIndexOutOfBounds)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Data exposes the row-major backing slice as a raw view.
// The slice aliases the matrix storage: writes through it mutate the
// matrix. Intended for tight loops in sibling packages; general callers
// should prefer At/Set.
// Complexity: O(1).
func (m *CDense) Data() []complex128 {
	return m.data
}

// Clone returns a deep copy of the CDense matrix.
// Complexity: O(r*c) time and memory.
func (m *CDense) Clone() *CDense {
	copyData := make([]complex128, len(m.data))
	copy(copyData, m.data)

	return &CDense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging.
// Entries print as "re+imi" with %g precision, one bracketed row per line.
// Complexity: O(r*c) for string construction.
func (m *CDense) String() string {
	var s string
	var i, j int
	for i = 0; i < m.r; i++ {
		s += "["
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			s += fmt.Sprintf("%g%+gi", real(v), imag(v))
			if j < m.c-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}

// absSq returns |v|² without the square root of cmplx.Abs.
func absSq(v complex128) float64 {
	return real(v)*real(v) + imag(v)*imag(v)
}

// phaseOf returns v/|v|, or 1 when v is (numerically) zero.
// Used by QR phase correction and Jacobi rotations.
func phaseOf(v complex128) complex128 {
	a := cmplx.Abs(v)
	if a == 0 {
		return 1
	}

	return v / complex(a, 0)
}
