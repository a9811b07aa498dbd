// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// cmatrix package. All kernels MUST return these sentinels and tests MUST
// check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for programmer errors in private helpers.

package cmatrix

import "errors"

// Every message is prefixed with "cmatrix: ..." for consistency and easy
// grepping. Do not %w-wrap these sentinels when returning directly; if
// context is essential, wrap with fmt.Errorf("ctx: %w", ErrX) at the outer
// boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside
	// the valid range. Public indexers (At/Set) return this, never panic.
	ErrIndexOutOfBounds = errors.New("cmatrix: index out of bounds")

	// ErrNilMatrix indicates that a nil *CDense receiver or argument was used.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Add/Sub with different shapes, Mul with inner
	// mismatch, or a data slice of the wrong length.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the
	// input wasn't.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNotHermitian signals that a matrix expected to be Hermitian
	// violated A = A† within the configured tolerance.
	ErrNotHermitian = errors.New("cmatrix: matrix is not Hermitian within eps")

	// ErrEigenFailed indicates that the Jacobi eigensolver did not reach
	// the requested off-diagonal tolerance within maxIter sweeps.
	ErrEigenFailed = errors.New("cmatrix: eigen decomposition failed to converge")

	// ErrSingular is returned when an inversion-like routine (inverse
	// square root of a PSD matrix) meets an eigenvalue at or below the
	// numerical-zero cutoff.
	ErrSingular = errors.New("cmatrix: singular matrix")
)
