// SPDX-License-Identifier: MIT
// Package cmatrix: canonical validation checks.
//
// Purpose:
//   - Provide a single source of truth for nil/shape/structure guards.
//   - Keep kernels minimal by delegating validation here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap
//     uniformly with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//   - Hermiticity and unitarity checks run O(n²) on the upper triangle.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// Tolerance defaults (single source of truth). Structural checks compare
// residuals against an explicit eps supplied by the caller; these values
// are the documented defaults for double precision.
const (
	// DefaultEpsilon is the tolerance for algebraic identities
	// (Hermiticity, unitarity residuals).
	DefaultEpsilon = 1e-10

	// DefaultEigenTol is the Jacobi convergence threshold on the
	// off-diagonal Frobenius norm.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of Jacobi sweeps.
	DefaultEigenMaxIter = 100
)

// validatorErrorf wraps an underlying sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *CDense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare. Complexity: O(1).
func ValidateSquare(m *CDense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b are non-nil with equal dims.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameShape(a, b *CDense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a and b are non-nil and a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b *CDense) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateHermitian checks that m is square and satisfies A = A† within eps,
// comparing |A[i,j] - conj(A[j,i])| entry-wise on the upper triangle and
// |imag(A[i,i])| on the diagonal.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
// Complexity: O(n²).
func ValidateHermitian(m *CDense, eps float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		if im := imag(m.data[i*n+i]); im > eps || im < -eps {
			return validatorErrorf("ValidateHermitian: diagonal", ErrNotHermitian)
		}
		for j = i + 1; j < n; j++ {
			if cmplx.Abs(m.data[i*n+j]-cmplx.Conj(m.data[j*n+i])) > eps {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian)
			}
		}
	}

	return nil
}

// IsHermitian reports whether m is square and Hermitian within eps.
// A nil or non-square matrix is not Hermitian.
func IsHermitian(m *CDense, eps float64) bool {
	return ValidateHermitian(m, eps) == nil
}

// IsUnitary reports whether m is square and satisfies U·U† = I within eps,
// comparing |(U·U†)[i,j] - δij| entry-wise. A nil or non-square matrix is
// not unitary.
// Complexity: O(n³).
func IsUnitary(m *CDense, eps float64) bool {
	if ValidateSquare(m) != nil {
		return false
	}

	n := m.r
	var i, j, k int
	var acc complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			// (U·U†)[i,j] = Σ_k U[i,k]·conj(U[j,k])
			acc = 0
			for k = 0; k < n; k++ {
				acc += m.data[i*n+k] * cmplx.Conj(m.data[j*n+k])
			}
			if i == j {
				acc -= 1
			}
			if cmplx.Abs(acc) > eps {
				return false
			}
		}
	}

	return true
}
