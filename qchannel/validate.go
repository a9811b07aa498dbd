// SPDX-License-Identifier: MIT
// Package qchannel: CPTP validation and channel application.

package qchannel

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// ValidateChoi checks that a matrix is a valid CPTP Choi matrix within
// tolerance: square with perfect-square side, Hermitian within eps,
// positive-semidefinite within rankEps, and Tr_out C = I within eps.
//
// Every violation reports ErrNonCPTP (wrapped with the failed check);
// shape problems report ErrInvalidDimension or the cmatrix sentinels.
// Complexity: O(D⁶), eigendecomposition-dominated.
func ValidateChoi(choi *cmatrix.CDense, opts ...Option) error {
	o := gatherOptions(opts...)

	d, err := choiSide(choi)
	if err != nil {
		return fmt.Errorf("ValidateChoi: %w", err)
	}
	if !cmatrix.IsHermitian(choi, o.eps) {
		return fmt.Errorf("ValidateChoi: not Hermitian: %w", ErrNonCPTP)
	}

	// PSD: the smallest eigenvalue must clear -rankEps.
	vals, _, err := cmatrix.HermitianEigen(choi, cmatrix.DefaultEigenTol, cmatrix.DefaultEigenMaxIter)
	if err != nil {
		return fmt.Errorf("ValidateChoi: %w", err)
	}
	if floats.Min(vals) < -o.rankEps {
		return fmt.Errorf("ValidateChoi: negative eigenvalue %g: %w", floats.Min(vals), ErrNonCPTP)
	}

	// Trace preservation: Tr_out C = I entry-wise within eps.
	trOut, err := cmatrix.PartialTrace(choi, d, d, cmatrix.RightFactor)
	if err != nil {
		return fmt.Errorf("ValidateChoi: %w", err)
	}
	td := trOut.Data()
	var i, j int
	var want complex128
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if cmplx.Abs(td[i*d+j]-want) > o.eps {
				return fmt.Errorf("ValidateChoi: partial trace differs from identity at (%d,%d): %w", i, j, ErrNonCPTP)
			}
		}
	}

	return nil
}

// NumericalRank returns the number of eigenvalues of a Hermitian matrix
// exceeding the rankEps cutoff. For a Choi matrix this is the minimal
// Kraus rank.
//
// Errors: cmatrix sentinels (nil, non-square, non-Hermitian).
// Complexity: O(n³·sweeps).
func NumericalRank(m *cmatrix.CDense, opts ...Option) (int, error) {
	o := gatherOptions(opts...)

	vals, _, err := cmatrix.HermitianEigen(m, cmatrix.DefaultEigenTol, cmatrix.DefaultEigenMaxIter)
	if err != nil {
		return 0, fmt.Errorf("NumericalRank: %w", err)
	}

	rank := 0
	for _, lam := range vals {
		if lam > o.rankEps {
			rank++
		}
	}

	return rank, nil
}

// ApplyChoi applies a channel in Choi form to a density matrix:
// E(ρ)[a,b] = Σ_ij ρ[i,j]·C[(i,a),(j,b)].
//
// Stage 1 (Validate): Choi side D² matches rho's D×D shape.
// Stage 2 (Execute): direct contraction over the input indices.
//
// Errors: ErrInvalidDimension on shape mismatch, cmatrix sentinels on
// nil or non-square inputs.
// Complexity: O(D⁴).
func ApplyChoi(choi, rho *cmatrix.CDense) (*cmatrix.CDense, error) {
	d, err := choiSide(choi)
	if err != nil {
		return nil, fmt.Errorf("ApplyChoi: %w", err)
	}
	if err = cmatrix.ValidateSquare(rho); err != nil {
		return nil, fmt.Errorf("ApplyChoi: %w", err)
	}
	if rho.Rows() != d {
		return nil, fmt.Errorf("ApplyChoi: state dimension %d does not match channel dimension %d: %w",
			rho.Rows(), d, ErrInvalidDimension)
	}

	side := d * d
	out, err := cmatrix.NewCDense(d, d)
	if err != nil {
		return nil, fmt.Errorf("ApplyChoi: %w", err)
	}
	cd, rd, od := choi.Data(), rho.Data(), out.Data()
	var i, j, a, b int
	var rv complex128
	for i = 0; i < d; i++ {
		for j = 0; j < d; j++ {
			rv = rd[i*d+j]
			if rv == 0 {
				continue
			}
			for a = 0; a < d; a++ {
				for b = 0; b < d; b++ {
					od[a*d+b] += rv * cd[(i*d+a)*side+(j*d+b)]
				}
			}
		}
	}

	return out, nil
}
