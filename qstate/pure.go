// SPDX-License-Identifier: MIT
// Package qstate: Haar-random pure states.

package qstate

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/cmatrix"
	"github.com/karalekas/forest-benchmarking/randmat"
)

// HaarPureState returns a dim×1 normalized state vector distributed
// uniformly over the unit sphere in C^dim.
//
// Implementation:
//   - Stage 1: Validate dim ≥ 1.
//   - Stage 2: Draw a Haar-random unitary U and apply it to the fiducial
//     basis vector e₀; the result is U's first column.
//
// Behavior highlights:
//   - ‖ψ‖ = 1 to numerical precision (U is unitary).
//   - The projector ψψ† has purity Tr[ρ²] = 1 in exact arithmetic.
//
// Errors:
//   - ErrInvalidDimension when dim < 1.
//
// Complexity:
//   - Time O(dim³) (Haar draw), Space O(dim²) transient, O(dim) result.
func HaarPureState(dim int, opts ...randmat.Option) (*cmatrix.CDense, error) {
	if dim < 1 {
		return nil, fmt.Errorf("HaarPureState(%d): %w", dim, ErrInvalidDimension)
	}

	u, err := randmat.HaarUnitary(dim, opts...)
	if err != nil {
		return nil, fmt.Errorf("HaarPureState(%d): %w", dim, err)
	}

	// ψ = U·e₀ is U's first column.
	psi, err := cmatrix.NewCDense(dim, 1)
	if err != nil {
		return nil, fmt.Errorf("HaarPureState(%d): %w", dim, err)
	}
	pd, ud := psi.Data(), u.Data()
	for i := 0; i < dim; i++ {
		pd[i] = ud[i*dim]
	}

	return psi, nil
}

// Purity returns Tr[ρ²] for a square matrix ρ. For a valid density
// matrix the value lies in [1/dim, 1], with 1 reached exactly by pure
// states.
//
// Errors: cmatrix.ErrNilMatrix, cmatrix.ErrNonSquare.
// Complexity: O(dim²) — Tr[ρ²] = Σ_ij ρ[i,j]·ρ[j,i] needs no full product.
func Purity(rho *cmatrix.CDense) (float64, error) {
	if err := cmatrix.ValidateSquare(rho); err != nil {
		return 0, fmt.Errorf("Purity: %w", err)
	}

	n := rho.Rows()
	data := rho.Data()
	var acc complex128
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc += data[i*n+j] * data[j*n+i]
		}
	}

	return real(acc), nil
}
