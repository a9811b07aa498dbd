// SPDX-License-Identifier: MIT
// Package qchannel: random CPTP maps under the BCSZ distribution.

package qchannel

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/cmatrix"
	"github.com/karalekas/forest-benchmarking/randmat"
)

// RandCPTPChoi returns the Choi matrix of a random CPTP map on a
// dim-dimensional system, drawn from the BCSZ distribution with the given
// Kraus rank.
//
// Implementation:
//   - Stage 1: Validate dim ≥ 1 and 1 ≤ krausRank ≤ dim².
//   - Stage 2: Draw G ← Ginibre(dim², krausRank) and form the positive
//     candidate W = G·G†, whose rank is at most krausRank.
//   - Stage 3: Enforce trace preservation by the partial-trace sandwich:
//     Y = (Tr_out W)^(-1/2) on the input factor, then
//     C = (Y ⊗ I)·W·(Y ⊗ I). The sandwich leaves Hermiticity,
//     positivity and rank intact while making Tr_out C = I exact up to
//     round-off.
//
// Behavior highlights:
//   - Tr_out W is almost surely positive-definite (it is a Grammian of a
//     dim×(dim·krausRank) Gaussian block), so the inverse square root
//     exists for every non-degenerate draw; a degenerate draw surfaces
//     as cmatrix.ErrSingular rather than a bad channel.
//   - The eigenvalue spectrum of C has at most krausRank nonzero
//     entries.
//   - Deterministic under randmat.WithSeed / WithSource.
//
// Inputs:
//   - dim: system dimension, ≥ 1; the Choi matrix is dim²×dim².
//   - krausRank: number of Kraus operators, in [1, dim²].
//   - opts: randmat seeding options.
//
// Returns:
//   - *cmatrix.CDense: dim²×dim² Choi matrix.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidRank, plus cmatrix sentinels from
//     the eigensolver on degenerate draws.
//
// Complexity:
//   - Time O(dim⁴·krausRank + dim⁶), Space O(dim⁴).
func RandCPTPChoi(dim, krausRank int, opts ...randmat.Option) (*cmatrix.CDense, error) {
	if dim < 1 {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, ErrInvalidDimension)
	}
	if krausRank < 1 || krausRank > dim*dim {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, ErrInvalidRank)
	}

	g, err := randmat.Ginibre(dim*dim, krausRank, opts...)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	gh, err := cmatrix.ConjTranspose(g)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	w, err := cmatrix.Mul(g, gh)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}

	// Trace-preservation sandwich.
	trOut, err := cmatrix.PartialTrace(w, dim, dim, cmatrix.RightFactor)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	y, err := cmatrix.InvSqrtPSD(trOut, 0)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	eye, err := cmatrix.Identity(dim)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	sandwich, err := cmatrix.Kron(y, eye)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	tmp, err := cmatrix.Mul(sandwich, w)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}
	choi, err := cmatrix.Mul(tmp, sandwich)
	if err != nil {
		return nil, fmt.Errorf("RandCPTPChoi(%d,%d): %w", dim, krausRank, err)
	}

	return choi, nil
}
