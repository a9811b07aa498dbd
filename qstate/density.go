// SPDX-License-Identifier: MIT
// Package qstate: random density matrices under the Hilbert-Schmidt
// (Ginibre) and Bures measures.

package qstate

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/cmatrix"
	"github.com/karalekas/forest-benchmarking/randmat"
)

// GinibreState returns a dim×dim density matrix of rank ≤ rank, drawn by
// normalizing G·G† for a dim×rank Ginibre matrix G.
//
// Implementation:
//   - Stage 1: Validate dim ≥ 1 and 1 ≤ rank ≤ dim.
//   - Stage 2: Draw G ← Ginibre(dim, rank); form ρ = G·G†.
//   - Stage 3: Normalize by Tr[ρ] (almost surely nonzero; a zero trace
//     can only come from the zero matrix).
//
// Behavior highlights:
//   - ρ is Hermitian, positive-semidefinite and trace-one by
//     construction; exactly dim−rank eigenvalues are numerically zero
//     when rank < dim.
//   - At rank == dim the distribution is the Hilbert-Schmidt measure.
//
// Errors:
//   - ErrInvalidDimension when dim < 1.
//   - ErrInvalidRank when rank ∉ [1, dim].
//
// Complexity:
//   - Time O(dim²·rank), Space O(dim²).
func GinibreState(dim, rank int, opts ...randmat.Option) (*cmatrix.CDense, error) {
	if dim < 1 {
		return nil, fmt.Errorf("GinibreState(%d,%d): %w", dim, rank, ErrInvalidDimension)
	}
	if rank < 1 || rank > dim {
		return nil, fmt.Errorf("GinibreState(%d,%d): %w", dim, rank, ErrInvalidRank)
	}

	g, err := randmat.Ginibre(dim, rank, opts...)
	if err != nil {
		return nil, fmt.Errorf("GinibreState(%d,%d): %w", dim, rank, err)
	}

	rho, err := grammian(g)
	if err != nil {
		return nil, fmt.Errorf("GinibreState(%d,%d): %w", dim, rank, err)
	}

	if err = normalizeTrace(rho); err != nil {
		return nil, fmt.Errorf("GinibreState(%d,%d): %w", dim, rank, err)
	}

	return rho, nil
}

// BuresState returns a dim×dim density matrix drawn from the Bures
// measure.
//
// Implementation:
//   - Stage 1: Validate dim ≥ 1.
//   - Stage 2: Draw a square Ginibre matrix G and an independent
//     Haar-random unitary U from the same stream.
//   - Stage 3: Form A = (I+U)·G, then ρ = A·A† = (I+U)·G·G†·(I+U†),
//     normalized by its trace.
//
// Behavior highlights:
//   - Same Hermitian/PSD/trace-one guarantees as GinibreState; the
//     distribution weights toward purer (lower-entropy) states than
//     Hilbert-Schmidt.
//   - When no seed/source option is given, G and U still come from one
//     fresh per-call source, so they are independent draws.
//
// Errors:
//   - ErrInvalidDimension when dim < 1.
//
// Complexity:
//   - Time O(dim³), Space O(dim²).
func BuresState(dim int, opts ...randmat.Option) (*cmatrix.CDense, error) {
	if dim < 1 {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, ErrInvalidDimension)
	}

	// Resolve the source once so G and U share one stream under a seed.
	src := sourceFor(opts)

	g, err := randmat.Ginibre(dim, dim, randmat.WithSource(src))
	if err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}
	u, err := randmat.HaarUnitary(dim, randmat.WithSource(src))
	if err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}

	// A = (I+U)·G.
	eye, err := cmatrix.Identity(dim)
	if err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}
	iu, err := cmatrix.Add(eye, u)
	if err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}
	a, err := cmatrix.Mul(iu, g)
	if err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}

	rho, err := grammian(a)
	if err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}

	if err = normalizeTrace(rho); err != nil {
		return nil, fmt.Errorf("BuresState(%d): %w", dim, err)
	}

	return rho, nil
}

// sourceFor resolves the effective Source for a generator that needs
// several correlated draws from one stream.
func sourceFor(opts []randmat.Option) *randmat.Source {
	return randmat.ResolveSource(opts...)
}

// grammian returns A·A† for any matrix A.
func grammian(a *cmatrix.CDense) (*cmatrix.CDense, error) {
	ah, err := cmatrix.ConjTranspose(a)
	if err != nil {
		return nil, err
	}

	return cmatrix.Mul(a, ah)
}

// normalizeTrace scales m in place to unit trace.
// The trace of a nonzero Grammian is strictly positive, so the division
// is safe for every non-degenerate draw.
func normalizeTrace(m *cmatrix.CDense) error {
	tr, err := cmatrix.Trace(m)
	if err != nil {
		return err
	}

	inv := 1 / tr
	data := m.Data()
	for i := range data {
		data[i] *= inv
	}

	return nil
}
