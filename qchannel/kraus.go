// SPDX-License-Identifier: MIT
// Package qchannel: the spectral bijection between Choi matrices and
// Kraus operator lists.

package qchannel

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// choiSide validates that m is a non-nil square matrix whose side is a
// perfect square, and returns the underlying system dimension D.
// Returns ErrInvalidDimension (wrapped cmatrix sentinels for nil or
// non-square input).
func choiSide(m *cmatrix.CDense) (int, error) {
	if err := cmatrix.ValidateSquare(m); err != nil {
		return 0, err
	}
	side := m.Rows()
	d := int(math.Round(math.Sqrt(float64(side))))
	if d*d != side {
		return 0, fmt.Errorf("side %d is not a perfect square: %w", side, ErrInvalidDimension)
	}

	return d, nil
}

// ChoiToKraus extracts a minimal Kraus operator list from a Choi matrix.
//
// Implementation:
//   - Stage 1: Validate the input is square with a perfect-square side
//     and Hermitian within eps; reject otherwise with ErrNonCPTP.
//   - Stage 2: Eigendecompose. Any eigenvalue below -rankEps violates
//     positive-semidefiniteness → ErrNonCPTP.
//   - Stage 3: For each eigenvalue λ > rankEps, reshape the matching
//     eigenvector scaled by √λ into a D×D operator via the
//     column-stacking vec convention: K[a,i] = √λ·v[i·D+a].
//
// Behavior highlights:
//   - The number of returned operators equals the numerical rank of the
//     Choi matrix.
//   - For a trace-preserving input, Σ K_k†·K_k = I within tolerance.
//   - Operators come out ordered by descending eigenvalue, so the list
//     is deterministic for a fixed input.
//
// Inputs:
//   - choi: D²×D² Hermitian PSD matrix.
//   - opts: WithEpsilon (Hermiticity), WithRankEpsilon (PSD cutoff).
//
// Returns:
//   - []*cmatrix.CDense: the Kraus operators, each D×D.
//
// Errors:
//   - ErrInvalidDimension, ErrNonCPTP, plus cmatrix sentinels for
//     nil/non-square input or eigensolver failure.
//
// Complexity:
//   - Time O(D⁶) (eigendecomposition of a D²×D² matrix), Space O(D⁴).
func ChoiToKraus(choi *cmatrix.CDense, opts ...Option) ([]*cmatrix.CDense, error) {
	o := gatherOptions(opts...)

	d, err := choiSide(choi)
	if err != nil {
		return nil, fmt.Errorf("ChoiToKraus: %w", err)
	}
	if !cmatrix.IsHermitian(choi, o.eps) {
		return nil, fmt.Errorf("ChoiToKraus: not Hermitian: %w", ErrNonCPTP)
	}

	vals, vecs, err := cmatrix.HermitianEigen(choi, cmatrix.DefaultEigenTol, cmatrix.DefaultEigenMaxIter)
	if err != nil {
		return nil, fmt.Errorf("ChoiToKraus: %w", err)
	}

	side := d * d
	vd := vecs.Data()
	ks := make([]*cmatrix.CDense, 0, len(vals))
	var i, a, col int
	var w complex128
	for col = 0; col < len(vals); col++ {
		if vals[col] < -o.rankEps {
			return nil, fmt.Errorf("ChoiToKraus: negative eigenvalue %g: %w", vals[col], ErrNonCPTP)
		}
		if vals[col] <= o.rankEps {
			continue // numerically zero mode
		}

		k, kerr := cmatrix.NewCDense(d, d)
		if kerr != nil {
			return nil, fmt.Errorf("ChoiToKraus: %w", kerr)
		}
		kd := k.Data()
		w = complex(math.Sqrt(vals[col]), 0)
		for i = 0; i < d; i++ {
			for a = 0; a < d; a++ {
				// vec convention: position i·D+a holds entry (row a, col i).
				kd[a*d+i] = w * vd[(i*d+a)*side+col]
			}
		}
		ks = append(ks, k)
	}

	return ks, nil
}

// KrausToChoi assembles the Choi matrix C = Σ_k vec(K_k)·vec(K_k)† from
// a Kraus operator list.
//
// Stage 1 (Validate): non-empty list of non-nil square operators sharing
// one dimension.
// Stage 2 (Execute): accumulate the outer products under the
// column-stacking vec convention.
//
// Errors: ErrInvalidRepresentation (empty list, nil entry, shape
// mismatch), cmatrix.ErrNonSquare.
// Complexity: O(len(ks)·D⁴).
func KrausToChoi(ks []*cmatrix.CDense) (*cmatrix.CDense, error) {
	if len(ks) == 0 {
		return nil, fmt.Errorf("KrausToChoi: empty operator list: %w", ErrInvalidRepresentation)
	}
	for _, k := range ks {
		if err := cmatrix.ValidateSquare(k); err != nil {
			return nil, fmt.Errorf("KrausToChoi: %w", err)
		}
	}
	d := ks[0].Rows()
	for _, k := range ks {
		if k.Rows() != d {
			return nil, fmt.Errorf("KrausToChoi: mixed operator dimensions: %w", ErrInvalidRepresentation)
		}
	}

	side := d * d
	choi, err := cmatrix.NewCDense(side, side)
	if err != nil {
		return nil, fmt.Errorf("KrausToChoi: %w", err)
	}

	cd := choi.Data()
	var i, j, a, b int
	for _, k := range ks {
		kd := k.Data()
		for i = 0; i < d; i++ {
			for a = 0; a < d; a++ {
				for j = 0; j < d; j++ {
					for b = 0; b < d; b++ {
						// C[(i,a),(j,b)] += K[a,i]·conj(K[b,j])
						cd[(i*d+a)*side+(j*d+b)] += kd[a*d+i] * cmplx.Conj(kd[b*d+j])
					}
				}
			}
		}
	}

	return choi, nil
}
