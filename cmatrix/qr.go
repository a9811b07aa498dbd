// SPDX-License-Identifier: MIT
// Package cmatrix: complex Householder QR factorization.

package cmatrix

import (
	"math"
	"math/cmplx"
)

// QR factors a square complex matrix as A = Q·R with Q unitary and R upper
// triangular, using Householder reflections.
//
// Implementation:
//   - Stage 1: Validate non-nil square input; copy A into the working R,
//     initialize Q to identity.
//   - Stage 2: For each column k, build the reflector v from x = R[k:n, k]
//     with alpha = -phase(R[k,k])·‖x‖ and v = x - alpha·e_k, then apply
//     H = I - tau·v·v† (tau = 2/v†v, real) to R from the left and
//     accumulate Q ← Q·H from the right.
//   - Stage 3: Zero the strictly lower triangle of R (entries are already
//     O(machine eps) after the reflections).
//
// Behavior highlights:
//   - The complex sign choice alpha = -phase(R[k,k])·‖x‖ avoids
//     cancellation in v[k] for any argument of R[k,k].
//   - H is Hermitian and unitary since tau is real; Q stays unitary to
//     machine precision.
//
// Inputs:
//   - m: non-nil square matrix (n×n).
//
// Returns:
//   - Q: unitary n×n CDense.
//   - R: upper-triangular n×n CDense with Q·R = m.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Determinism:
//   - Fixed k→j→i loop orders; bit-reproducible for identical input.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - The diagonal of R is generally complex. Callers needing the Haar
//     distribution from a Ginibre input must rescale the columns of Q by
//     the phases of R's diagonal (see randmat.HaarUnitary).
func QR(m *CDense) (*CDense, *CDense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, cmatrixErrorf(opQR, err)
	}
	n := m.r

	// Working copy of A (becomes R) and unitary accumulator Q = I.
	r := m.Clone()
	q, err := NewCDense(n, n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opQR, err)
	}
	var i, j, k int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	// Householder reflector for the current column.
	v := make([]complex128, n)

	var (
		norm, beta, tau float64    // column norm, v†v, and 2/beta
		alpha, s        complex128 // reflection target and inner-product accumulator
	)
	for k = 0; k < n; k++ {
		// Column norm ‖R[k:n, k]‖.
		norm = 0
		for i = k; i < n; i++ {
			norm += absSq(r.data[i*n+k])
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // zero column: nothing to reflect
		}

		// alpha = -phase(R[k,k])·norm; phase 1 when R[k,k] == 0.
		alpha = -phaseOf(r.data[k*n+k]) * complex(norm, 0)

		// Build v = x - alpha·e_k over the active range [k, n).
		for i = 0; i < k; i++ {
			v[i] = 0
		}
		for i = k; i < n; i++ {
			v[i] = r.data[i*n+k]
		}
		v[k] -= alpha

		// beta = v†v (real); tau = 2/beta.
		beta = 0
		for i = k; i < n; i++ {
			beta += absSq(v[i])
		}
		if beta == 0 {
			continue // degenerate reflector: column already reduced
		}
		tau = 2.0 / beta

		// Apply H to R from the left: R[i,j] -= tau·v[i]·(v†·R[:,j]).
		for j = k; j < n; j++ {
			s = 0
			for i = k; i < n; i++ {
				s += cmplx.Conj(v[i]) * r.data[i*n+j]
			}
			s *= complex(tau, 0)
			for i = k; i < n; i++ {
				r.data[i*n+j] -= v[i] * s
			}
		}

		// Accumulate Q ← Q·H: Q[i,l] -= tau·(Q[i,:]·v)·conj(v[l]).
		for i = 0; i < n; i++ {
			s = 0
			for j = k; j < n; j++ {
				s += q.data[i*n+j] * v[j]
			}
			s *= complex(tau, 0)
			for j = k; j < n; j++ {
				q.data[i*n+j] -= s * cmplx.Conj(v[j])
			}
		}
	}

	// Clean the strictly lower triangle; residuals there are round-off.
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			r.data[i*n+j] = 0
		}
	}

	return q, r, nil
}
