// SPDX-License-Identifier: MIT
// Package cmatrix: Hermitian eigendecomposition via cyclic Jacobi sweeps.

package cmatrix

import (
	"math"
	"math/cmplx"
	"sort"
)

// HermitianEigen computes eigenvalues and eigenvectors of a Hermitian
// matrix using cyclic Jacobi sweeps with phase-carrying rotations.
//
// Implementation:
//   - Stage 1: Validate the input is Hermitian within tol (nil/square/
//     structure checks included).
//   - Stage 2: Sweep all pivots (p,q), p<q, in fixed row order. For each
//     pivot with A[p,q] ≠ 0, factor out the phase φ = arg(A[p,q]) and
//     apply the real-angle rotation t² + 2τt - 1 = 0 with
//     τ = (A[q,q]-A[p,p])/(2|A[p,q]|), embedded as the unitary
//     J[p,p]=J[q,q]=c, J[p,q]=s·e^{iφ}, J[q,p]=-s·e^{-iφ}.
//     Update A ← J†·A·J and accumulate V ← V·J.
//   - Stage 3: After each sweep, stop once the off-diagonal Frobenius
//     norm drops below tol. Fail with ErrEigenFailed past maxIter sweeps.
//   - Stage 4: Sort eigenpairs by descending eigenvalue.
//
// Behavior highlights:
//   - Rotations preserve Hermiticity exactly: diagonal entries stay real,
//     mirrored entries stay conjugate.
//   - Fixed pivot order and in-place pair updates give bit-reproducible
//     results for identical inputs.
//
// Inputs:
//   - m: Hermitian matrix within tol; n := m.Rows().
//   - tol: convergence threshold on the off-diagonal Frobenius norm
//     (DefaultEigenTol when ≤ 0).
//   - maxIter: sweep cap (DefaultEigenMaxIter when ≤ 0).
//
// Returns:
//   - []float64: eigenvalues in descending order.
//   - *CDense: V whose k-th column is the eigenvector of the k-th value;
//     m ≈ V·diag(λ)·V†, V unitary.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
//
// Complexity:
//   - Time O(sweeps·n³), Space O(n²).
func HermitianEigen(m *CDense, tol float64, maxIter int) ([]float64, *CDense, error) {
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxIter <= 0 {
		maxIter = DefaultEigenMaxIter
	}
	if err := ValidateHermitian(m, math.Sqrt(tol)); err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}

	n := m.r
	a := m.Clone()
	vm, err := Identity(n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}

	var (
		i, p, q, sweep     int
		app, aqq, absApq   float64
		theta, t, c, s     float64
		apq, sph, aip, aiq complex128
		vip, viq           complex128
	)
	converged := false
	for sweep = 0; sweep < maxIter; sweep++ {
		// Convergence check on the off-diagonal Frobenius norm.
		if offDiagNorm(a) < tol {
			converged = true
			break
		}

		// One cyclic sweep over all pivots p<q in fixed order.
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = a.data[p*n+q]
				absApq = cmplx.Abs(apq)
				if absApq == 0 {
					continue
				}

				app = real(a.data[p*n+p])
				aqq = real(a.data[q*n+q])

				// Rotation angle: t² + 2τt - 1 = 0, smaller root.
				theta = (aqq - app) / (2 * absApq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c
				sph = complex(s, 0) * phaseOf(apq) // s·e^{iφ}

				// Update rows/columns p and q outside the pivot block.
				for i = 0; i < n; i++ {
					if i == p || i == q {
						continue
					}
					aip = a.data[i*n+p]
					aiq = a.data[i*n+q]
					a.data[i*n+p] = complex(c, 0)*aip - cmplx.Conj(sph)*aiq
					a.data[i*n+q] = sph*aip + complex(c, 0)*aiq
					a.data[p*n+i] = cmplx.Conj(a.data[i*n+p])
					a.data[q*n+i] = cmplx.Conj(a.data[i*n+q])
				}

				// Pivot block: diagonal becomes real by construction.
				a.data[p*n+p] = complex(c*c*app-2*c*s*absApq+s*s*aqq, 0)
				a.data[q*n+q] = complex(s*s*app+2*c*s*absApq+c*c*aqq, 0)
				a.data[p*n+q] = 0
				a.data[q*n+p] = 0

				// Accumulate eigenvectors: V ← V·J.
				for i = 0; i < n; i++ {
					vip = vm.data[i*n+p]
					viq = vm.data[i*n+q]
					vm.data[i*n+p] = complex(c, 0)*vip - cmplx.Conj(sph)*viq
					vm.data[i*n+q] = sph*vip + complex(c, 0)*viq
				}
			}
		}
	}
	if !converged && offDiagNorm(a) >= tol {
		return nil, nil, cmatrixErrorf(opEigen, ErrEigenFailed)
	}

	// Extract the (real) diagonal and sort eigenpairs descending.
	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = real(a.data[i*n+i])
	}
	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] > vals[order[y]] })

	sorted := make([]float64, n)
	vecs, err := NewCDense(n, n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	var col int
	for col = 0; col < n; col++ {
		sorted[col] = vals[order[col]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+col] = vm.data[i*n+order[col]]
		}
	}

	return sorted, vecs, nil
}

// offDiagNorm returns the Frobenius norm of the off-diagonal part.
func offDiagNorm(a *CDense) float64 {
	n := a.r
	var sum float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				sum += absSq(a.data[i*n+j])
			}
		}
	}

	return math.Sqrt(sum)
}

// InvSqrtPSD returns M^(-1/2) for a Hermitian positive-definite matrix,
// computed through HermitianEigen with default tolerances.
//
// Stage 1 (Decompose): M = V·diag(λ)·V†.
// Stage 2 (Validate): every λ must exceed cut; otherwise ErrSingular.
// Stage 3 (Assemble): V·diag(1/√λ)·V†.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrEigenFailed,
// ErrSingular.
// Complexity: dominated by the eigendecomposition, O(sweeps·n³).
func InvSqrtPSD(m *CDense, cut float64) (*CDense, error) {
	vals, vecs, err := HermitianEigen(m, DefaultEigenTol, DefaultEigenMaxIter)
	if err != nil {
		return nil, err
	}

	n := m.r
	for _, lam := range vals {
		if lam <= cut {
			return nil, cmatrixErrorf(opEigen, ErrSingular)
		}
	}

	// V·diag(1/√λ)·V† assembled directly: out[i,j] = Σ_k V[i,k]·(1/√λ_k)·conj(V[j,k]).
	res, err := NewCDense(n, n)
	if err != nil {
		return nil, cmatrixErrorf(opEigen, err)
	}
	var i, j, k int
	var w float64
	var acc complex128
	for k = 0; k < n; k++ {
		w = 1.0 / math.Sqrt(vals[k])
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				acc = vecs.data[i*n+k] * cmplx.Conj(vecs.data[j*n+k]) * complex(w, 0)
				res.data[i*n+j] += acc
			}
		}
	}

	return res, nil
}
