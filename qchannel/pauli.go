// SPDX-License-Identifier: MIT
// Package qchannel: the Pauli-Liouville (Pauli transfer matrix)
// representation and its change-of-basis machinery.

package qchannel

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// singleQubitPaulis returns the 2×2 Pauli matrices in I, X, Y, Z order.
func singleQubitPaulis() [4]*cmatrix.CDense {
	mk := func(d []complex128) *cmatrix.CDense {
		m, err := cmatrix.NewCDenseData(2, 2, d)
		if err != nil {
			panic("qchannel: single-qubit pauli construction cannot fail")
		}

		return m
	}

	return [4]*cmatrix.CDense{
		mk([]complex128{1, 0, 0, 1}),                     // I
		mk([]complex128{0, 1, 1, 0}),                     // X
		mk([]complex128{0, complex(0, -1), complex(0, 1), 0}), // Y
		mk([]complex128{1, 0, 0, -1}),                    // Z
	}
}

// qubitCount returns n for dim == 4^n with n ≥ 1, or an error. The even
// power-of-two requirement comes from the Pauli basis: it exists for
// operator spaces of qubit systems only.
func qubitCount(dim int) (int, error) {
	if dim < 4 {
		return 0, fmt.Errorf("dimension %d is not 4^n: %w", dim, ErrInvalidDimension)
	}
	n := 0
	for v := dim; v > 1; v /= 4 {
		if v%4 != 0 {
			return 0, fmt.Errorf("dimension %d is not 4^n: %w", dim, ErrInvalidDimension)
		}
		n++
	}

	return n, nil
}

// ComputationalToPauliBasisMatrix returns the unitary change of basis
// from computational (vec) coordinates to Pauli coordinates for an
// operator space of dimension dim = 4^n (n qubits).
//
// Implementation:
//   - Stage 1: Validate dim is a power of four.
//   - Stage 2: Enumerate the n-fold Pauli tensor products in
//     lexicographic I<X<Y<Z order (factor 0 is the most significant
//     digit), each normalized by 1/√D with D = 2^n.
//   - Stage 3: Row k of the result is conj(vec(σ_k)) under the
//     column-stacking vec convention, so the matrix maps vec(O) to the
//     coordinate vector (Tr[σ_k†·O])_k.
//
// Behavior highlights:
//   - Deterministic, pure function of dim; the result is unitary since
//     the normalized Paulis are an orthonormal operator basis.
//
// Errors:
//   - ErrInvalidDimension when dim is not 4^n, n ≥ 1.
//
// Complexity:
//   - Time O(dim²) amortized over the Kronecker builds, Space O(dim²).
func ComputationalToPauliBasisMatrix(dim int) (*cmatrix.CDense, error) {
	nQubits, err := qubitCount(dim)
	if err != nil {
		return nil, fmt.Errorf("ComputationalToPauliBasisMatrix(%d): %w", dim, err)
	}
	paulis := singleQubitPaulis()
	d := 1 << nQubits // system dimension D = 2^n
	norm := complex(1/math.Sqrt(float64(d)), 0)

	b, err := cmatrix.NewCDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("ComputationalToPauliBasisMatrix(%d): %w", dim, err)
	}
	bd := b.Data()

	var k, i, a, digit, rest int
	for k = 0; k < dim; k++ {
		// Build P_k as the Kronecker chain of base-4 digits of k,
		// most significant digit first.
		p := paulis[0] // start from I₁; replaced on the first digit
		rest = k
		for shift := nQubits - 1; shift >= 0; shift-- {
			digit = (rest >> (2 * shift)) & 3
			if shift == nQubits-1 {
				p = paulis[digit]
				continue
			}
			p, err = cmatrix.Kron(p, paulis[digit])
			if err != nil {
				return nil, fmt.Errorf("ComputationalToPauliBasisMatrix(%d): %w", dim, err)
			}
		}

		pd := p.Data()
		for i = 0; i < d; i++ {
			for a = 0; a < d; a++ {
				// B[k, i·D+a] = conj(σ_k[a,i]) = conj(P_k[a,i])/√D.
				bd[k*dim+(i*d+a)] = cmplx.Conj(norm * pd[a*d+i])
			}
		}
	}

	return b, nil
}

// reshuffle converts between the Choi matrix and the superoperator
// (Liouville) matrix of the same map. The transform
// S[b·D+a, j·D+i] = C[i·D+a, j·D+b] is an involution, so one function
// serves both directions.
// Precondition: m is D²×D² (checked by the callers).
func reshuffle(m *cmatrix.CDense, d int) (*cmatrix.CDense, error) {
	side := d * d
	res, err := cmatrix.NewCDense(side, side)
	if err != nil {
		return nil, err
	}
	md, rd := m.Data(), res.Data()
	var i, j, a, b int
	for i = 0; i < d; i++ {
		for a = 0; a < d; a++ {
			for j = 0; j < d; j++ {
				for b = 0; b < d; b++ {
					rd[(b*d+a)*side+(j*d+i)] = md[(i*d+a)*side+(j*d+b)]
				}
			}
		}
	}

	return res, nil
}

// ChoiToPauliLiouville converts a Choi matrix to the Pauli-Liouville
// (Pauli transfer) representation.
//
// Implementation:
//   - Stage 1: Validate the Choi side and that the system dimension is a
//     power of two (Pauli basis requirement).
//   - Stage 2: Reshuffle the Choi matrix into the superoperator S.
//   - Stage 3: Sandwich with the Pauli basis change: PL = B·S·B†.
//
// Behavior highlights:
//   - PL[k,l] = Tr[σ_k†·E(σ_l)]; entries are real to numerical precision
//     for any Hermiticity-preserving (in particular CPTP) input. The
//     result keeps its complex storage type; callers asserting realness
//     should compare the imaginary part against their tolerance.
//
// Errors:
//   - ErrInvalidDimension (bad side or non-qubit dimension), cmatrix
//     sentinels on nil input.
//
// Complexity:
//   - Time O(D⁶) (two D²×D² multiplications), Space O(D⁴).
func ChoiToPauliLiouville(choi *cmatrix.CDense) (*cmatrix.CDense, error) {
	d, err := choiSide(choi)
	if err != nil {
		return nil, fmt.Errorf("ChoiToPauliLiouville: %w", err)
	}

	b, err := ComputationalToPauliBasisMatrix(d * d)
	if err != nil {
		return nil, fmt.Errorf("ChoiToPauliLiouville: %w", err)
	}
	s, err := reshuffle(choi, d)
	if err != nil {
		return nil, fmt.Errorf("ChoiToPauliLiouville: %w", err)
	}

	bs, err := cmatrix.Mul(b, s)
	if err != nil {
		return nil, fmt.Errorf("ChoiToPauliLiouville: %w", err)
	}
	bh, err := cmatrix.ConjTranspose(b)
	if err != nil {
		return nil, fmt.Errorf("ChoiToPauliLiouville: %w", err)
	}
	pl, err := cmatrix.Mul(bs, bh)
	if err != nil {
		return nil, fmt.Errorf("ChoiToPauliLiouville: %w", err)
	}

	return pl, nil
}

// PauliLiouvilleToChoi inverts ChoiToPauliLiouville: S = B†·PL·B, then
// the reshuffle involution recovers the Choi matrix.
//
// Errors: ErrInvalidDimension (bad side or non-qubit dimension), cmatrix
// sentinels on nil input.
// Complexity: O(D⁶).
func PauliLiouvilleToChoi(pl *cmatrix.CDense) (*cmatrix.CDense, error) {
	d, err := choiSide(pl)
	if err != nil {
		return nil, fmt.Errorf("PauliLiouvilleToChoi: %w", err)
	}

	b, err := ComputationalToPauliBasisMatrix(d * d)
	if err != nil {
		return nil, fmt.Errorf("PauliLiouvilleToChoi: %w", err)
	}
	bh, err := cmatrix.ConjTranspose(b)
	if err != nil {
		return nil, fmt.Errorf("PauliLiouvilleToChoi: %w", err)
	}
	tmp, err := cmatrix.Mul(bh, pl)
	if err != nil {
		return nil, fmt.Errorf("PauliLiouvilleToChoi: %w", err)
	}
	s, err := cmatrix.Mul(tmp, b)
	if err != nil {
		return nil, fmt.Errorf("PauliLiouvilleToChoi: %w", err)
	}

	choi, err := reshuffle(s, d)
	if err != nil {
		return nil, fmt.Errorf("PauliLiouvilleToChoi: %w", err)
	}

	return choi, nil
}
