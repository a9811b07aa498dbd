// SPDX-License-Identifier: MIT
// Package tensorperm: construction of factor-permutation matrices.

package tensorperm

import (
	"fmt"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// validatePerm checks that perm is a bijection on [0, len(perm)).
func validatePerm(perm []int) error {
	if len(perm) == 0 {
		return fmt.Errorf("empty perm: %w", ErrInvalidPermutation)
	}
	seen := make([]bool, len(perm))
	for _, p := range perm {
		if p < 0 || p >= len(perm) {
			return fmt.Errorf("index %d out of range [0,%d): %w", p, len(perm), ErrInvalidPermutation)
		}
		if seen[p] {
			return fmt.Errorf("index %d repeated: %w", p, ErrInvalidPermutation)
		}
		seen[p] = true
	}

	return nil
}

// PermuteTensorFactors returns the d^n × d^n unitary permutation matrix
// that reorders the n tensor factors of a register of d-dimensional
// subsystems according to perm, with n = len(perm).
//
// Implementation:
//   - Stage 1: Validate factorDim ≥ 1 and perm is a bijection.
//   - Stage 2: Enumerate all d^n digit tuples t (factor 0 most
//     significant). For each, compute the permuted tuple s with
//     s[i] = t[perm[i]], and set P[flat(s), flat(t)] = 1.
//
// Behavior highlights:
//   - P is a 0/1 matrix with exactly one 1 per row and column, hence
//     real orthogonal and in particular unitary.
//   - The identity permutation yields the identity matrix.
//   - Composition: Mul(P(p), P(q)) equals P(r) with r[i] = q[p[i]].
//   - States transform as P·v; operators as P·A·Pᵀ.
//
// Inputs:
//   - factorDim: dimension d of each subsystem, ≥ 1.
//   - perm: the factor reordering; position i of the output takes the
//     factor from position perm[i] of the input.
//
// Returns:
//   - *cmatrix.CDense: the d^n × d^n permutation matrix.
//
// Errors:
//   - ErrInvalidDimension, ErrInvalidPermutation.
//
// Complexity:
//   - Time O(n·d^n), Space O(d^(2n)) for the dense result.
func PermuteTensorFactors(factorDim int, perm []int) (*cmatrix.CDense, error) {
	if factorDim < 1 {
		return nil, fmt.Errorf("PermuteTensorFactors(%d): %w", factorDim, ErrInvalidDimension)
	}
	if err := validatePerm(perm); err != nil {
		return nil, fmt.Errorf("PermuteTensorFactors(%d): %w", factorDim, err)
	}

	n := len(perm)
	dim := 1
	for i := 0; i < n; i++ {
		dim *= factorDim
	}

	p, err := cmatrix.NewCDense(dim, dim)
	if err != nil {
		return nil, fmt.Errorf("PermuteTensorFactors(%d): %w", factorDim, err)
	}
	pd := p.Data()

	digits := make([]int, n) // current tuple t, factor 0 most significant
	var col, row, i, rest int
	for col = 0; col < dim; col++ {
		rest = col
		for i = n - 1; i >= 0; i-- {
			digits[i] = rest % factorDim
			rest /= factorDim
		}

		row = 0
		for i = 0; i < n; i++ {
			row = row*factorDim + digits[perm[i]]
		}
		pd[row*dim+col] = 1
	}

	return p, nil
}

// ComposePermutations returns the permutation r describing the effect
// of applying q first, then p, so that the matrices compose as
// Mul(P(p), P(q)) = P(r) with r[i] = q[p[i]].
//
// Errors: ErrInvalidPermutation when either argument is not a bijection
// or their lengths differ.
func ComposePermutations(p, q []int) ([]int, error) {
	if err := validatePerm(p); err != nil {
		return nil, fmt.Errorf("ComposePermutations: %w", err)
	}
	if err := validatePerm(q); err != nil {
		return nil, fmt.Errorf("ComposePermutations: %w", err)
	}
	if len(p) != len(q) {
		return nil, fmt.Errorf("ComposePermutations: length mismatch %d vs %d: %w", len(p), len(q), ErrInvalidPermutation)
	}

	r := make([]int, len(p))
	for i := range p {
		r[i] = q[p[i]]
	}

	return r, nil
}
