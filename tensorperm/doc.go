// SPDX-License-Identifier: MIT

// Package tensorperm builds unitary permutation matrices that reorder
// the factors of a tensor-product Hilbert space.
//
// What it solves:
//
//	A register of n subsystems, each of dimension d, lives in a d^n
//	dimensional space with basis states indexed by length-n digit
//	tuples (factor 0 is the most significant digit). Swapping or
//	cycling subsystems is a permutation of those tuples; tensorperm
//	produces the matrix that performs it on state vectors and, by
//	conjugation, on operators.
//
// Convention:
//
//	PermuteTensorFactors(d, perm) returns P with P·(t₀⊗t₁⊗…⊗tₙ₋₁) =
//	s₀⊗s₁⊗…⊗sₙ₋₁ where s[i] = t[perm[i]]: position i of the output
//	holds the factor that sat at position perm[i] of the input.
//	Under this convention permutation matrices compose covariantly:
//	P(p)·P(q) = P(r) with r[i] = q[p[i]].
//
// Determinism:
//
//	Pure functions of their arguments; no randomness, no global state.
package tensorperm
