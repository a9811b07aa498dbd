// Package cmatrix provides the dense complex-matrix core shared by the
// random-object generators and representation converters.
//
// The cmatrix package provides:
//
//   - CDense, a flat row-major complex128 matrix with O(1) element access.
//   - Element-wise and algebraic kernels: Add, Sub, Mul, Scale,
//     ConjTranspose, Trace, Kron, PartialTrace, FrobeniusNorm.
//   - QR, a complex Householder factorization for square matrices.
//   - HermitianEigen, a cyclic Jacobi eigendecomposition for Hermitian
//     matrices with phase-carrying rotations.
//   - Structural validators (Hermiticity, unitarity) under an explicit,
//     caller-controlled tolerance.
//
// All kernels are pure: operands are never mutated, every result is a
// freshly allocated CDense, and failures surface as package sentinel
// errors matched via errors.Is.
//
// Dimensions are always explicit. Bipartite operations (Kron,
// PartialTrace) take both factor dimensions as parameters instead of
// inferring them from shape.
package cmatrix
