// Package qstate generates random quantum states.
//
// The qstate package provides:
//
//   - HaarPureState: pure states drawn uniformly (Haar measure) over the
//     unit sphere, returned as dim×1 vectors.
//   - GinibreState: mixed states of a requested rank; at rank == dim the
//     distribution is the Hilbert-Schmidt measure.
//   - BuresState: mixed states drawn from the Bures measure, which
//     weights toward purer states than Hilbert-Schmidt.
//   - Purity: the Tr[ρ²] diagnostic.
//
// Every returned density matrix is Hermitian, positive-semidefinite and
// trace-one up to floating-point precision. Randomness is injected via
// randmat options (WithSeed / WithSource); see the randmat package doc
// for the reproducibility and concurrency policy.
package qstate
