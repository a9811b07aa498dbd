// Package randmat generates random complex matrices under specified
// probability measures.
//
// The randmat package provides:
//
//   - Ginibre: matrices with i.i.d. complex Gaussian entries (real and
//     imaginary parts standard-normal), the foundation of every
//     higher-level ensemble in the module.
//   - HaarUnitary: unitary matrices distributed exactly by the Haar
//     measure over U(n), via QR of a Ginibre matrix with the R-diagonal
//     phase correction.
//   - Source: an explicit, injectable random source with deterministic
//     seeding and independent substream derivation. No generator in this
//     module ever touches hidden global randomness.
//
// Reproducibility: the same seed produces bit-identical matrices. Calls
// without an explicit seed or source draw from a fresh entropy-seeded
// source, so repeated default calls are statistically independent.
//
// Concurrency: a Source is not safe for concurrent use. Give each
// goroutine its own Source, e.g. via Source.Derive.
package randmat
