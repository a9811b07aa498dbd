// Package qchannel generates random CPTP maps and converts between their
// matrix representations.
//
// The qchannel package provides:
//
//   - RandCPTPChoi: random channels in Choi form under the BCSZ
//     distribution for a given dimension and Kraus rank.
//   - ChoiToKraus / KrausToChoi: the spectral bijection between a Choi
//     matrix and an operator-sum (Kraus) representation.
//   - ChoiToPauliLiouville / PauliLiouvilleToChoi: the basis change to
//     and from the Pauli transfer matrix, plus
//     ComputationalToPauliBasisMatrix, the underlying unitary.
//   - Representation: a tagged variant over the three representation
//     kinds with a total Convert, so callers can never silently
//     misinterpret one shape as another.
//   - ValidateChoi / ApplyChoi: CPTP validation and channel application.
//
// Conventions (fixed across the module):
//
//   - vec is column-stacking: entry (row a, col i) of a D×D operator
//     sits at flat position i·D+a.
//   - The Choi matrix is C = Σ_ij |i⟩⟨j| ⊗ E(|i⟩⟨j|): the input factor
//     is the left (slow) tensor slot, the output factor the right one,
//     and trace preservation reads Tr_out C = I.
//   - C = Σ_k vec(K_k)·vec(K_k)† for any Kraus decomposition {K_k}.
//   - The Pauli basis is the lexicographic (I<X<Y<Z) family of n-fold
//     Pauli tensor products, each normalized by 1/√D.
//
// All conversions are pure functions; tolerances are explicit options
// with documented defaults.
package qchannel
