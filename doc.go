// Package forestbenchmarking generates random quantum objects and
// converts between quantum-channel representations — the numerical
// substrate for benchmarking protocols on noisy quantum processors.
//
// 🚀 What is forest-benchmarking?
//
//	A pure-Go library that brings together:
//		• Complex matrices: dense complex128 algebra with QR and
//		  Hermitian eigendecomposition
//		• Random matrices: Ginibre ensembles and Haar-random unitaries
//		• Random states: Haar pure states, Ginibre (Hilbert–Schmidt)
//		  and Bures density matrices of prescribed rank
//		• Random channels: CPTP maps under the BCSZ distribution
//		• Representations: Choi ↔ Kraus ↔ Pauli-Liouville, as a tagged
//		  variant with total conversion
//		• Tensor tools: factor-permutation matrices for multi-qubit
//		  registers
//
// ✨ Why choose forest-benchmarking?
//
//   - Deterministic by choice – every sampler accepts WithSeed /
//     WithSource for reproducible draws, or fresh entropy by default
//   - Rock-solid guarantees – explicit tolerances, sentinel errors,
//     validated inputs everywhere
//   - Pure Go – no cgo; numerics build on gonum
//
// Under the hood, everything is organized under five subpackages:
//
//	cmatrix/    — complex dense matrices, QR, Hermitian eigensolver
//	randmat/    — seeded complex Gaussian sources, Ginibre, Haar
//	qstate/     — random pure states and density matrices
//	qchannel/   — random CPTP maps, representation conversion, validation
//	tensorperm/ — tensor-factor permutation matrices
//
// Quick sketch:
//
//	choi, _ := qchannel.RandCPTPChoi(2, 4, randmat.WithSeed(42))
//	ks, _   := qchannel.ChoiToKraus(choi)
//	pl, _   := qchannel.ChoiToPauliLiouville(choi)
//
//	go get github.com/karalekas/forest-benchmarking
package forestbenchmarking
