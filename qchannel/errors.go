// SPDX-License-Identifier: MIT
// Package qchannel: sentinel error set. Operations return these sentinels
// (possibly wrapped with call context) and tests match via errors.Is.

package qchannel

import "errors"

var (
	// ErrInvalidDimension is returned when a requested or supplied
	// dimension is out of range: dim < 1 for generation, a non-square
	// Choi side, or a non-power-of-two dimension for Pauli conversions.
	ErrInvalidDimension = errors.New("qchannel: invalid dimension")

	// ErrInvalidRank is returned when a requested Kraus rank is outside
	// [1, dimension²].
	ErrInvalidRank = errors.New("qchannel: kraus rank must be in [1, dimension^2]")

	// ErrNonCPTP is returned when a conversion or validation receives a
	// matrix failing the Hermitian/PSD/trace-preservation checks within
	// tolerance.
	ErrNonCPTP = errors.New("qchannel: matrix is not CPTP within tolerance")

	// ErrInvalidRepresentation marks a Representation with an unknown
	// kind tag or missing payload, or a Kraus list with mismatched
	// operator shapes.
	ErrInvalidRepresentation = errors.New("qchannel: invalid channel representation")
)
