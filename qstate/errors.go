// SPDX-License-Identifier: MIT
// Package qstate: sentinel error set, matched by callers via errors.Is.

package qstate

import "errors"

var (
	// ErrInvalidDimension is returned when a requested dimension is < 1.
	ErrInvalidDimension = errors.New("qstate: dimension must be >= 1")

	// ErrInvalidRank is returned when a requested rank is outside
	// [1, dimension].
	ErrInvalidRank = errors.New("qstate: rank must be in [1, dimension]")
)
