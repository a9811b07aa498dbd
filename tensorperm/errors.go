// SPDX-License-Identifier: MIT
// Package tensorperm: sentinel errors.

package tensorperm

import "errors"

var (
	// ErrInvalidDimension is returned when the per-factor dimension is
	// below one.
	ErrInvalidDimension = errors.New("tensorperm: factor dimension must be ≥ 1")

	// ErrInvalidPermutation is returned when perm is empty, holds an
	// index outside [0, len(perm)), or repeats an index.
	ErrInvalidPermutation = errors.New("tensorperm: perm must be a bijection on [0, n)")
)
