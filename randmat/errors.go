// SPDX-License-Identifier: MIT
// Package randmat: sentinel error set. Kernels return these sentinels and
// tests check them via errors.Is.

package randmat

import "errors"

// ErrInvalidDimension is returned when a requested matrix dimension is < 1.
var ErrInvalidDimension = errors.New("randmat: dimension must be >= 1")
