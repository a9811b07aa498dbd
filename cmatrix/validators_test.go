// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

func TestValidators_NilAndShape(t *testing.T) {
	require.ErrorIs(t, cmatrix.ValidateNotNil(nil), cmatrix.ErrNilMatrix)

	wide := mustCDense(t, 2, 3, make([]complex128, 6))
	require.ErrorIs(t, cmatrix.ValidateSquare(wide), cmatrix.ErrNonSquare)

	a := mustCDense(t, 2, 2, make([]complex128, 4))
	require.ErrorIs(t, cmatrix.ValidateSameShape(a, wide), cmatrix.ErrDimensionMismatch)
	require.NoError(t, cmatrix.ValidateSameShape(a, a))

	require.ErrorIs(t, cmatrix.ValidateMulCompatible(a, mustCDense(t, 3, 1, make([]complex128, 3))), cmatrix.ErrDimensionMismatch)
	require.NoError(t, cmatrix.ValidateMulCompatible(wide, mustCDense(t, 3, 1, make([]complex128, 3))))
}

func TestIsHermitian(t *testing.T) {
	herm := mustCDense(t, 2, 2, []complex128{
		1, complex(2, 3),
		complex(2, -3), 5,
	})
	assert.True(t, cmatrix.IsHermitian(herm, cmatrix.DefaultEpsilon))

	// Complex diagonal breaks Hermiticity.
	bad := mustCDense(t, 2, 2, []complex128{complex(1, 1), 0, 0, 1})
	assert.False(t, cmatrix.IsHermitian(bad, cmatrix.DefaultEpsilon))

	// Tolerance is honored.
	almost := mustCDense(t, 2, 2, []complex128{1, complex(2, 1e-13), complex(2, -1e-13), 1})
	assert.True(t, cmatrix.IsHermitian(almost, 1e-10))

	assert.False(t, cmatrix.IsHermitian(nil, 1e-10))
}

func TestIsUnitary(t *testing.T) {
	// Phase gate diag(1, i) is unitary.
	phase := mustCDense(t, 2, 2, []complex128{1, 0, 0, complex(0, 1)})
	assert.True(t, cmatrix.IsUnitary(phase, cmatrix.DefaultEpsilon))

	notU := mustCDense(t, 2, 2, []complex128{1, 0, 0, 2})
	assert.False(t, cmatrix.IsUnitary(notU, cmatrix.DefaultEpsilon))

	wide := mustCDense(t, 1, 2, []complex128{1, 0})
	assert.False(t, cmatrix.IsUnitary(wide, cmatrix.DefaultEpsilon))
}
