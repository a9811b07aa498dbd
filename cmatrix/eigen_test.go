// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

func TestHermitianEigen_Known2x2(t *testing.T) {
	// A = [[2, i], [-i, 2]] has eigenvalues 3 and 1.
	a := mustCDense(t, 2, 2, []complex128{
		2, complex(0, 1),
		complex(0, -1), 2,
	})

	vals, vecs, err := cmatrix.HermitianEigen(a, 0, 0)
	require.NoError(t, err)
	require.Len(t, vals, 2)
	assert.InDelta(t, 3, vals[0], 1e-10)
	assert.InDelta(t, 1, vals[1], 1e-10)
	assert.True(t, cmatrix.IsUnitary(vecs, 1e-10))
}

func TestHermitianEigen_Reconstruction(t *testing.T) {
	a := mustCDense(t, 3, 3, []complex128{
		4, complex(1, 1), complex(0, -2),
		complex(1, -1), 3, complex(0, 1),
		complex(0, 2), complex(0, -1), 1,
	})

	vals, vecs, err := cmatrix.HermitianEigen(a, 0, 0)
	require.NoError(t, err)

	// Descending order.
	assert.True(t, sort.SliceIsSorted(vals, func(i, j int) bool { return vals[i] > vals[j] }))

	// A ≈ V·diag(λ)·V†.
	n := a.Rows()
	lam, err := cmatrix.NewCDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, lam.Set(i, i, complex(vals[i], 0)))
	}
	vl, err := cmatrix.Mul(vecs, lam)
	require.NoError(t, err)
	vh, err := cmatrix.ConjTranspose(vecs)
	require.NoError(t, err)
	rec, err := cmatrix.Mul(vl, vh)
	require.NoError(t, err)
	requireAllClose(t, a, rec, 1e-9)

	// Eigenvalue sum matches the trace.
	tr, err := cmatrix.Trace(a)
	require.NoError(t, err)
	var sum float64
	for _, v := range vals {
		sum += v
	}
	assert.InDelta(t, real(tr), sum, 1e-10)
}

func TestHermitianEigen_RejectsNonHermitian(t *testing.T) {
	a := mustCDense(t, 2, 2, []complex128{1, 2, 3, 4})
	_, _, err := cmatrix.HermitianEigen(a, 0, 0)
	require.ErrorIs(t, err, cmatrix.ErrNotHermitian)
}

func TestInvSqrtPSD_Inverse(t *testing.T) {
	// Positive-definite Hermitian matrix.
	a := mustCDense(t, 2, 2, []complex128{
		4, complex(1, 1),
		complex(1, -1), 3,
	})

	y, err := cmatrix.InvSqrtPSD(a, 0)
	require.NoError(t, err)

	// Y·A·Y = I.
	ya, err := cmatrix.Mul(y, a)
	require.NoError(t, err)
	yay, err := cmatrix.Mul(ya, y)
	require.NoError(t, err)
	eye, err := cmatrix.Identity(2)
	require.NoError(t, err)
	requireAllClose(t, eye, yay, 1e-9)
}

func TestInvSqrtPSD_Diagonal(t *testing.T) {
	a := mustCDense(t, 2, 2, []complex128{4, 0, 0, 1})

	y, err := cmatrix.InvSqrtPSD(a, 0)
	require.NoError(t, err)
	requireAllClose(t, mustCDense(t, 2, 2, []complex128{0.5, 0, 0, 1}), y, 1e-12)
}

func TestInvSqrtPSD_Singular(t *testing.T) {
	a := mustCDense(t, 2, 2, []complex128{1, 0, 0, 0})
	_, err := cmatrix.InvSqrtPSD(a, 0)
	require.ErrorIs(t, err, cmatrix.ErrSingular)
}
