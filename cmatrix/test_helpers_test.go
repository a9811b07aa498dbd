// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/karalekas/forest-benchmarking/cmatrix"
)

// mustCDense builds a matrix from literal data or fails the test.
func mustCDense(t *testing.T, rows, cols int, data []complex128) *cmatrix.CDense {
	t.Helper()
	m, err := cmatrix.NewCDenseData(rows, cols, data)
	require.NoError(t, err)

	return m
}

// maxAbsDiff returns the largest entry-wise |a-b|.
func maxAbsDiff(t *testing.T, a, b *cmatrix.CDense) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows())
	require.Equal(t, a.Cols(), b.Cols())

	var worst float64
	ad, bd := a.Data(), b.Data()
	for i := range ad {
		if d := cmplx.Abs(ad[i] - bd[i]); d > worst {
			worst = d
		}
	}

	return worst
}

// requireAllClose asserts entry-wise agreement within tol.
func requireAllClose(t *testing.T, want, got *cmatrix.CDense, tol float64) {
	t.Helper()
	require.LessOrEqual(t, maxAbsDiff(t, want, got), tol)
}
