// SPDX-License-Identifier: MIT

package qchannel_test

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

// requireAllClose asserts entry-wise agreement within tol.
func requireAllClose(t *testing.T, want, got *cmatrix.CDense, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())

	wd, gd := want.Data(), got.Data()
	for i := range wd {
		require.LessOrEqual(t, cmplx.Abs(wd[i]-gd[i]), tol, "entry %d", i)
	}
}

// identityChoi returns the Choi matrix of the dim-dimensional identity
// channel, C[(i,a),(j,b)] = δ_ia·δ_jb.
func identityChoi(t *testing.T, dim int) *cmatrix.CDense {
	t.Helper()
	side := dim * dim
	c, err := cmatrix.NewCDense(side, side)
	require.NoError(t, err)
	cd := c.Data()
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			cd[(i*dim+i)*side+(j*dim+j)] = 1
		}
	}

	return c
}
