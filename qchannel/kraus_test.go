// SPDX-License-Identifier: MIT

package qchannel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karalekas/forest-benchmarking/cmatrix"
	"github.com/karalekas/forest-benchmarking/qchannel"
	"github.com/karalekas/forest-benchmarking/randmat"
)

// requireCompleteness asserts Σ K†·K = I within tol.
func requireCompleteness(t *testing.T, ks []*cmatrix.CDense, dim int, tol float64) {
	t.Helper()

	sum, err := cmatrix.NewCDense(dim, dim)
	require.NoError(t, err)
	for _, k := range ks {
		kh, herr := cmatrix.ConjTranspose(k)
		require.NoError(t, herr)
		khk, merr := cmatrix.Mul(kh, k)
		require.NoError(t, merr)
		sum, err = cmatrix.Add(sum, khk)
		require.NoError(t, err)
	}

	eye, err := cmatrix.Identity(dim)
	require.NoError(t, err)
	requireAllClose(t, eye, sum, tol)
}

func TestKrausToChoi_IdentityChannel(t *testing.T) {
	eye, err := cmatrix.Identity(2)
	require.NoError(t, err)

	choi, err := qchannel.KrausToChoi([]*cmatrix.CDense{eye})
	require.NoError(t, err)
	requireAllClose(t, identityChoi(t, 2), choi, 1e-12)
}

func TestChoiToKraus_IdentityChannel(t *testing.T) {
	choi := identityChoi(t, 2)

	ks, err := qchannel.ChoiToKraus(choi)
	require.NoError(t, err)
	require.Len(t, ks, 1, "rank-one Choi must yield a single Kraus operator")
	requireCompleteness(t, ks, 2, 1e-9)

	// Reassembly recovers the Choi matrix regardless of eigenvector phase.
	back, err := qchannel.KrausToChoi(ks)
	require.NoError(t, err)
	requireAllClose(t, choi, back, 1e-9)
}

func TestChoiToKraus_BCSZRoundTrip(t *testing.T) {
	const dim = 2
	const rank = 3

	choi, err := qchannel.RandCPTPChoi(dim, rank, randmat.WithSeed(42))
	require.NoError(t, err)

	ks, err := qchannel.ChoiToKraus(choi)
	require.NoError(t, err)
	assert.Len(t, ks, rank)
	requireCompleteness(t, ks, dim, 1e-8)

	back, err := qchannel.KrausToChoi(ks)
	require.NoError(t, err)
	requireAllClose(t, choi, back, 1e-8)
}

func TestChoiToKraus_RejectsNonHermitian(t *testing.T) {
	bad := mustCDense(t, 4, 4, []complex128{
		0, 1, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	_, err := qchannel.ChoiToKraus(bad)
	require.ErrorIs(t, err, qchannel.ErrNonCPTP)
}

func TestChoiToKraus_RejectsNegativeEigenvalue(t *testing.T) {
	bad := mustCDense(t, 4, 4, []complex128{
		-1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	})
	_, err := qchannel.ChoiToKraus(bad)
	require.ErrorIs(t, err, qchannel.ErrNonCPTP)
}

func TestChoiToKraus_RejectsBadSide(t *testing.T) {
	// 3×3 is square but 3 is not a perfect square.
	bad := mustCDense(t, 3, 3, make([]complex128, 9))
	_, err := qchannel.ChoiToKraus(bad)
	require.ErrorIs(t, err, qchannel.ErrInvalidDimension)
}

func TestKrausToChoi_Validation(t *testing.T) {
	_, err := qchannel.KrausToChoi(nil)
	require.ErrorIs(t, err, qchannel.ErrInvalidRepresentation)

	eye2, err := cmatrix.Identity(2)
	require.NoError(t, err)
	eye3, err := cmatrix.Identity(3)
	require.NoError(t, err)
	_, err = qchannel.KrausToChoi([]*cmatrix.CDense{eye2, eye3})
	require.ErrorIs(t, err, qchannel.ErrInvalidRepresentation)
}
