// SPDX-License-Identifier: MIT

package qchannel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karalekas/forest-benchmarking/qchannel"
	"github.com/karalekas/forest-benchmarking/randmat"
)

func TestRandCPTPChoi_IsValidChannel(t *testing.T) {
	cases := []struct {
		dim, rank int
	}{
		{dim: 2, rank: 1},
		{dim: 2, rank: 4},
		{dim: 3, rank: 2},
		{dim: 3, rank: 9},
	}
	for _, tc := range cases {
		choi, err := qchannel.RandCPTPChoi(tc.dim, tc.rank, randmat.WithSeed(uint64(tc.dim*10+tc.rank)))
		require.NoError(t, err, "dim=%d rank=%d", tc.dim, tc.rank)
		require.Equal(t, tc.dim*tc.dim, choi.Rows())

		require.NoError(t, qchannel.ValidateChoi(choi), "dim=%d rank=%d", tc.dim, tc.rank)
	}
}

func TestRandCPTPChoi_KrausRankControl(t *testing.T) {
	const dim = 2
	for _, rank := range []int{1, 2, 4} {
		choi, err := qchannel.RandCPTPChoi(dim, rank, randmat.WithSeed(uint64(rank)))
		require.NoError(t, err)

		got, err := qchannel.NumericalRank(choi)
		require.NoError(t, err)
		assert.Equal(t, rank, got, "rank=%d", rank)
	}
}

func TestRandCPTPChoi_SeedDeterminism(t *testing.T) {
	a, err := qchannel.RandCPTPChoi(2, 4, randmat.WithSeed(42))
	require.NoError(t, err)
	b, err := qchannel.RandCPTPChoi(2, 4, randmat.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())

	c, err := qchannel.RandCPTPChoi(2, 4, randmat.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestRandCPTPChoi_Validation(t *testing.T) {
	_, err := qchannel.RandCPTPChoi(0, 1)
	require.ErrorIs(t, err, qchannel.ErrInvalidDimension)

	_, err = qchannel.RandCPTPChoi(2, 0)
	require.ErrorIs(t, err, qchannel.ErrInvalidRank)
	_, err = qchannel.RandCPTPChoi(2, 5)
	require.ErrorIs(t, err, qchannel.ErrInvalidRank)
}
