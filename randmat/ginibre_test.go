// SPDX-License-Identifier: MIT

package randmat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/karalekas/forest-benchmarking/randmat"
)

func TestGinibre_ShapeAndValidation(t *testing.T) {
	g, err := randmat.Ginibre(3, 5, randmat.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 5, g.Cols())

	_, err = randmat.Ginibre(0, 5)
	require.ErrorIs(t, err, randmat.ErrInvalidDimension)
	_, err = randmat.Ginibre(5, -1)
	require.ErrorIs(t, err, randmat.ErrInvalidDimension)
}

func TestGinibre_SeedDeterminism(t *testing.T) {
	a, err := randmat.Ginibre(4, 4, randmat.WithSeed(42))
	require.NoError(t, err)
	b, err := randmat.Ginibre(4, 4, randmat.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a.Data(), b.Data())

	c, err := randmat.Ginibre(4, 4, randmat.WithSeed(43))
	require.NoError(t, err)
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestGinibre_SharedSourceAdvances(t *testing.T) {
	src := randmat.NewSource(5)
	a, err := randmat.Ginibre(3, 3, randmat.WithSource(src))
	require.NoError(t, err)
	b, err := randmat.Ginibre(3, 3, randmat.WithSource(src))
	require.NoError(t, err)
	assert.NotEqual(t, a.Data(), b.Data(), "a shared source must continue its stream")
}

func TestGinibre_EntryMoments(t *testing.T) {
	// Real and imaginary parts are independent N(0,1); check the first two
	// moments over a large draw.
	g, err := randmat.Ginibre(200, 200, randmat.WithSeed(11))
	require.NoError(t, err)

	data := g.Data()
	parts := make([]float64, 0, 2*len(data))
	for _, v := range data {
		parts = append(parts, real(v), imag(v))
	}

	assert.InDelta(t, 0, stat.Mean(parts, nil), 0.02)
	assert.InDelta(t, 1, stat.Variance(parts, nil), 0.03)
}
