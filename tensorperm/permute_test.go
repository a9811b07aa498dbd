// SPDX-License-Identifier: MIT

package tensorperm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karalekas/forest-benchmarking/cmatrix"
	"github.com/karalekas/forest-benchmarking/tensorperm"
)

func TestPermuteTensorFactors_IdentityPermutation(t *testing.T) {
	p, err := tensorperm.PermuteTensorFactors(3, []int{0, 1, 2})
	require.NoError(t, err)

	eye, err := cmatrix.Identity(27)
	require.NoError(t, err)
	assert.Equal(t, eye.Data(), p.Data())
}

func TestPermuteTensorFactors_ThreeQubitCycle(t *testing.T) {
	// perm [1,2,0]: output position 0 takes input factor 1, position 1
	// takes factor 2, position 2 takes factor 0. The basis state
	// e0⊗e0⊗e1 (index 1) maps to e0⊗e1⊗e0 (index 2).
	p, err := tensorperm.PermuteTensorFactors(2, []int{1, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 8, p.Rows())

	v, err := p.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), v)

	// Exactly one 1 per column.
	pd := p.Data()
	for col := 0; col < 8; col++ {
		ones := 0
		for row := 0; row < 8; row++ {
			if pd[row*8+col] == 1 {
				ones++
			}
		}
		assert.Equal(t, 1, ones, "column %d", col)
	}
}

func TestPermuteTensorFactors_IsUnitary(t *testing.T) {
	p, err := tensorperm.PermuteTensorFactors(2, []int{2, 0, 1})
	require.NoError(t, err)
	assert.True(t, cmatrix.IsUnitary(p, 1e-12))
}

func TestPermuteTensorFactors_SwapConjugatesKron(t *testing.T) {
	// For the two-factor swap, P·(A⊗B)·Pᵀ = B⊗A.
	a, err := cmatrix.NewCDenseData(2, 2, []complex128{1, complex(0, 1), 0, 2})
	require.NoError(t, err)
	b, err := cmatrix.NewCDenseData(2, 2, []complex128{3, 1, complex(0, -1), 0})
	require.NoError(t, err)

	p, err := tensorperm.PermuteTensorFactors(2, []int{1, 0})
	require.NoError(t, err)
	pt, err := cmatrix.ConjTranspose(p) // real 0/1 matrix: † == ᵀ
	require.NoError(t, err)

	ab, err := cmatrix.Kron(a, b)
	require.NoError(t, err)
	pab, err := cmatrix.Mul(p, ab)
	require.NoError(t, err)
	got, err := cmatrix.Mul(pab, pt)
	require.NoError(t, err)

	ba, err := cmatrix.Kron(b, a)
	require.NoError(t, err)
	assert.Equal(t, ba.Data(), got.Data())
}

func TestPermuteTensorFactors_Composition(t *testing.T) {
	p := []int{1, 2, 0}
	q := []int{2, 0, 1}

	r, err := tensorperm.ComposePermutations(p, q)
	require.NoError(t, err)

	mp, err := tensorperm.PermuteTensorFactors(2, p)
	require.NoError(t, err)
	mq, err := tensorperm.PermuteTensorFactors(2, q)
	require.NoError(t, err)
	mr, err := tensorperm.PermuteTensorFactors(2, r)
	require.NoError(t, err)

	prod, err := cmatrix.Mul(mp, mq)
	require.NoError(t, err)
	assert.Equal(t, mr.Data(), prod.Data())
}

func TestPermuteTensorFactors_Validation(t *testing.T) {
	_, err := tensorperm.PermuteTensorFactors(0, []int{0})
	require.ErrorIs(t, err, tensorperm.ErrInvalidDimension)

	_, err = tensorperm.PermuteTensorFactors(2, nil)
	require.ErrorIs(t, err, tensorperm.ErrInvalidPermutation)

	_, err = tensorperm.PermuteTensorFactors(2, []int{0, 2})
	require.ErrorIs(t, err, tensorperm.ErrInvalidPermutation)

	_, err = tensorperm.PermuteTensorFactors(2, []int{0, 0})
	require.ErrorIs(t, err, tensorperm.ErrInvalidPermutation)
}

func TestComposePermutations_Validation(t *testing.T) {
	_, err := tensorperm.ComposePermutations([]int{0, 1}, []int{0})
	require.ErrorIs(t, err, tensorperm.ErrInvalidPermutation)

	_, err = tensorperm.ComposePermutations(nil, []int{0})
	require.ErrorIs(t, err, tensorperm.ErrInvalidPermutation)
}
