// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for the COO encoding.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewCOOCopiesInput ensures the matrix never aliases caller slices.
func TestNewCOOCopiesInput(t *testing.T) {
	values := []float64{1, 2}
	cols := []int{0, 1}
	rows := []int{0, 1}
	m := mustCOO(t, 2, 2, values, cols, rows)

	values[0] = 99 // mutate caller memory
	cols[0] = 1
	rows[0] = 1

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	requireCOOInvariants(t, m)
}

// TestCOOAccessorsReturnCopies ensures getters cannot corrupt storage.
func TestCOOAccessorsReturnCopies(t *testing.T) {
	m := seedCOO(t)
	m.Values()[0] = 0
	m.ColIndices()[0] = 0
	m.RowIndices()[0] = 3

	require.Equal(t, seedValues, m.Values())
	require.Equal(t, seedCols, m.ColIndices())
	require.Equal(t, seedRows, m.RowIndices())
}

// TestCOOFindIndex checks the linear lookup contract (-1 when absent).
func TestCOOFindIndex(t *testing.T) {
	m := seedCOO(t)
	require.Equal(t, 0, m.FindIndex(0, 2))
	require.Equal(t, 3, m.FindIndex(1, 4))
	require.Equal(t, 5, m.FindIndex(3, 3))
	require.Equal(t, -1, m.FindIndex(2, 2))
	require.Equal(t, -1, m.FindIndex(0, 0))
}

// TestCOOInsertAppends verifies new entries go to the end of storage and
// removals keep the relative order of the rest.
func TestCOOInsertAppends(t *testing.T) {
	m := seedCOO(t)
	require.NoError(t, m.Set(2, 0, 9))
	require.Equal(t, []float64{3.1, 4, 5, 7.4, 2, 6, 9}, m.Values())
	require.Equal(t, []int{0, 0, 1, 1, 3, 3, 2}, m.RowIndices())
	require.Equal(t, []int{2, 4, 2, 4, 1, 3, 0}, m.ColIndices())

	require.NoError(t, m.Set(1, 2, 0))
	require.Equal(t, []float64{3.1, 4, 7.4, 2, 6, 9}, m.Values())
	require.Equal(t, []int{0, 0, 1, 3, 3, 2}, m.RowIndices())
	require.Equal(t, []int{2, 4, 4, 1, 3, 0}, m.ColIndices())
	requireCOOInvariants(t, m)
}

// TestCOOCloneIndependence ensures Clone returns a deep copy.
func TestCOOCloneIndependence(t *testing.T) {
	m := seedCOO(t)
	c := m.Clone()

	require.NoError(t, c.Set(0, 2, 0))
	require.NoError(t, c.Set(2, 2, 1))

	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, 3.1, v)
	require.Equal(t, 6, m.NNZ())
	require.Equal(t, 6, c.NNZ())
	require.True(t, sparse.Equal[float64](m, seedCOO(t)))
	require.False(t, sparse.Equal[float64](m, c))
}

// TestCOOIntegerElements exercises a non-float element type.
func TestCOOIntegerElements(t *testing.T) {
	m := mustCOO(t, 4, 5, []int{3, 1, 5, 7, 2, 8}, seedCols, seedRows)
	require.Equal(t, 6, m.NNZ())

	require.NoError(t, m.Set(2, 0, -4))
	v, err := m.At(2, 0)
	require.NoError(t, err)
	require.Equal(t, -4, v)

	y, err := m.MulVec([]int{1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, []int{4, 12, -4, 10}, y)
	requireCOOInvariants(t, m)
}

// TestNewEmptyCOO verifies the zero matrix and its growth.
func TestNewEmptyCOO(t *testing.T) {
	m, err := sparse.NewEmptyCOO[float32](3, 3)
	require.NoError(t, err)
	require.Zero(t, m.NNZ())

	v, err := m.At(2, 2)
	require.NoError(t, err)
	require.Zero(t, v)

	require.NoError(t, m.Set(1, 1, 2.5))
	require.Equal(t, 1, m.NNZ())

	_, err = sparse.NewEmptyCOO[float64](0, 3)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}
