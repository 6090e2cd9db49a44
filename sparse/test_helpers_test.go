// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers
//
// Purpose:
//   - Provide the 4×5 seed fixture (COO and CSR forms) used across tests.
//   - Provide invariant checkers shared by accessor, conversion and property tests.

package sparse_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// Seed fixture: 4×5 matrix
//
//	|  0  0  3.1  0  4    |
//	|  0  0  5    0  7.4  |
//	|  0  0  0    0  0    |
//	|  0  2  0    6  0    |
var (
	seedValues  = []float64{3.1, 4, 5, 7.4, 2, 6}
	seedCols    = []int{2, 4, 2, 4, 1, 3}
	seedRows    = []int{0, 0, 1, 1, 3, 3}
	seedRowsIdx = []int{0, 2, 4, 4, 6}
)

const (
	seedNRows = 4
	seedNCols = 5
)

// mustCOO builds a COO or fails the test.
func mustCOO[T sparse.Scalar](t testing.TB, r, c int, values []T, cols, rows []int, opts ...sparse.Option) *sparse.COO[T] {
	t.Helper()
	m, err := sparse.NewCOO(r, c, values, cols, rows, opts...)
	require.NoError(t, err)

	return m
}

// mustCSR builds a CSR or fails the test.
func mustCSR[T sparse.Scalar](t testing.TB, r, c int, values []T, cols, rowsIdx []int, opts ...sparse.Option) *sparse.CSR[T] {
	t.Helper()
	m, err := sparse.NewCSR(r, c, values, cols, rowsIdx, opts...)
	require.NoError(t, err)

	return m
}

// seedCOO returns a fresh COO copy of the seed fixture.
func seedCOO(t testing.TB) *sparse.COO[float64] {
	t.Helper()
	return mustCOO(t, seedNRows, seedNCols, seedValues, seedCols, seedRows)
}

// seedCSR returns a fresh CSR copy of the seed fixture.
func seedCSR(t testing.TB) *sparse.CSR[float64] {
	t.Helper()
	return mustCSR(t, seedNRows, seedNCols, seedValues, seedCols, seedRowsIdx)
}

// triplet is one stored entry, used to compare non-zero sets.
type triplet struct {
	i, j int
	v    float64
}

// tripletsOf returns the stored entries of m sorted by (row, col).
func tripletsOf(m sparse.Matrix[float64]) []triplet {
	var out []triplet
	m.Do(func(i, j int, v float64) bool {
		out = append(out, triplet{i, j, v})
		return true
	})
	sort.Slice(out, func(a, b int) bool {
		if out[a].i != out[b].i {
			return out[a].i < out[b].i
		}
		return out[a].j < out[b].j
	})

	return out
}

// requireCOOInvariants checks parallel lengths, ranges, no zeros, no duplicates.
func requireCOOInvariants[T sparse.Scalar](t *testing.T, m *sparse.COO[T]) {
	t.Helper()
	values, cols, rows := m.Values(), m.ColIndices(), m.RowIndices()
	require.Len(t, values, m.NNZ())
	require.Len(t, cols, m.NNZ())
	require.Len(t, rows, m.NNZ())
	seen := make(map[[2]int]bool, m.NNZ())
	for k := range values {
		require.NotZero(t, values[k], "explicit zero at %d", k)
		require.GreaterOrEqual(t, rows[k], 0)
		require.Less(t, rows[k], m.Rows())
		require.GreaterOrEqual(t, cols[k], 0)
		require.Less(t, cols[k], m.Cols())
		key := [2]int{rows[k], cols[k]}
		require.False(t, seen[key], "duplicate coordinate %v", key)
		seen[key] = true
	}
}

// requireCSRInvariants checks offsets shape/monotonicity and per-row ordering.
func requireCSRInvariants[T sparse.Scalar](t *testing.T, m *sparse.CSR[T]) {
	t.Helper()
	values, cols, idx := m.Values(), m.ColIndices(), m.RowOffsets()
	require.Len(t, values, m.NNZ())
	require.Len(t, cols, m.NNZ())
	require.Len(t, idx, m.Rows()+1)
	require.Equal(t, 0, idx[0])
	require.Equal(t, m.NNZ(), idx[m.Rows()])
	for i := 0; i < m.Rows(); i++ {
		require.LessOrEqual(t, idx[i], idx[i+1], "rowsIdx decreases at %d", i)
		for k := idx[i] + 1; k < idx[i+1]; k++ {
			require.Less(t, cols[k-1], cols[k], "row %d not ascending", i)
		}
	}
	for k := range values {
		require.NotZero(t, values[k], "explicit zero at %d", k)
	}
}
