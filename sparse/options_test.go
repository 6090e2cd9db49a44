// SPDX-License-Identifier: MIT
// Package sparse_test contains unit tests for functional options.
package sparse_test

import (
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestOptionDefaults checks the Default* constants are what gatherOptions yields.
func TestOptionDefaults(t *testing.T) {
	o := sparse.GatherOptions()
	require.Equal(t, sparse.DefaultValidate, sparse.OptionsValidate(o))
	require.Equal(t, sparse.DefaultValidateNaNInf, sparse.OptionsValidateNaNInf(o))

	m := seedCOO(t)
	require.Equal(t, sparse.DefaultDisplayLimit, m.DisplayLimit())
}

// TestOptionsLastWriteWins verifies options apply in order and nil is skipped.
func TestOptionsLastWriteWins(t *testing.T) {
	o := sparse.GatherOptions(sparse.WithTrustedInput(), nil, sparse.WithValidation())
	require.True(t, sparse.OptionsValidate(o))

	o = sparse.GatherOptions(sparse.WithValidateNaNInf(), sparse.WithNoValidateNaNInf())
	require.False(t, sparse.OptionsValidateNaNInf(o))
}

// TestWithDisplayLimitPanicsOnNonsense checks programmer-error panics.
func TestWithDisplayLimitPanicsOnNonsense(t *testing.T) {
	require.Panics(t, func() { sparse.WithDisplayLimit(0) })
	require.Panics(t, func() { sparse.WithDisplayLimit(-3) })
	require.NotPanics(t, func() { sparse.WithDisplayLimit(1) })
}

// TestCloneKeepsOptions ensures Clone carries the captured policy.
func TestCloneKeepsOptions(t *testing.T) {
	m := mustCSR(t, seedNRows, seedNCols, seedValues, seedCols, seedRowsIdx, sparse.WithDisplayLimit(3))
	require.Equal(t, 3, m.Clone().DisplayLimit())
}
