// SPDX-License-Identifier: MIT

package sparse

// Test-only exports of unexported helpers.

// FindIndex exposes findIndex for black-box tests.
func (m *COO[T]) FindIndex(i, j int) int { return m.findIndex(i, j) }

// FindIndex exposes findIndex for black-box tests.
func (m *CSR[T]) FindIndex(i, j int) int { return m.findIndex(i, j) }

// DisplayLimit exposes the captured display limit.
func (m *COO[T]) DisplayLimit() int { return m.opts.displayLimit }

// DisplayLimit exposes the captured display limit.
func (m *CSR[T]) DisplayLimit() int { return m.opts.displayLimit }

// GatherOptions exposes gatherOptions for option-order tests.
var GatherOptions = gatherOptions

// OptionsValidate reports the effective structural validation flag.
func OptionsValidate(o Options) bool { return o.validate }

// OptionsValidateNaNInf reports the effective numeric policy flag.
func OptionsValidateNaNInf(o Options) bool { return o.validateNaNInf }
