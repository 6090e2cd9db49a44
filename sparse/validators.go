// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Single source of truth for shape, index, length and structural checks.
//   - Return sentinel errors wrapped with a short reason so constructors can
//     add their own call-site tag uniformly.
//
// Determinism & Performance:
//   - Index/length checks are O(1) and allocate nothing.
//   - Structural checks are O(nnz); the COO duplicate check allocates a set.
//
// Note:
//   - Composite validators follow a fixed sequence:
//     lengths -> ranges -> ordering -> duplicates -> zeros -> numeric policy.

package sparse

import (
	"fmt"
	"math"
)

// validatorErrorf wraps err with a validator tag and a reason.
func validatorErrorf(tag, reason string, err error) error {
	return fmt.Errorf("%s: %s: %w", tag, reason, err)
}

// validateShape ensures both dimensions are positive.
// Complexity: O(1).
func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("shape %dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// validateIndex checks 0 ≤ i < rows and 0 ≤ j < cols.
// Returns the bare sentinel; callers wrap with coordinates.
// Complexity: O(1).
func validateIndex(rows, cols, i, j int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return ErrOutOfRange
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n elements.
// Errors: ErrNilMatrix for a nil vector, ErrDimensionMismatch on length.
// Complexity: O(1).
//
// AI-Hints: use before any MulVec-like routine instead of ad hoc length code.
func ValidateVecLen[T Scalar](x []T, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", "nil vector", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen",
			fmt.Sprintf("len(x)=%d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// isNonFinite reports NaN or ±Inf; always false for integer kinds.
func isNonFinite[T Scalar](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// validateFinite enforces the numeric policy over a value slice.
// Complexity: O(nnz).
func validateFinite[T Scalar](tag string, values []T) error {
	for k, v := range values {
		if isNonFinite(v) {
			return validatorErrorf(tag, fmt.Sprintf("values[%d]", k), ErrNaNInf)
		}
	}

	return nil
}

// validateEntries checks the parts shared by both encodings:
// column range and zero-elision.
// Complexity: O(nnz).
func validateEntries[T Scalar](tag string, nCols int, values []T, cols []int) error {
	var zero T
	for k := range values {
		if cols[k] < 0 || cols[k] >= nCols {
			return validatorErrorf(tag, fmt.Sprintf("cols[%d]=%d outside [0,%d)", k, cols[k], nCols), ErrMalformed)
		}
		if values[k] == zero {
			return validatorErrorf(tag, fmt.Sprintf("values[%d] is an explicit zero", k), ErrMalformed)
		}
	}

	return nil
}

// validateCOOLengths checks len(values) == len(cols) == len(rows).
// Complexity: O(1).
func validateCOOLengths[T Scalar](values []T, cols, rows []int) error {
	if len(cols) != len(values) || len(rows) != len(values) {
		return validatorErrorf("ValidateCOO",
			fmt.Sprintf("len(values)=%d len(cols)=%d len(rows)=%d", len(values), len(cols), len(rows)), ErrMalformed)
	}

	return nil
}

// validateCOO runs the full structural check for coordinate input:
// row range, column range, no explicit zeros, no duplicate coordinates.
// Assumes lengths were already checked.
// Complexity: O(nnz) time, O(nnz) space for the duplicate set.
func validateCOO[T Scalar](nRows, nCols int, values []T, cols, rows []int) error {
	const tag = "ValidateCOO"
	for k, r := range rows {
		if r < 0 || r >= nRows {
			return validatorErrorf(tag, fmt.Sprintf("rows[%d]=%d outside [0,%d)", k, r, nRows), ErrMalformed)
		}
	}
	if err := validateEntries(tag, nCols, values, cols); err != nil {
		return err
	}
	seen := make(map[[2]int]struct{}, len(values))
	for k := range values {
		key := [2]int{rows[k], cols[k]}
		if _, dup := seen[key]; dup {
			return validatorErrorf(tag, fmt.Sprintf("duplicate coordinate (%d,%d)", key[0], key[1]), ErrMalformed)
		}
		seen[key] = struct{}{}
	}

	return nil
}

// validateCSRLengths checks len(values) == len(cols) and len(rowsIdx) == nRows+1.
// Complexity: O(1).
func validateCSRLengths[T Scalar](nRows int, values []T, cols, rowsIdx []int) error {
	const tag = "ValidateCSR"
	if len(cols) != len(values) {
		return validatorErrorf(tag, fmt.Sprintf("len(values)=%d len(cols)=%d", len(values), len(cols)), ErrMalformed)
	}
	if len(rowsIdx) != nRows+1 {
		return validatorErrorf(tag, fmt.Sprintf("len(rowsIdx)=%d, want %d", len(rowsIdx), nRows+1), ErrMalformed)
	}

	return nil
}

// validateCSR runs the full structural check for compressed-row input:
// rowsIdx[0]==0, rowsIdx non-decreasing, rowsIdx[nRows]==nnz, strictly
// ascending columns per row, column range, no explicit zeros.
// Assumes lengths were already checked.
// Complexity: O(nRows + nnz).
func validateCSR[T Scalar](nRows, nCols int, values []T, cols, rowsIdx []int) error {
	const tag = "ValidateCSR"
	if rowsIdx[0] != 0 {
		return validatorErrorf(tag, fmt.Sprintf("rowsIdx[0]=%d, want 0", rowsIdx[0]), ErrMalformed)
	}
	if rowsIdx[nRows] != len(values) {
		return validatorErrorf(tag, fmt.Sprintf("rowsIdx[%d]=%d, want nnz=%d", nRows, rowsIdx[nRows], len(values)), ErrMalformed)
	}
	for i := 0; i < nRows; i++ {
		if rowsIdx[i+1] < rowsIdx[i] {
			return validatorErrorf(tag, fmt.Sprintf("rowsIdx decreases at row %d", i), ErrMalformed)
		}
	}
	if err := validateEntries(tag, nCols, values, cols); err != nil {
		return err
	}
	for i := 0; i < nRows; i++ {
		for k := rowsIdx[i] + 1; k < rowsIdx[i+1]; k++ {
			if cols[k] <= cols[k-1] {
				return validatorErrorf(tag, fmt.Sprintf("row %d columns not strictly ascending at %d", i, k), ErrMalformed)
			}
		}
	}

	return nil
}
