// SPDX-License-Identifier: MIT

// Package sparse - ownership-transferring conversions between encodings.
//
// Contract:
//   - ToCSR / ToCOO consume their input: on success the source is released
//     (storage dropped, every later accessor fails with ErrReleased) and the
//     caller owns the returned matrix. On error the source is left untouched.
//   - The non-zero set is preserved exactly: same (row, col, value) triples.
//   - Options (validation/numeric/display policy) move with the storage.
//
// Determinism:
//   - COO→CSR orders entries by row, then by ascending column.
//   - CSR→COO emits entries in the CSR's row-major order.

package sparse

import (
	"cmp"
	"fmt"
	"slices"
)

// ToCSR converts a COO matrix into CSR form and releases m.
// Implementation:
//   - Stage 1: count entries per row; running total gives rowsIdx (rowsIdx[0]=0).
//   - Stage 2: bucket entry positions by row (stable counting sort).
//   - Stage 3: sort each row bucket by column; gather values/cols.
//   - Stage 4: release the source.
//
// Errors: ErrNilMatrix, ErrReleased (wrapped with "COO.Convert").
// Complexity: O(nnz log(max row entries) + rows) time, O(nnz + rows) space.
func ToCSR[T Scalar](m *COO[T]) (*CSR[T], error) {
	if m == nil {
		return nil, opErrorf(FormatCOO, ctxConvert, ErrNilMatrix)
	}
	if m.released {
		return nil, opErrorf(FormatCOO, ctxConvert, ErrReleased)
	}

	nnz := len(m.values)
	rowsIdx := make([]int, m.nRows+1)
	for _, r := range m.rows {
		rowsIdx[r+1]++
	}
	for i := 0; i < m.nRows; i++ {
		rowsIdx[i+1] += rowsIdx[i]
	}

	// order[p] is the COO position that lands at CSR position p.
	order := make([]int, nnz)
	next := slices.Clone(rowsIdx[:m.nRows])
	for k, r := range m.rows {
		order[next[r]] = k
		next[r]++
	}
	byCol := func(a, b int) int { return cmp.Compare(m.cols[a], m.cols[b]) }
	for i := 0; i < m.nRows; i++ {
		slices.SortFunc(order[rowsIdx[i]:rowsIdx[i+1]], byCol)
	}

	values := make([]T, nnz)
	cols := make([]int, nnz)
	for p, k := range order {
		values[p] = m.values[k]
		cols[p] = m.cols[k]
	}

	out := &CSR[T]{
		nRows:   m.nRows,
		nCols:   m.nCols,
		values:  values,
		cols:    cols,
		rowsIdx: rowsIdx,
		opts:    m.opts,
	}
	m.release()

	return out, nil
}

// ToCOO converts a CSR matrix into COO form and releases m.
// The values and cols slices are handed over as-is (they already enumerate
// entries in row-major order); only the rows array is built, by repeating
// row i once per entry of its segment.
//
// Errors: ErrNilMatrix, ErrReleased (wrapped with "CSR.Convert").
// Complexity: O(nnz + rows) time, O(nnz) extra space.
func ToCOO[T Scalar](m *CSR[T]) (*COO[T], error) {
	if m == nil {
		return nil, opErrorf(FormatCSR, ctxConvert, ErrNilMatrix)
	}
	if m.released {
		return nil, opErrorf(FormatCSR, ctxConvert, ErrReleased)
	}

	rows := make([]int, 0, len(m.values))
	for i := 0; i < m.nRows; i++ {
		for k := m.rowsIdx[i]; k < m.rowsIdx[i+1]; k++ {
			rows = append(rows, i)
		}
	}

	out := &COO[T]{
		nRows:  m.nRows,
		nCols:  m.nCols,
		values: m.values,
		cols:   m.cols,
		rows:   rows,
		opts:   m.opts,
	}
	m.release()

	return out, nil
}

// Convert switches m to the other encoding (COO↔CSR) and releases m.
// Errors: ErrNilMatrix for a nil interface or nil pointer, ErrReleased.
func Convert[T Scalar](m Matrix[T]) (Matrix[T], error) {
	switch src := m.(type) {
	case *COO[T]:
		out, err := ToCSR(src)
		if err != nil {
			return nil, err
		}
		return out, nil
	case *CSR[T]:
		out, err := ToCOO(src)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s: %w", ctxConvert, ErrNilMatrix)
	}
}
