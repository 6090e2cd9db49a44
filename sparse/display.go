// SPDX-License-Identifier: MIT

// Package sparse - human-readable rendering.
//
// Print layout:
//   - Rows() ≤ limit and Cols() ≤ limit: dense grid, one line per row,
//     "|  v0  v1  ...  vn-1  |".
//   - Otherwise: banner line followed by one "[row,col] = value" line per
//     stored entry (COO in storage order, CSR in row-major order).
//
// Info layout:
//
//	Number of nonzero elements: <nnz>
//	Nonzero values: [ v0 v1 ... ]
//	Columns: [ c0 c1 ... ]
//	Rows: [ ... ]        (COO row indices)
//	Rows_idx: [ ... ]    (CSR row offsets)
//
// Values are formatted with %v.

package sparse

import (
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen    = "|  "
	_fmtCellSep    = "  "
	_fmtRowClose   = "|\n"
	_fmtTooLarge   = "Matrix too large: only sparse values will be printed!\n"
	_fmtEntry      = "[%d,%d] = %v\n"
	_fmtVecOpen    = "[ "
	_fmtVecClose   = "]\n"
	_labelNNZ      = "Number of nonzero elements: "
	_labelValues   = "Nonzero values: "
	_labelCols     = "Columns: "
	_labelRows     = "Rows: "
	_labelRowsIdx  = "Rows_idx: "
	_fmtReleased   = "%s(released)"
	_fmtFieldValue = "%v "
)

// denseOf materialises m as a row-major grid; nil when m is released.
func denseOf[T Scalar](m Matrix[T]) [][]T {
	if m.Released() {
		return nil
	}
	grid := make([][]T, m.Rows())
	for i := range grid {
		grid[i] = make([]T, m.Cols())
	}
	m.Do(func(i, j int, v T) bool {
		grid[i][j] = v
		return true
	})

	return grid
}

// renderMatrix writes the Print layout of m into b.
func renderMatrix[T Scalar](b *strings.Builder, m Matrix[T], limit int) {
	rows, cols := m.Shape()
	if rows <= limit && cols <= limit {
		for _, row := range denseOf(m) {
			b.WriteString(_fmtRowOpen)
			for _, v := range row {
				fmt.Fprint(b, v)
				b.WriteString(_fmtCellSep)
			}
			b.WriteString(_fmtRowClose)
		}
		return
	}
	b.WriteString(_fmtTooLarge)
	m.Do(func(i, j int, v T) bool {
		fmt.Fprintf(b, _fmtEntry, i, j, v)
		return true
	})
}

// renderVector writes "<label>[ a b c ]\n" into b.
func renderVector[E any](b *strings.Builder, label string, xs []E) {
	b.WriteString(label)
	b.WriteString(_fmtVecOpen)
	for _, x := range xs {
		fmt.Fprintf(b, _fmtFieldValue, x)
	}
	b.WriteString(_fmtVecClose)
}

// renderInfo writes the Info layout; third is the encoding-specific index array.
func renderInfo[T Scalar](b *strings.Builder, values []T, cols []int, thirdLabel string, third []int) {
	fmt.Fprintf(b, "%s%d\n", _labelNNZ, len(values))
	renderVector(b, _labelValues, values)
	renderVector(b, _labelCols, cols)
	renderVector(b, thirdLabel, third)
}

// writeOut flushes a rendered buffer to w, wrapping write errors.
func writeOut(kind Format, method string, w io.Writer, b *strings.Builder) error {
	if w == nil {
		return opErrorf(kind, method, ErrNilMatrix)
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return opErrorf(kind, method, err)
	}

	return nil
}

// Print writes the grid or entry-list rendering of m to w.
// Errors: ErrReleased, ErrNilMatrix (nil writer), or the writer's error.
func (m *COO[T]) Print(w io.Writer) error {
	if m.released {
		return opErrorf(FormatCOO, ctxPrint, ErrReleased)
	}
	var b strings.Builder
	renderMatrix[T](&b, m, m.opts.displayLimit)

	return writeOut(FormatCOO, ctxPrint, w, &b)
}

// Info writes nnz, values, cols and the row index array to w.
func (m *COO[T]) Info(w io.Writer) error {
	if m.released {
		return opErrorf(FormatCOO, ctxInfo, ErrReleased)
	}
	var b strings.Builder
	renderInfo(&b, m.values, m.cols, _labelRows, m.rows)

	return writeOut(FormatCOO, ctxInfo, w, &b)
}

// String returns the Print rendering ("COO(released)" once released).
func (m *COO[T]) String() string {
	if m.released {
		return fmt.Sprintf(_fmtReleased, FormatCOO)
	}
	var b strings.Builder
	renderMatrix[T](&b, m, m.opts.displayLimit)

	return b.String()
}

// Print writes the grid or entry-list rendering of m to w.
// Errors: ErrReleased, ErrNilMatrix (nil writer), or the writer's error.
func (m *CSR[T]) Print(w io.Writer) error {
	if m.released {
		return opErrorf(FormatCSR, ctxPrint, ErrReleased)
	}
	var b strings.Builder
	renderMatrix[T](&b, m, m.opts.displayLimit)

	return writeOut(FormatCSR, ctxPrint, w, &b)
}

// Info writes nnz, values, cols and the row-offset array to w.
func (m *CSR[T]) Info(w io.Writer) error {
	if m.released {
		return opErrorf(FormatCSR, ctxInfo, ErrReleased)
	}
	var b strings.Builder
	renderInfo(&b, m.values, m.cols, _labelRowsIdx, m.rowsIdx)

	return writeOut(FormatCSR, ctxInfo, w, &b)
}

// String returns the Print rendering ("CSR(released)" once released).
func (m *CSR[T]) String() string {
	if m.released {
		return fmt.Sprintf(_fmtReleased, FormatCSR)
	}
	var b strings.Builder
	renderMatrix[T](&b, m, m.opts.displayLimit)

	return b.String()
}
