// SPDX-License-Identifier: MIT

// Package sparse - compressed-row (CSR) storage & safe accessors.
//
// Purpose:
//   - Store non-zeros grouped by row: row i owns positions
//     [rowsIdx[i], rowsIdx[i+1]) of the shared values/cols slices.
//   - Keep columns strictly ascending inside each row segment and keep
//     rowsIdx[0]==0, rowsIdx[nRows]==nnz, non-decreasing, under mutation.
//
// Complexity quicksheet:
//   - At: O(row entries); Set: O(row entries) lookup + O(nnz + rows) shift on
//     insert/remove; MulVec: O(nnz + rows); Clone: O(nnz + rows).

package sparse

import "slices"

// CSR is a compressed-row sparse matrix.
//   - nRows,nCols are fixed for the lifetime of the matrix.
//   - values/cols are parallel and enumerate entries in row-major order.
//   - rowsIdx has nRows+1 offsets into values/cols.
type CSR[T Scalar] struct {
	nRows, nCols int
	values       []T   // stored non-zeros, row-major
	cols         []int // column of values[k], ascending within a row
	rowsIdx      []int // row offsets, len == nRows+1
	opts         Options
	released     bool
}

// Compile-time assertion: *CSR implements Matrix.
var _ Matrix[float64] = (*CSR[float64])(nil)

// NewCSR builds an nRows×nCols compressed-row matrix from the value and
// column arrays plus the row-offset index. The slices are copied.
// Implementation:
//   - Stage 1: validate shape and array lengths (len(rowsIdx) == nRows+1).
//   - Stage 2: structural validation (unless WithTrustedInput).
//   - Stage 3: numeric policy (unless WithNoValidateNaNInf).
//   - Stage 4: copy storage.
//
// Errors:
//   - ErrInvalidDimensions, ErrMalformed, ErrNaNInf (wrapped with "CSR.New").
//
// Complexity:
//   - Time O(nnz + rows), Space O(nnz + rows).
func NewCSR[T Scalar](nRows, nCols int, values []T, cols, rowsIdx []int, opts ...Option) (*CSR[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(nRows, nCols); err != nil {
		return nil, opErrorf(FormatCSR, ctxNew, err)
	}
	if err := validateCSRLengths(nRows, values, cols, rowsIdx); err != nil {
		return nil, opErrorf(FormatCSR, ctxNew, err)
	}
	if o.validate {
		if err := validateCSR(nRows, nCols, values, cols, rowsIdx); err != nil {
			return nil, opErrorf(FormatCSR, ctxNew, err)
		}
	}
	if o.validateNaNInf {
		if err := validateFinite("ValidateCSR", values); err != nil {
			return nil, opErrorf(FormatCSR, ctxNew, err)
		}
	}

	return &CSR[T]{
		nRows:   nRows,
		nCols:   nCols,
		values:  slices.Clone(values),
		cols:    slices.Clone(cols),
		rowsIdx: slices.Clone(rowsIdx),
		opts:    o,
	}, nil
}

// NewEmptyCSR returns an nRows×nCols compressed-row matrix with no stored
// entries (rowsIdx all zero).
func NewEmptyCSR[T Scalar](nRows, nCols int, opts ...Option) (*CSR[T], error) {
	if err := validateShape(nRows, nCols); err != nil {
		return nil, opErrorf(FormatCSR, ctxNew, err)
	}

	return NewCSR[T](nRows, nCols, nil, nil, make([]int, nRows+1), opts...)
}

// Rows returns the number of rows (0 once released).
func (m *CSR[T]) Rows() int { return m.nRows }

// Cols returns the number of columns (0 once released).
func (m *CSR[T]) Cols() int { return m.nCols }

// Shape packs Rows() and Cols().
func (m *CSR[T]) Shape() (rows, cols int) { return m.nRows, m.nCols }

// NNZ returns the number of stored entries.
func (m *CSR[T]) NNZ() int { return len(m.values) }

// Values returns a copy of the stored values in row-major order.
func (m *CSR[T]) Values() []T { return slices.Clone(m.values) }

// ColIndices returns a copy of the column index array.
func (m *CSR[T]) ColIndices() []int { return slices.Clone(m.cols) }

// RowOffsets returns a copy of the row-offset index (length Rows()+1).
func (m *CSR[T]) RowOffsets() []int { return slices.Clone(m.rowsIdx) }

// RowNNZ returns the number of stored entries in row i, or ErrOutOfRange.
// Complexity: O(1).
func (m *CSR[T]) RowNNZ(i int) (int, error) {
	if m.released {
		return 0, opErrorf(FormatCSR, "RowNNZ", ErrReleased)
	}
	if i < 0 || i >= m.nRows {
		return 0, matrixErrorf(FormatCSR, "RowNNZ", i, 0, ErrOutOfRange)
	}

	return m.rowsIdx[i+1] - m.rowsIdx[i], nil
}

// Format reports FormatCSR.
func (m *CSR[T]) Format() Format { return FormatCSR }

// Released reports whether a conversion consumed this matrix.
func (m *CSR[T]) Released() bool { return m.released }

func (m *CSR[T]) sealed() {}

// findIndex returns the storage position of (i, j) or -1.
// Scans only row i's segment: O(row entries).
func (m *CSR[T]) findIndex(i, j int) int {
	for k := m.rowsIdx[i]; k < m.rowsIdx[i+1]; k++ {
		if m.cols[k] == j {
			return k
		}
	}

	return -1
}

// insertPos returns the position inside row i's segment where column j
// keeps the segment ascending. Assumes j is not stored.
func (m *CSR[T]) insertPos(i, j int) int {
	k := m.rowsIdx[i]
	end := m.rowsIdx[i+1]
	for k < end && m.cols[k] < j {
		k++
	}

	return k
}

// shiftOffsets adds delta to every row offset after row i.
func (m *CSR[T]) shiftOffsets(i, delta int) {
	for r := i + 1; r <= m.nRows; r++ {
		m.rowsIdx[r] += delta
	}
}

// At returns the value at (i, j); cells without a stored entry read as zero.
// Errors: ErrReleased, ErrOutOfRange.
// Complexity: O(row entries).
func (m *CSR[T]) At(i, j int) (T, error) {
	var zero T
	if m.released {
		return zero, matrixErrorf(FormatCSR, ctxAt, i, j, ErrReleased)
	}
	if err := validateIndex(m.nRows, m.nCols, i, j); err != nil {
		return zero, matrixErrorf(FormatCSR, ctxAt, i, j, err)
	}
	if k := m.findIndex(i, j); k >= 0 {
		return m.values[k], nil
	}

	return zero, nil
}

// Set writes v at (i, j).
// Behavior:
//   - v == 0, entry stored   → entry removed, later row offsets shifted down by one.
//   - v == 0, nothing stored → no-op.
//   - v != 0, entry stored   → value overwritten in place.
//   - v != 0, nothing stored → inserted at its sorted position inside row i,
//     later row offsets shifted up by one.
//
// Errors: ErrReleased, ErrOutOfRange, ErrNaNInf (policy).
// Complexity: O(row entries) lookup; O(nnz + rows) when the structure changes.
func (m *CSR[T]) Set(i, j int, v T) error {
	if m.released {
		return matrixErrorf(FormatCSR, ctxSet, i, j, ErrReleased)
	}
	if err := validateIndex(m.nRows, m.nCols, i, j); err != nil {
		return matrixErrorf(FormatCSR, ctxSet, i, j, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return matrixErrorf(FormatCSR, ctxSet, i, j, ErrNaNInf)
	}

	var zero T
	k := m.findIndex(i, j)
	switch {
	case v == zero && k >= 0:
		m.values = slices.Delete(m.values, k, k+1)
		m.cols = slices.Delete(m.cols, k, k+1)
		m.shiftOffsets(i, -1)
	case v == zero:
		// zero over zero: nothing stored, nothing to do
	case k >= 0:
		m.values[k] = v
	default:
		pos := m.insertPos(i, j)
		m.values = slices.Insert(m.values, pos, v)
		m.cols = slices.Insert(m.cols, pos, j)
		m.shiftOffsets(i, +1)
	}

	return nil
}

// MulVec returns y = M·x with y[i] = Σ values[k]*x[cols[k]] over row i's segment.
// Errors: ErrReleased, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz + rows).
func (m *CSR[T]) MulVec(x []T) ([]T, error) {
	if m.released {
		return nil, opErrorf(FormatCSR, ctxMulVec, ErrReleased)
	}
	if err := ValidateVecLen(x, m.nCols); err != nil {
		return nil, opErrorf(FormatCSR, ctxMulVec, err)
	}
	y := make([]T, m.nRows)
	m.mulRows(x, y, 0, m.nRows)

	return y, nil
}

// mulRows accumulates rows [lo, hi) of M·x into y[lo:hi].
// Shared by MulVec and MulVecParallel; rows are independent.
func (m *CSR[T]) mulRows(x, y []T, lo, hi int) {
	var sum T
	for i := lo; i < hi; i++ {
		sum = 0
		for k := m.rowsIdx[i]; k < m.rowsIdx[i+1]; k++ {
			sum += m.values[k] * x[m.cols[k]]
		}
		y[i] = sum
	}
}

// Do visits stored entries in row-major order; stops when f returns false.
// Complexity: O(nnz + rows).
func (m *CSR[T]) Do(f func(i, j int, v T) bool) {
	for i := 0; i < m.nRows; i++ {
		for k := m.rowsIdx[i]; k < m.rowsIdx[i+1]; k++ {
			if !f(i, m.cols[k], m.values[k]) {
				return
			}
		}
	}
}

// ToDense materialises the full grid (nil once released).
// Complexity: O(rows*cols + nnz).
func (m *CSR[T]) ToDense() [][]T {
	return denseOf[T](m)
}

// Clone returns a deep copy sharing no storage with m (same options).
// Complexity: O(nnz + rows).
func (m *CSR[T]) Clone() *CSR[T] {
	return &CSR[T]{
		nRows:    m.nRows,
		nCols:    m.nCols,
		values:   slices.Clone(m.values),
		cols:     slices.Clone(m.cols),
		rowsIdx:  slices.Clone(m.rowsIdx),
		opts:     m.opts,
		released: m.released,
	}
}

// release drops the storage and marks m as consumed.
func (m *CSR[T]) release() {
	*m = CSR[T]{opts: m.opts, released: true}
}
