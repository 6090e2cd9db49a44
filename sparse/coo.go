// SPDX-License-Identifier: MIT

// Package sparse - coordinate list (COO) storage & safe accessors.
//
// Purpose:
//   - Store each non-zero as an explicit (row, col, value) triple in three
//     parallel slices; order of entries is not significant.
//   - Guarantee the representation invariants under mutation: no duplicate
//     coordinates, no explicit zeros, len(values)==len(cols)==len(rows).
//   - Keep the public surface panic-free: At/Set/MulVec return sentinel errors.
//
// Complexity quicksheet:
//   - NewCOO: O(nnz) (copy + validation); At/Set: O(nnz) linear scan;
//     MulVec: O(nnz + rows); Clone: O(nnz).

package sparse

import "slices"

// COO is a coordinate-list sparse matrix.
//   - nRows,nCols are fixed for the lifetime of the matrix.
//   - values/cols/rows are parallel; entry k is (rows[k], cols[k], values[k]).
//   - released is set once a conversion took ownership of the storage.
type COO[T Scalar] struct {
	nRows, nCols int
	values       []T   // stored non-zeros, storage order
	cols         []int // column of values[k]
	rows         []int // row of values[k]
	opts         Options
	released     bool
}

// Compile-time assertion: *COO implements Matrix.
var _ Matrix[float64] = (*COO[float64])(nil)

// NewCOO builds an nRows×nCols coordinate matrix from parallel arrays
// (value, column, row of each stored entry). The slices are copied.
// Implementation:
//   - Stage 1: validate shape and array lengths.
//   - Stage 2: structural validation (unless WithTrustedInput).
//   - Stage 3: numeric policy (unless WithNoValidateNaNInf).
//   - Stage 4: copy storage.
//
// Errors:
//   - ErrInvalidDimensions, ErrMalformed, ErrNaNInf (wrapped with "COO.New").
//
// Complexity:
//   - Time O(nnz), Space O(nnz).
func NewCOO[T Scalar](nRows, nCols int, values []T, cols, rows []int, opts ...Option) (*COO[T], error) {
	o := gatherOptions(opts...)
	if err := validateShape(nRows, nCols); err != nil {
		return nil, opErrorf(FormatCOO, ctxNew, err)
	}
	if err := validateCOOLengths(values, cols, rows); err != nil {
		return nil, opErrorf(FormatCOO, ctxNew, err)
	}
	if o.validate {
		if err := validateCOO(nRows, nCols, values, cols, rows); err != nil {
			return nil, opErrorf(FormatCOO, ctxNew, err)
		}
	}
	if o.validateNaNInf {
		if err := validateFinite("ValidateCOO", values); err != nil {
			return nil, opErrorf(FormatCOO, ctxNew, err)
		}
	}

	return &COO[T]{
		nRows:  nRows,
		nCols:  nCols,
		values: slices.Clone(values),
		cols:   slices.Clone(cols),
		rows:   slices.Clone(rows),
		opts:   o,
	}, nil
}

// NewEmptyCOO returns an nRows×nCols coordinate matrix with no stored entries.
func NewEmptyCOO[T Scalar](nRows, nCols int, opts ...Option) (*COO[T], error) {
	return NewCOO[T](nRows, nCols, nil, nil, nil, opts...)
}

// Rows returns the number of rows (0 once released).
func (m *COO[T]) Rows() int { return m.nRows }

// Cols returns the number of columns (0 once released).
func (m *COO[T]) Cols() int { return m.nCols }

// Shape packs Rows() and Cols().
func (m *COO[T]) Shape() (rows, cols int) { return m.nRows, m.nCols }

// NNZ returns the number of stored entries.
func (m *COO[T]) NNZ() int { return len(m.values) }

// Values returns a copy of the stored values in storage order.
func (m *COO[T]) Values() []T { return slices.Clone(m.values) }

// ColIndices returns a copy of the column index array.
func (m *COO[T]) ColIndices() []int { return slices.Clone(m.cols) }

// RowIndices returns a copy of the row index array.
func (m *COO[T]) RowIndices() []int { return slices.Clone(m.rows) }

// Format reports FormatCOO.
func (m *COO[T]) Format() Format { return FormatCOO }

// Released reports whether a conversion consumed this matrix.
func (m *COO[T]) Released() bool { return m.released }

func (m *COO[T]) sealed() {}

// findIndex returns the storage position of (i, j) or -1.
// Linear scan over all stored entries: O(nnz).
func (m *COO[T]) findIndex(i, j int) int {
	for k := range m.values {
		if m.rows[k] == i && m.cols[k] == j {
			return k
		}
	}

	return -1
}

// At returns the value at (i, j); cells without a stored entry read as zero.
// Errors: ErrReleased, ErrOutOfRange.
// Complexity: O(nnz).
func (m *COO[T]) At(i, j int) (T, error) {
	var zero T
	if m.released {
		return zero, matrixErrorf(FormatCOO, ctxAt, i, j, ErrReleased)
	}
	if err := validateIndex(m.nRows, m.nCols, i, j); err != nil {
		return zero, matrixErrorf(FormatCOO, ctxAt, i, j, err)
	}
	if k := m.findIndex(i, j); k >= 0 {
		return m.values[k], nil
	}

	return zero, nil
}

// Set writes v at (i, j).
// Behavior:
//   - v == 0, entry stored   → entry removed (nnz-1), relative order kept.
//   - v == 0, nothing stored → no-op.
//   - v != 0, entry stored   → value overwritten in place.
//   - v != 0, nothing stored → triple appended (nnz+1).
//
// Errors: ErrReleased, ErrOutOfRange, ErrNaNInf (policy).
// Complexity: O(nnz).
func (m *COO[T]) Set(i, j int, v T) error {
	if m.released {
		return matrixErrorf(FormatCOO, ctxSet, i, j, ErrReleased)
	}
	if err := validateIndex(m.nRows, m.nCols, i, j); err != nil {
		return matrixErrorf(FormatCOO, ctxSet, i, j, err)
	}
	if m.opts.validateNaNInf && isNonFinite(v) {
		return matrixErrorf(FormatCOO, ctxSet, i, j, ErrNaNInf)
	}

	var zero T
	k := m.findIndex(i, j)
	switch {
	case v == zero && k >= 0:
		m.values = slices.Delete(m.values, k, k+1)
		m.cols = slices.Delete(m.cols, k, k+1)
		m.rows = slices.Delete(m.rows, k, k+1)
	case v == zero:
		// zero over zero: nothing stored, nothing to do
	case k >= 0:
		m.values[k] = v
	default:
		m.values = append(m.values, v)
		m.cols = append(m.cols, j)
		m.rows = append(m.rows, i)
	}

	return nil
}

// MulVec returns y = M·x with y[rows[k]] += values[k]*x[cols[k]] for every
// stored entry. Relies on the no-duplicate invariant; duplicates (possible
// only under WithTrustedInput) would be summed.
// Errors: ErrReleased, ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(nnz + rows).
func (m *COO[T]) MulVec(x []T) ([]T, error) {
	if m.released {
		return nil, opErrorf(FormatCOO, ctxMulVec, ErrReleased)
	}
	if err := ValidateVecLen(x, m.nCols); err != nil {
		return nil, opErrorf(FormatCOO, ctxMulVec, err)
	}
	y := make([]T, m.nRows)
	for k, v := range m.values {
		y[m.rows[k]] += v * x[m.cols[k]]
	}

	return y, nil
}

// Do visits stored entries in storage order; stops when f returns false.
// Complexity: O(nnz).
func (m *COO[T]) Do(f func(i, j int, v T) bool) {
	for k, v := range m.values {
		if !f(m.rows[k], m.cols[k], v) {
			return
		}
	}
}

// ToDense materialises the full grid (nil once released).
// Complexity: O(rows*cols + nnz).
func (m *COO[T]) ToDense() [][]T {
	return denseOf[T](m)
}

// Clone returns a deep copy sharing no storage with m (same options).
// Cloning a released matrix yields another released matrix.
// Complexity: O(nnz).
func (m *COO[T]) Clone() *COO[T] {
	return &COO[T]{
		nRows:    m.nRows,
		nCols:    m.nCols,
		values:   slices.Clone(m.values),
		cols:     slices.Clone(m.cols),
		rows:     slices.Clone(m.rows),
		opts:     m.opts,
		released: m.released,
	}
}

// release drops the storage and marks m as consumed.
func (m *COO[T]) release() {
	*m = COO[T]{opts: m.opts, released: true}
}
