// SPDX-License-Identifier: MIT
// Package sparse - public API facades.
//
// Purpose:
//   - Thin, encoding-agnostic entry points over Matrix[T].
//   - No logic duplication: each facade delegates to the concrete encoding,
//     dispatching on the closed {COO, CSR} variant with a type switch.

package sparse

import "fmt"

// isNil reports a nil interface or an interface holding a nil pointer.
func isNil[T Scalar](m Matrix[T]) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *COO[T]:
		return v == nil
	case *CSR[T]:
		return v == nil
	default:
		return false
	}
}

// CloneMatrix returns a deep copy of m with the same dynamic type.
// Returns nil for a nil matrix.
// Complexity: O(nnz + rows).
func CloneMatrix[T Scalar](m Matrix[T]) Matrix[T] {
	if isNil(m) {
		return nil
	}
	switch v := m.(type) {
	case *COO[T]:
		return v.Clone()
	case *CSR[T]:
		return v.Clone()
	}

	return nil
}

// MatVec is an encoding-agnostic alias for m.MulVec(x).
// Errors: ErrNilMatrix plus whatever MulVec returns.
//
// AI-Hints: for large CSR inputs see MulVecParallel.
func MatVec[T Scalar](m Matrix[T], x []T) ([]T, error) {
	if isNil(m) {
		return nil, fmt.Errorf("MatVec: %w", ErrNilMatrix)
	}

	return m.MulVec(x)
}

// FromDense builds a COO matrix holding the non-zero cells of a rectangular
// grid, in row-major order. All rows must have the same, positive length.
// Errors: ErrInvalidDimensions (empty grid), ErrMalformed (ragged rows),
// ErrNaNInf (numeric policy).
// Complexity: O(rows*cols).
func FromDense[T Scalar](grid [][]T, opts ...Option) (*COO[T], error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, opErrorf(FormatCOO, "FromDense", ErrInvalidDimensions)
	}
	nCols := len(grid[0])
	var (
		zero       T
		values     []T
		cols, rows []int
	)
	for i, row := range grid {
		if len(row) != nCols {
			return nil, opErrorf(FormatCOO, "FromDense",
				fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), nCols, ErrMalformed))
		}
		for j, v := range row {
			if v == zero {
				continue
			}
			values = append(values, v)
			cols = append(cols, j)
			rows = append(rows, i)
		}
	}

	return NewCOO(len(grid), nCols, values, cols, rows, opts...)
}

// Equal reports whether a and b have the same shape and the same set of
// stored (row, col, value) triples, independent of encoding or entry order.
// Released or nil matrices are never equal to anything.
// Complexity: O(nnz(a) + nnz(b)).
func Equal[T Scalar](a, b Matrix[T]) bool {
	if isNil(a) || isNil(b) || a.Released() || b.Released() {
		return false
	}
	ar, ac := a.Shape()
	br, bc := b.Shape()
	if ar != br || ac != bc || a.NNZ() != b.NNZ() {
		return false
	}
	entries := make(map[[2]int]T, a.NNZ())
	a.Do(func(i, j int, v T) bool {
		entries[[2]int{i, j}] = v
		return true
	})
	same := true
	b.Do(func(i, j int, v T) bool {
		got, ok := entries[[2]int{i, j}]
		same = ok && got == v
		return same
	})

	return same
}
