// SPDX-License-Identifier: MIT

// Package sparse: domain types shared by both encodings.
// This file holds ONLY the element constraint, the format tag and the public
// Matrix interface. Storage lives in coo.go / csr.go.
package sparse

import "io"

// Scalar is the set of element types a sparse matrix may hold.
// The additive identity is the zero value of the type.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Format tags the concrete encoding behind a Matrix.
type Format uint8

const (
	// FormatCOO is the coordinate list encoding (row, col, value) triples.
	FormatCOO Format = iota + 1
	// FormatCSR is the compressed-row encoding with a row-offset index.
	FormatCSR
)

// String returns "COO" or "CSR"; used as the type tag in error context.
func (f Format) String() string {
	switch f {
	case FormatCOO:
		return "COO"
	case FormatCSR:
		return "CSR"
	default:
		return "Format(?)"
	}
}

// Matrix is the capability shared by the two sparse encodings.
// The set of implementations is closed: only *COO[T] and *CSR[T] satisfy it
// (see the unexported sealed method); code that needs the concrete encoding
// switches on the dynamic type.
//
// Complexity notes: Rows/Cols/NNZ are O(1); At/Set cost O(nnz) for COO and
// O(row entries) for CSR, plus O(nnz) shifting on CSR insert/remove;
// MulVec is O(nnz + Rows()).
type Matrix[T Scalar] interface {
	// Rows returns the number of rows (0 once released).
	Rows() int

	// Cols returns the number of columns (0 once released).
	Cols() int

	// Shape packs Rows() and Cols().
	Shape() (rows, cols int)

	// NNZ returns the number of stored (non-zero) entries.
	NNZ() int

	// Values returns a copy of the stored values in storage order.
	Values() []T

	// ColIndices returns a copy of the column index of each stored value.
	ColIndices() []int

	// At reads (i, j); unstored cells read as zero.
	// Returns ErrOutOfRange on invalid indices.
	At(i, j int) (T, error)

	// Set writes v at (i, j), inserting, updating or removing the stored
	// entry so that no explicit zero is ever kept.
	Set(i, j int, v T) error

	// MulVec returns y = M·x visiting only stored entries.
	// Returns ErrDimensionMismatch when len(x) != Cols().
	MulVec(x []T) ([]T, error)

	// Do visits stored entries; stops when f returns false.
	Do(f func(i, j int, v T) bool)

	// ToDense materialises the full Rows()×Cols() grid.
	ToDense() [][]T

	// Print writes the human-readable grid (or entry list) to w.
	Print(w io.Writer) error

	// Info writes nnz and the raw storage arrays to w.
	Info(w io.Writer) error

	// String returns what Print would write.
	String() string

	// Format reports the concrete encoding.
	Format() Format

	// Released reports whether a conversion consumed this matrix.
	Released() bool

	sealed()
}
