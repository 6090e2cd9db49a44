// SPDX-License-Identifier: MIT

// Package sparse - interoperability with gonum.org/v1/gonum/mat.
//
// AsGonum exposes a sparse matrix through the minimal mat.Matrix contract
// (Dims, At, T) so gonum routines can read it without a dense copy.
// The view is read-only and follows gonum's conventions: At panics with
// mat.ErrRowAccess / mat.ErrColAccess on invalid indices.

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// gonumView adapts Matrix[T] to mat.Matrix, converting elements to float64.
type gonumView[T Scalar] struct {
	m Matrix[T]
}

// Compile-time assertion: gonumView implements mat.Matrix.
var _ mat.Matrix = gonumView[float64]{}

// AsGonum returns a live, read-only mat.Matrix view of m.
// Later writes through m.Set are visible through the view.
// Complexity: O(1); each At costs what m.At costs.
func AsGonum[T Scalar](m Matrix[T]) mat.Matrix {
	return gonumView[T]{m: m}
}

// Dims returns the matrix shape.
func (v gonumView[T]) Dims() (r, c int) { return v.m.Shape() }

// At returns element (i, j) as float64; panics on invalid indices like gonum types.
func (v gonumView[T]) At(i, j int) float64 {
	r, c := v.m.Shape()
	if i < 0 || i >= r {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= c {
		panic(mat.ErrColAccess)
	}
	x, _ := v.m.At(i, j) // indices validated above

	return float64(x)
}

// T returns the implicit transpose of the view.
func (v gonumView[T]) T() mat.Matrix { return mat.Transpose{Matrix: v} }

// ToGonumDense copies m into a new *mat.Dense.
// Errors: ErrNilMatrix, ErrReleased.
// Complexity: O(rows*cols + nnz).
func ToGonumDense[T Scalar](m Matrix[T]) (*mat.Dense, error) {
	if isNil(m) {
		return nil, fmt.Errorf("ToGonumDense: %w", ErrNilMatrix)
	}
	if m.Released() {
		return nil, opErrorf(m.Format(), "ToGonumDense", ErrReleased)
	}
	rows, cols := m.Shape()
	d := mat.NewDense(rows, cols, nil)
	m.Do(func(i, j int, v T) bool {
		d.Set(i, j, float64(v))
		return true
	})

	return d, nil
}
