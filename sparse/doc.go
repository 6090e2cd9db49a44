// Package sparse offers sparse matrix encodings with element-level access,
// matrix–vector products and lossless conversion between encodings.
//
// The sparse package provides:
//
//   - COO (coordinate list): unordered (row, col, value) triples, O(nnz) lookups.
//   - CSR (compressed row): row-grouped entries with a row-offset index and
//     ascending columns per row, O(row entries) lookups.
//   - ToCSR / ToCOO / Convert: ownership-transferring conversions; the source
//     is released and further use returns ErrReleased.
//   - MulVec (both encodings) and MulVecParallel (CSR, row strips).
//   - AsGonum / ToGonumDense for gonum.org/v1/gonum/mat interop.
//
// Unstored cells read as zero. Writing zero removes an entry, writing a
// non-zero value updates or inserts one, so no explicit zero is ever stored.
//
// Matrices are not safe for concurrent mutation; callers serialise writers.
//
// See the examples in this package and examples/sparse_walkthrough.
package sparse
