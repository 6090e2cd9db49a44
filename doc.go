// Package lvsparse is a small, generic sparse-matrix toolkit: two storage
// encodings, element access with zero elision, matrix–vector products and
// consuming conversions between the encodings.
//
// 🚀 What is lvsparse?
//
//	A pure-Go library built around one idea: store only the non-zeros.
//		• COO: parallel (value, col, row) arrays, entries in any order
//		• CSR: (value, col) arrays plus per-row offsets, row-major and sorted
//		• Reads and writes by (row, col); writing zero removes the entry
//		• y = M·x products, serial or strip-parallel for CSR
//		• COO ⇄ CSR conversions that release their source
//		• gonum/mat read-only view for interop with dense routines
//
// ✨ Why choose lvsparse?
//
//   - Generic – one implementation for every integer and float kind
//   - Validated – malformed arrays are rejected at construction
//   - Explicit errors – sentinel errors matched with errors.Is, no panics
//
// Everything lives in one subpackage:
//
//	sparse/ – COO, CSR, conversions, products, display, random fixtures
//
// Quick example (the walkthrough matrix):
//
//	|  0  0  3.1  0  4    |      values  = [3.1 4 5 7.4 2 6]
//	|  0  0  5    0  7.4  |      cols    = [2 4 2 4 1 3]
//	|  0  0  0    0  0    |      rows    = [0 0 1 1 3 3]      (COO)
//	|  0  2  0    6  0    |      rowsIdx = [0 2 4 4 6]        (CSR)
//
// Run examples/sparse_walkthrough for the full replay.
//
//	go get github.com/katalvlaran/lvsparse/sparse
package lvsparse
