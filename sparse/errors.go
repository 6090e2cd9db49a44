// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every public
// operation returns one of these (possibly wrapped with call-site context)
// and tests MUST match them via errors.Is. No operation panics on
// user-triggered error conditions.

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for easy grepping. Detection
// sites wrap with fmt.Errorf("<Type>.<Method>(...): %w", ErrX); callers still
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/released -> shape -> index/length -> structure -> numeric policy.

var (
	// ErrOutOfRange indicates that a row or column index is negative or not
	// below the corresponding dimension. At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates that a vector operand's length does not
	// match the matrix (len(x) != Cols() in MulVec).
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrMalformed signals that constructor input violates the structural
	// invariants of the representation (lengths, duplicates, ordering, zeros).
	ErrMalformed = errors.New("sparse: malformed matrix")

	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrNilMatrix indicates that a nil matrix or nil vector argument was used.
	ErrNilMatrix = errors.New("sparse: nil argument")

	// ErrReleased signals use of a matrix whose storage was handed over to
	// the result of a conversion (ToCSR/ToCOO/Convert).
	ErrReleased = errors.New("sparse: matrix released by conversion")

	// ErrInvalidDensity signals a RandomCOO density outside [0, 1].
	ErrInvalidDensity = errors.New("sparse: density must be in [0,1]")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-only policy.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"
	ctxSet     = "Set"
	ctxMulVec  = "MulVec"
	ctxNew     = "New"
	ctxPrint   = "Print"
	ctxInfo    = "Info"
	ctxConvert = "Convert"
)

// matrixErrorf wraps err with "<kind>.<method>(row,col)" context.
// Used at the nearest detection site so coordinates are precise.
func matrixErrorf(kind Format, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", kind, method, row, col, err)
}

// opErrorf wraps err with "<kind>.<method>" context (no coordinates).
func opErrorf(kind Format, method string, err error) error {
	return fmt.Errorf("%s.%s: %w", kind, method, err)
}
