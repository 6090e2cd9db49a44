// SPDX-License-Identifier: MIT

// Package sparse - row-parallel CSR product.
//
// Rows of a CSR product are independent, so the output is split into
// horizontal strips of RowsPerStrip rows; a bounded errgroup runs one strip
// per task. Each task writes a disjoint y[lo:hi] window, so no locking is
// needed and the result is bit-identical to MulVec.
//
// The matrix must not be mutated while the call is in flight.

package sparse

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

const (
	// RowsPerStrip is the number of rows handled by one task.
	RowsPerStrip = 64

	// MinParallelRows is the row count below which MulVecParallel runs serially.
	MinParallelRows = 2 * RowsPerStrip

	ctxMulVecParallel = "MulVecParallel"
)

// MulVecParallel computes y = M·x over row strips with at most workers
// concurrent tasks (workers ≤ 0 means GOMAXPROCS).
// Implementation:
//   - Stage 1: validate matrix state and vector length.
//   - Stage 2: small matrices or workers==1 fall back to the serial kernel.
//   - Stage 3: schedule strips on a bounded errgroup; stop scheduling once ctx is done.
//
// Errors: ErrNilMatrix, ErrReleased, ErrDimensionMismatch, or ctx.Err().
// Complexity: O(nnz + rows) total work.
func MulVecParallel[T Scalar](ctx context.Context, m *CSR[T], x []T, workers int) ([]T, error) {
	if m == nil {
		return nil, opErrorf(FormatCSR, ctxMulVecParallel, ErrNilMatrix)
	}
	if m.released {
		return nil, opErrorf(FormatCSR, ctxMulVecParallel, ErrReleased)
	}
	if err := ValidateVecLen(x, m.nCols); err != nil {
		return nil, opErrorf(FormatCSR, ctxMulVecParallel, err)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	y := make([]T, m.nRows)
	if workers == 1 || m.nRows < MinParallelRows {
		if err := ctx.Err(); err != nil {
			return nil, opErrorf(FormatCSR, ctxMulVecParallel, err)
		}
		m.mulRows(x, y, 0, m.nRows)
		return y, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < m.nRows; lo += RowsPerStrip {
		if gctx.Err() != nil {
			break
		}
		lo := lo
		hi := min(lo+RowsPerStrip, m.nRows)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m.mulRows(x, y, lo, hi)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, opErrorf(FormatCSR, ctxMulVecParallel, err)
	}
	// The parent may have been cancelled after the last strip was scheduled.
	if err := ctx.Err(); err != nil {
		return nil, opErrorf(FormatCSR, ctxMulVecParallel, err)
	}

	return y, nil
}
