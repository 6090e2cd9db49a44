// SPDX-License-Identifier: MIT
// Package: sparse
//
// random.go - RandomCOO(rows, cols, density, seed) generator.
//
// Model:
//   - Bernoulli trial per cell: include (i,j) independently with probability density.
//   - Included cells get a value drawn uniformly from ±[1, 10), never zero.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrInvalidDimensions).
//   - 0 ≤ density ≤ 1 (else ErrInvalidDensity).
//   - seed == 0 selects a fixed default seed; the generator never reads the clock.
//
// Complexity:
//   - Time: O(rows*cols) trials. Space: O(nnz).
//
// Determinism:
//   - Stable trial order: i asc, then j asc; identical output for a fixed seed.

package sparse

import (
	"fmt"
	"math"
	"math/rand"
)

const (
	methodRandomCOO = "RandomCOO"
	densityMin      = 0.0
	densityMax      = 1.0
	randomValueMin  = 1.0
	randomValueSpan = 9.0

	// defaultRandomSeed is used when callers pass seed==0.
	defaultRandomSeed int64 = 1
)

// rngFromSeed returns a deterministic *rand.Rand (seed 0 ⇒ defaultRandomSeed).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRandomSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomCOO samples an nRows×nCols float64 matrix where each cell is stored
// independently with probability density. Entries come out in row-major
// order. opts are forwarded to the result (display limit, numeric policy).
//
// AI-Hints:
//   - Feed the result to ToCSR for CSR fixtures; both keep the same non-zero set.
func RandomCOO(nRows, nCols int, density float64, seed int64, opts ...Option) (*COO[float64], error) {
	if err := validateShape(nRows, nCols); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomCOO, err)
	}
	if density < densityMin || density > densityMax || math.IsNaN(density) {
		return nil, fmt.Errorf("%s: density=%.6f not in [%.1f,%.1f]: %w",
			methodRandomCOO, density, densityMin, densityMax, ErrInvalidDensity)
	}

	rng := rngFromSeed(seed)
	var (
		values     []float64
		cols, rows []int
		v          float64
	)
	for i := 0; i < nRows; i++ {
		for j := 0; j < nCols; j++ {
			if rng.Float64() >= density {
				continue
			}
			v = randomValueMin + rng.Float64()*randomValueSpan
			if rng.Intn(2) == 0 {
				v = -v
			}
			values = append(values, v)
			cols = append(cols, j)
			rows = append(rows, i)
		}
	}

	// Generated input is well-formed by construction.
	return NewCOO(nRows, nCols, values, cols, rows, append([]Option{WithTrustedInput()}, opts...)...)
}
