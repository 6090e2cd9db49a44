// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for constructors.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: options are captured per matrix at construction.
//   - Policy survives Clone and conversions (the result inherits the source's options).
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Structural validation (WithValidation) is ON by default. WithTrustedInput
//     restores the historical trust model where caller arrays are taken as-is;
//     shape checks and the numeric policy still apply in that mode.
//   - The numeric policy (WithValidateNaNInf) is orthogonal and only affects
//     floating-point element types; integer values are always finite.
package sparse

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidate toggles eager structural validation in NewCOO/NewCSR.
	DefaultValidate = true

	// DefaultValidateNaNInf toggles finite-only validation on construction and Set.
	DefaultValidateNaNInf = true

	// DefaultDisplayLimit is the largest dimension Print renders as a dense grid.
	// Larger matrices are printed as a list of stored entries.
	DefaultDisplayLimit = 10
)

const panicDisplayLimitInvalid = "sparse: WithDisplayLimit: limit must be >= 1"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validate       bool // DefaultValidate
	validateNaNInf bool // DefaultValidateNaNInf
	displayLimit   int  // DefaultDisplayLimit
}

// WithValidation enables eager structural validation (default).
// Malformed input then fails with ErrMalformed.
// Complexity: O(1).
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithTrustedInput disables structural validation: caller arrays are assumed
// to satisfy every invariant of the encoding. Array lengths are still checked
// (O(1)); everything else on malformed input yields undefined results.
//
// AI-Hints:
//   - Use for arrays produced by this package (e.g. re-wrapping RowOffsets()).
func WithTrustedInput() Option {
	return func(o *Options) { o.validate = false }
}

// WithValidateNaNInf rejects NaN and ±Inf values in constructors and Set (default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf allows NaN and ±Inf to be stored.
// Note: NaN is never equal to zero, so it is stored like any non-zero value.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// WithDisplayLimit sets the largest dimension rendered as a dense grid by Print.
// Panics when limit < 1.
func WithDisplayLimit(limit int) Option {
	if limit < 1 {
		panic(panicDisplayLimitInvalid)
	}

	return func(o *Options) { o.displayLimit = limit }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		validate:       DefaultValidate,
		validateNaNInf: DefaultValidateNaNInf,
		displayLimit:   DefaultDisplayLimit,
	}
}

// gatherOptions applies opts over the defaults in order (last write wins).
// Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
