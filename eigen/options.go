// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the symmetric eigenvalue
// solver. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Triangle selection replaces the original optional argument with an
//     explicit enumerated option; the default is Upper.
//   - Scratch block factors replace compile-time sizing constants; they trade
//     memory for backend performance, and undersizing is a warning (reported
//     on the configured logger), never a failure.
package eigen

import (
	"log/slog"
	"math"

	"gonum.org/v1/gonum/blas"
)

// Triangle selects which half of a symmetric matrix holds valid data; the
// other half is ignored entirely and may contain garbage.
type Triangle uint8

const (
	// Upper trusts entries on and above the main diagonal.
	Upper Triangle = iota
	// Lower trusts entries on and below the main diagonal.
	Lower
)

// String implements fmt.Stringer for diagnostics.
func (t Triangle) String() string {
	switch t {
	case Upper:
		return "Upper"
	case Lower:
		return "Lower"
	default:
		return "Triangle(invalid)"
	}
}

// uplo maps the selector onto the backend's triangle convention.
func (t Triangle) uplo() blas.Uplo {
	if t == Lower {
		return blas.Lower
	}

	return blas.Upper
}

// DEFAULTS - single source of truth for zero-value behavior.
// These constants MUST reflect the intended defaults in defaultOptions.
const (
	// DefaultTriangle is the triangle trusted when WithTriangle is absent.
	DefaultTriangle = Upper

	// DefaultBlockFactor sizes the real scratch buffer as factor·n. The
	// reference reservation is generous (80·n) so the backend's blocked
	// execution path is never starved.
	DefaultBlockFactor = 80

	// DefaultIntBlockFactor sizes the integer scratch buffer as factor·n.
	DefaultIntBlockFactor = 8

	// DefaultTolerance is the absolute tolerance handed to the tridiagonal
	// eigenvalue primitive; zero lets the backend choose its own default.
	DefaultTolerance = 0.0

	// minBlockFactor is the floor for real scratch: the tridiagonal stage
	// needs at least 4·n reals.
	minBlockFactor = 4

	// minIntBlockFactor is the floor for integer scratch: the tridiagonal
	// stage needs at least 3·n integers.
	minIntBlockFactor = 3
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicTriangleInvalid       = "eigen: WithTriangle: selector must be Upper or Lower"
	panicBlockFactorInvalid    = "eigen: WithBlockFactor: factor must be >= 4"
	panicIntBlockFactorInvalid = "eigen: WithIntBlockFactor: factor must be >= 3"
	panicToleranceInvalid      = "eigen: WithTolerance: abstol must be finite, non-negative"
	panicLoggerNil             = "eigen: WithLogger: logger must be non-nil"
	panicBackendNil            = "eigen: WithBackend: backend must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	triangle       Triangle     // DefaultTriangle
	blockFactor    int          // DefaultBlockFactor; real scratch = factor·n
	intBlockFactor int          // DefaultIntBlockFactor; integer scratch = factor·n
	abstol         float64      // DefaultTolerance; 0 = backend default
	logger         *slog.Logger // nil until gatherOptions resolves slog.Default()
	backend        Backend      // nil until gatherOptions resolves DefaultBackend()
}

// ---------- Constructors (WithX) ----------

// WithTriangle selects the trusted triangle of the input matrix.
// Panics on selectors outside {Upper, Lower}.
func WithTriangle(t Triangle) Option {
	// Validate eagerly: an invalid selector is a programmer error.
	if t != Upper && t != Lower {
		panic(panicTriangleInvalid)
	}

	return func(o *Options) { o.triangle = t }
}

// WithBlockFactor sets the real scratch sizing factor (scratch = factor·n).
// Larger factors let the backend run its blocked path on bigger problems;
// smaller reservations degrade performance only, never correctness.
// Panics when factor < 4 (the tridiagonal stage minimum).
func WithBlockFactor(factor int) Option {
	if factor < minBlockFactor {
		panic(panicBlockFactorInvalid)
	}

	return func(o *Options) { o.blockFactor = factor }
}

// WithIntBlockFactor sets the integer scratch sizing factor.
// Panics when factor < 3 (the tridiagonal stage minimum).
func WithIntBlockFactor(factor int) Option {
	if factor < minIntBlockFactor {
		panic(panicIntBlockFactorInvalid)
	}

	return func(o *Options) { o.intBlockFactor = factor }
}

// WithTolerance sets the absolute tolerance for the tridiagonal eigenvalue
// stage. Zero keeps the backend's own default.
// Panics when abstol is negative, NaN or ±Inf.
func WithTolerance(abstol float64) Option {
	if abstol < 0 || math.IsNaN(abstol) || math.IsInf(abstol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.abstol = abstol }
}

// WithLogger routes scratch-sufficiency diagnostics to l. The solver only
// ever logs warnings; it never logs on the success or failure paths proper.
// Panics on nil (use the default to keep slog.Default()).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithBackend replaces the gonum-backed default Backend. Intended for native
// LAPACK bindings and for failure injection in tests.
// Panics on nil.
func WithBackend(b Backend) Option {
	if b == nil {
		panic(panicBackendNil)
	}

	return func(o *Options) { o.backend = b }
}

// ---------- Internal resolution ----------

// defaultOptions returns the documented zero-configuration state.
func defaultOptions() Options {
	return Options{
		triangle:       DefaultTriangle,
		blockFactor:    DefaultBlockFactor,
		intBlockFactor: DefaultIntBlockFactor,
		abstol:         DefaultTolerance,
	}
}

// gatherOptions applies setters over defaults and resolves the lazy fields.
// All invariants are already enforced by the WithX constructors.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	// Resolve lazily so package init order never pins a stale default logger.
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.backend == nil {
		o.backend = DefaultBackend()
	}

	return o
}
