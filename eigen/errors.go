// SPDX-License-Identifier: MIT
// Package eigen: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the eigen
// package. The solver MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions;
// panics are reserved for programmer errors in option constructors.

package eigen

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "eigen: ..." for consistency and to allow
// easy grepping across logs. Sentinels are wrapped at the solver facade with
// a stage tag and the concrete quantities involved (expected vs actual size,
// backend status code); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> bad order -> matrix extents -> output capacity -> allocation
// -> backend failures.

var (
	// ErrBadOrder is returned when the declared order n is not positive.
	// Detected before any backend call.
	ErrBadOrder = errors.New("eigen: order must be positive")

	// ErrMatrixUndersized indicates the input matrix extents do not cover the
	// declared n×n leading submatrix. Detected before any backend call.
	ErrMatrixUndersized = errors.New("eigen: matrix extents below declared order")

	// ErrOutputUndersized indicates the caller's output buffer cannot hold n
	// eigenvalues. Detected before any backend call; the buffer is never
	// written on this path.
	ErrOutputUndersized = errors.New("eigen: output buffer shorter than declared order")

	// ErrAllocation signals that working storage could not be sized — the
	// declared order overflows the addressable working-copy or scratch sizes.
	ErrAllocation = errors.New("eigen: working storage cannot be sized")

	// ErrTridiagonalizeFailed reports a nonzero status from the backend's
	// symmetric→tridiagonal reduction. The wrapping message names the code.
	ErrTridiagonalizeFailed = errors.New("eigen: tridiagonal reduction failed")

	// ErrDiagonalizeFailed reports a nonzero status from the backend's
	// tridiagonal eigenvalue primitive. The wrapping message names the code
	// and, for the documented codes, the internal phase that failed.
	ErrDiagonalizeFailed = errors.New("eigen: tridiagonal eigenvalue computation failed")

	// ErrIncompleteSpectrum indicates the backend reported success but
	// returned fewer than n eigenvalues. A full symmetric problem must yield
	// the whole spectrum; anything less is backend inconsistency.
	ErrIncompleteSpectrum = errors.New("eigen: backend returned an incomplete spectrum")
)
