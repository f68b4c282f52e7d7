// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/symmetry checks here.
//  - Return plain sentinel errors (no wrapping beyond the validator tag) so
//    call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the non-negative tolerance used by structural checks
// (symmetry) when the caller has no stricter policy of its own.
const DefaultEpsilon = 1e-9

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare when Rows != Cols.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMinOrder ensures both extents of m cover a leading n×n submatrix.
//
// Implementation: assumes m is not nil (caller must ensure). Matrices larger
// than n are fine; only undersized extents are rejected.
// Errors: ErrDimensionMismatch when Rows < n or Cols < n.
// Complexity: O(1).
func ValidateMinOrder(m Matrix, n int) error {
	// Row extent must cover the leading block.
	if m.Rows() < n {
		return validatorErrorf("ValidateMinOrder: Rows", ErrDimensionMismatch)
	}
	// Column extent must cover the leading block.
	if m.Cols() < n {
		return validatorErrorf("ValidateMinOrder: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecCap ensures the vector has capacity for at least n entries.
// Time: O(1). Space: O(1).
func ValidateVecCap(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in output routines.
	if x == nil {
		return validatorErrorf("ValidateVecCap", ErrNilMatrix) // we reuse the existing sentinel for "nil argument"
	}
	// Check the minimum expected length.
	if len(x) < n {
		return validatorErrorf("ValidateVecCap", ErrDimensionMismatch) // vector must hold at least n entries
	}

	return nil
}

// ValidateSymmetric checks |m[i,j] − m[j,i]| ≤ eps over the strict upper
// triangle. Use before routines that require BOTH triangles to agree; the
// eigen solver deliberately does NOT call this, because its contract trusts
// one triangle and ignores the other.
//
// Implementation:
//   - Stage 1: NotNil → Square (fixed sequence).
//   - Stage 2: scan i<j only; fixed i→j order for determinism.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrAsymmetry; At errors propagate wrapped.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, eps float64) error {
	// Composite sequence: nil first, then shape.
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}

	n := m.Rows()
	var (
		i, j     int     // loop iterators over the strict upper triangle
		vij, vji float64 // mirrored entries
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if vij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if vji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if math.Abs(vij-vji) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: (%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}
