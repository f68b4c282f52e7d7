// SPDX-License-Identifier: MIT

// Package eigen: the symmetric eigenvalue solver facade.
//
// Purpose:
//   - Provide the single public operation SymmetricEigenvalues implementing
//     the linear pipeline Validate → Extract → Tridiagonalize → Diagonalize
//     → Reorder, with every stage short-circuiting to a typed error.
//   - Keep all numerical work in the Backend; this file owns validation,
//     buffer lifecycle, diagnostics and ordering only.

package eigen

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/spectra/matrix"
)

// Stage name constants for unified error wrapping and reducing magic strings.
const (
	opValidate       = "Validate"
	opExtract        = "Extract"
	opTridiagonalize = "Tridiagonalize"
	opDiagonalize    = "Diagonalize"
)

// eigenErrorf wraps err with a stage tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func eigenErrorf(stage string, err error) error {
	return fmt.Errorf("%s: %w", stage, err)
}

// stebzPhase names the internal backend phase behind a documented nonzero
// status code of the tridiagonal eigenvalue primitive.
func stebzPhase(info int) string {
	switch info {
	case StatusBisectionFailed:
		return "bisection phase"
	case StatusOrderingFailed:
		return "ordering phase"
	default:
		return "unknown phase"
	}
}

// SymmetricEigenvalues computes the eigenvalues of the leading n×n symmetric
// submatrix of m, writes them into dst[:n] in non-increasing order, and
// returns dst[:n].
//
// Only the triangle selected via WithTriangle (Upper by default) is read;
// the opposite triangle may hold arbitrary finite garbage and is ignored.
// The input matrix is never mutated, and dst is written only after the whole
// pipeline has succeeded — on any failure dst is untouched.
//
// Implementation:
//   - Stage 1 (Validate): non-nil m; n > 0; extents ≥ n; len(dst) ≥ n;
//     working-storage sizes representable. Fail fast, before any backend call.
//   - Stage 2 (Extract): copy the selected triangle of the leading n×n block
//     into a solver-owned row-major buffer. Fast path on *matrix.Dense via
//     RawData (flat per-row copies); interface fallback via At otherwise.
//   - Stage 3 (Tridiagonalize): Backend.Sytrd over the working buffer yields
//     diagonal d, off-diagonal e and reflector coefficients tau (tau is
//     required output storage only — no eigenvectors are requested, so the
//     coefficients are discarded). Scratch is blockFactor·n reals; a backend
//     optimum above the reservation is logged as a warning and the call
//     proceeds.
//   - Stage 4 (Diagonalize): Backend.Stebz over (d, e) — eigenvalues only,
//     entire spectrum, abstol 0 meaning backend default. The count must be
//     exactly n; real scratch is reused, integer scratch is intBlockFactor·n.
//   - Stage 5 (Reorder): sort descending, copy into dst[:n], return.
//
// Behavior highlights:
//   - Reentrant: no package state; concurrent calls with distinct buffers
//     are safe. All working storage is call-local and released on return.
//   - Ties among equal eigenvalues end up adjacent; their mutual order is
//     unspecified.
//
// Inputs:
//   - m:    real square-or-larger matrix; extents must each be ≥ n.
//   - n:    positive order of the symmetric problem.
//   - dst:  output buffer, len(dst) ≥ n.
//   - opts: functional options (triangle, scratch factors, tolerance,
//     logger, backend).
//
// Returns:
//   - []float64: dst[:n] with eigenvalues sorted non-increasing.
//   - error:     nil on success; a stage-tagged sentinel otherwise.
//
// Errors:
//   - matrix.ErrNilMatrix     (m is nil).
//   - ErrBadOrder             (n ≤ 0).
//   - ErrMatrixUndersized     (extents below n; message carries both shapes).
//   - ErrOutputUndersized     (len(dst) < n).
//   - ErrAllocation           (n overflows working-storage sizing).
//   - ErrTridiagonalizeFailed / ErrDiagonalizeFailed (backend status ≠ 0;
//     Diagonalize messages name the failing internal phase when documented).
//   - ErrIncompleteSpectrum   (backend returned fewer than n eigenvalues).
//
// Determinism:
//   - Fixed extraction order (i→j), deterministic sort; identical inputs
//     with identical options yield identical outputs.
//
// Complexity:
//   - Time O(n³), Space O(n²) + O(blockFactor·n) scratch.
func SymmetricEigenvalues(m matrix.Matrix, n int, dst []float64, opts ...Option) ([]float64, error) {
	opt := gatherOptions(opts...)

	// Stage 1 — Validate. Every precondition is checked before any backend
	// call; dst is not written on any of these paths.
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, eigenErrorf(opValidate, err)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s: order n=%d: %w", opValidate, n, ErrBadOrder)
	}
	if err := matrix.ValidateMinOrder(m, n); err != nil {
		return nil, fmt.Errorf("%s: matrix is %d×%d, need at least %d×%d: %w",
			opValidate, m.Rows(), m.Cols(), n, n, ErrMatrixUndersized)
	}
	if err := matrix.ValidateVecCap(dst, n); err != nil {
		return nil, fmt.Errorf("%s: output buffer holds %d, need %d: %w",
			opValidate, len(dst), n, ErrOutputUndersized)
	}
	// Working-copy (n·n) and scratch (factor·n) sizes must be representable.
	if n > math.MaxInt/n || opt.blockFactor > math.MaxInt/n || opt.intBlockFactor > math.MaxInt/n {
		return nil, fmt.Errorf("%s: order n=%d: %w", opValidate, n, ErrAllocation)
	}

	// Stage 2 — Extract the selected triangle into a solver-owned row-major
	// working copy. The opposite triangle stays zero; the backend treats it
	// as don't-care, so full symmetry is not reconstructed.
	var (
		a    = make([]float64, n*n) // working copy, destroyed by Sytrd
		i, j int                    // loop iterators
	)
	if dm, ok := m.(*matrix.Dense); ok {
		// fast-path: flat per-row copies over the raw row-major storage
		raw, stride := dm.RawData(), dm.Cols()
		if opt.triangle == Upper {
			for i = 0; i < n; i++ {
				copy(a[i*n+i:i*n+n], raw[i*stride+i:i*stride+n])
			}
		} else {
			for i = 0; i < n; i++ {
				copy(a[i*n:i*n+i+1], raw[i*stride:i*stride+i+1])
			}
		}
	} else {
		// fallback: interface-based path via At with fixed i→j order
		var (
			v   float64
			err error
		)
		for i = 0; i < n; i++ {
			if opt.triangle == Upper {
				for j = i; j < n; j++ {
					if v, err = m.At(i, j); err != nil {
						return nil, eigenErrorf(opExtract, err)
					}
					a[i*n+j] = v
				}
			} else {
				for j = 0; j <= i; j++ {
					if v, err = m.At(i, j); err != nil {
						return nil, eigenErrorf(opExtract, err)
					}
					a[i*n+j] = v
				}
			}
		}
	}

	// Stage 3 — Tridiagonalize: A → (d, e, tau). tau exists only because the
	// primitive demands output storage for the reflector coefficients; no
	// eigenvectors are requested, so it is dropped after the call.
	var (
		d    = make([]float64, n)                 // diagonal of T
		e    = make([]float64, n)                 // off-diagonal of T; last entry unused
		tau  = make([]float64, n-1)               // reflector scale coefficients, discarded
		work = make([]float64, opt.blockFactor*n) // real scratch, reused by both stages
	)
	optLWork, info := opt.backend.Sytrd(opt.triangle.uplo(), n, a, n, d, e, tau, work, len(work))
	if info != StatusOK {
		return nil, fmt.Errorf("%s: backend status %d: %w", opTridiagonalize, info, ErrTridiagonalizeFailed)
	}
	if optLWork > len(work) {
		// Performance diagnostic only: the reduction already ran to
		// completion on the smaller reservation.
		opt.logger.Warn("eigen: tridiagonalization scratch below backend optimum",
			slog.Int("order", n),
			slog.Int("reserved", len(work)),
			slog.Int("optimal", optLWork))
	}

	// Stage 4 — Diagonalize the tridiagonal form: eigenvalues only, entire
	// spectrum. Real scratch is reused from stage 3.
	var (
		w     = make([]float64, n)                // unordered eigenvalues
		iwork = make([]int, opt.intBlockFactor*n) // integer scratch
	)
	count, optLWork2, optLIWork, info := opt.backend.Stebz(n, d, e, opt.abstol, w, work, iwork)
	if info != StatusOK {
		return nil, fmt.Errorf("%s: backend status %d (%s): %w",
			opDiagonalize, info, stebzPhase(info), ErrDiagonalizeFailed)
	}
	if count != n {
		return nil, fmt.Errorf("%s: got %d eigenvalues, want %d: %w",
			opDiagonalize, count, n, ErrIncompleteSpectrum)
	}
	if optLWork2 > len(work) || optLIWork > len(iwork) {
		opt.logger.Warn("eigen: diagonalization scratch below backend optimum",
			slog.Int("order", n),
			slog.Int("reserved_real", len(work)),
			slog.Int("optimal_real", optLWork2),
			slog.Int("reserved_int", len(iwork)),
			slog.Int("optimal_int", optLIWork))
	}

	// Stage 5 — Reorder descending and publish. dst is written here and only
	// here, so failed calls never leave partial output behind.
	sort.Sort(sort.Reverse(sort.Float64Slice(w)))
	copy(dst[:n], w)

	return dst[:n], nil
}
