// SPDX-License-Identifier: MIT

// Package eigen: the dense linear-algebra backend contract and its default
// gonum-backed implementation.
//
// Purpose:
//   - Declare the two primitives the solver consumes (symmetric→tridiagonal
//     reduction and tridiagonal eigenvalues), shaped after the LAPACK
//     DSYTRD/DSTEBZ pair so native backends drop in without adaptation.
//   - Keep ABI/linkage concerns of native backends out of the solver: any
//     symbol-name variance disappears behind this interface.
//
// Determinism & Policy:
//   - Backends must be safe for concurrent independent invocations with
//     distinct buffers (standard dense linear-algebra contract).
//   - Status codes follow the LAPACK convention: 0 = success, the documented
//     positive codes denote specific internal numerical failures.
package eigen

import (
	"gonum.org/v1/gonum/blas"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// Documented status codes of the tridiagonal eigenvalue primitive.
// The two positive codes correspond to the two internal solver phases; the
// solver distinguishes them in its error messages.
const (
	// StatusOK reports a successful backend call.
	StatusOK = 0

	// StatusBisectionFailed reports that the backend's root-finding
	// (bisection) phase failed to converge for some eigenvalues.
	StatusBisectionFailed = 1

	// StatusOrderingFailed reports that the backend's eigenvalue ordering
	// phase produced an inconsistent spectrum.
	StatusOrderingFailed = 2
)

// Backend supplies the two dense linear-algebra primitives consumed by
// SymmetricEigenvalues. Implementations must not retain any of the slices
// they receive.
type Backend interface {
	// Sytrd reduces the selected triangle of the n×n symmetric matrix a
	// (row-major, leading dimension lda) to tridiagonal form in place.
	//
	// Outputs: d (length ≥ n) receives the diagonal, e (length ≥ n−1) the
	// off-diagonal, tau (length ≥ n−1) the Householder reflector scale
	// coefficients. work is real scratch of length lwork.
	//
	// Returns the optimal scratch length the backend would have preferred
	// (comparable against lwork; larger reserved is never an error) and a
	// status code (StatusOK = success).
	Sytrd(uplo blas.Uplo, n int, a []float64, lda int, d, e, tau, work []float64, lwork int) (optLWork, info int)

	// Stebz computes the eigenvalues — eigenvalues only, entire spectrum —
	// of the symmetric tridiagonal matrix with diagonal d (length ≥ n) and
	// off-diagonal e (length ≥ n−1). d and e are preserved.
	//
	// abstol is the absolute tolerance; zero selects the backend default.
	// work is real scratch, iwork integer scratch.
	//
	// Returns the count m of eigenvalues stored into w (m == n on a fully
	// successful call), the optimal real and integer scratch lengths, and a
	// status code (StatusOK, StatusBisectionFailed, StatusOrderingFailed).
	Stebz(n int, d, e []float64, abstol float64, w, work []float64, iwork []int) (m, optLWork, optLIWork, info int)
}

// DefaultBackend returns the gonum-backed Backend used when WithBackend is
// not supplied. It is stateless; the same value may be shared freely.
func DefaultBackend() Backend {
	return lapackBackend{}
}

// lapackBackend adapts gonum's pure-Go LAPACK implementation to the Backend
// contract.
type lapackBackend struct{}

// Sytrd delegates to gonum's Dsytrd, preceded by an lwork = -1 workspace
// query so the scratch-sufficiency indicator reflects the backend's actual
// blocked-path requirement.
// Complexity: O(n³) time, O(1) extra space beyond the caller's buffers.
func (lapackBackend) Sytrd(uplo blas.Uplo, n int, a []float64, lda int, d, e, tau, work []float64, lwork int) (optLWork, info int) {
	var impl lapackgonum.Implementation

	// Workspace query: the optimal length lands in query[0].
	var query [1]float64
	impl.Dsytrd(uplo, n, a, lda, d, e, tau, query[:], -1)
	optLWork = int(query[0])

	// The reduction itself. Dsytrd has no numerical failure mode: parameter
	// violations are programmer errors (panics) already excluded by the
	// solver's validation stage.
	impl.Dsytrd(uplo, n, a, lda, d, e, tau, work, lwork)

	return optLWork, StatusOK
}

// Stebz satisfies the tridiagonal-eigenvalue contract with gonum's Dsterf,
// its eigenvalues-only primitive for the entire spectrum. Dsterf works in
// place, so the adapter computes on scratch copies to honor the "d and e are
// preserved" clause. gonum ships no bisection-based routine, hence abstol is
// consumed only by its documented zero = backend-default meaning.
// Complexity: O(n²) time, O(1) extra space beyond the caller's buffers.
func (lapackBackend) Stebz(n int, d, e []float64, abstol float64, w, work []float64, iwork []int) (m, optLWork, optLIWork, info int) {
	_ = abstol // Dsterf has a single (machine-precision) tolerance policy
	_ = iwork  // no integer scratch consumed by this backend

	// Eigenvalues are accumulated in w; the off-diagonal copy lives in work.
	copy(w[:n], d[:n])
	var off []float64
	if n > 1 {
		off = work[:n-1]
		copy(off, e[:n-1])
	}

	var impl lapackgonum.Implementation
	if !impl.Dsterf(n, w[:n], off) {
		return 0, n - 1, 0, StatusBisectionFailed
	}

	// Dsterf always yields the whole spectrum on success.
	return n, n - 1, 0, StatusOK
}
