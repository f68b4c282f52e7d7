// Package eigen computes the eigenvalue spectrum of real symmetric matrices
// through the classic two-stage dense reduction, returning eigenvalues in
// descending order.
//
// 🚀 What does it do?
//
//	For a symmetric A the pipeline mirrors the identity A = Q T Qᵗ:
//	  1. copy the trusted triangle of A into a private working buffer,
//	  2. reduce the buffer to tridiagonal form T (Householder reflectors),
//	  3. compute the eigenvalues of T (eigenvalues only, whole spectrum),
//	  4. sort descending into the caller's output buffer.
//
// ✨ Key properties:
//   - one call, one allocation scope — every buffer is call-local, nothing
//     leaks on success or failure
//   - the input matrix is read-only; the untrusted triangle may hold garbage
//   - typed sentinel errors for every failure class, matched via errors.Is
//   - reentrant: no package state, safe for concurrent independent calls
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/spectra/eigen"
//
//	vals := make([]float64, n)
//	vals, err := eigen.SymmetricEigenvalues(a, n, vals,
//	  eigen.WithTriangle(eigen.Lower), // trust the lower half (default Upper)
//	  eigen.WithBlockFactor(96),       // real scratch = 96·n (default 80·n)
//	)
//
// The two numerical stages are delegated to a dense linear-algebra Backend
// (gonum by default, replaceable via WithBackend). Undersized scratch is a
// performance diagnostic: it is reported on the configured slog.Logger and
// never aborts the call.
//
// Performance:
//   - Time:   O(n³) reduction + O(n log n) sort
//   - Memory: O(n²) working copy + O(blockFactor·n) scratch
//
// See example_test.go for complete usage.
package eigen
