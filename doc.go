// Package spectra computes the eigenvalue spectrum of real symmetric
// matrices — dense storage in, descending eigenvalues out.
//
// 🚀 What is spectra?
//
//	A small, deterministic library that wraps the classic two-stage dense
//	symmetric eigenvalue reduction behind one call:
//		• Dense containers: row-major float64 matrices with strict validation
//		• Triangle selection: trust the upper or the lower half, ignore the rest
//		• Two-stage reduction: symmetric → tridiagonal → eigenvalues (A = Q T Qᵗ)
//		• Descending output: λ₁ ≥ λ₂ ≥ … ≥ λₙ into a caller-supplied buffer
//
// ✨ Why choose spectra?
//
//   - Typed errors – every failure is a sentinel, matched via errors.Is
//   - No surprises – input matrices are read-only, buffers are call-local
//   - Reentrant – no package state; concurrent calls with own buffers are safe
//   - Tunable – scratch block factors and the backend itself are options
//
// Under the hood, everything is organized under two subpackages:
//
//	matrix/ — Dense storage, the Matrix interface, validators & sentinels
//	eigen/  — SymmetricEigenvalues, the Backend contract, functional options
//
// Quick sketch of the pipeline:
//
//	A (one triangle) ──copy──▶ working buffer ──Sytrd──▶ (d, e) ──Stebz──▶ λ ──sort──▶ dst
//
// The dense linear-algebra backend is gonum by default and pluggable via
// eigen.WithBackend. Dive into the package docs and example tests for
// complete usage.
//
//	go get github.com/katalvlaran/spectra
package spectra
