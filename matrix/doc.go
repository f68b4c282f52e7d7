// Package matrix offers dense numeric storage for spectral routines.
//
// The matrix package provides:
//
//   - A minimal Matrix interface (Rows/Cols/At/Set/Clone) whose indexers
//     return sentinel errors instead of panicking.
//   - Dense, a row-major float64 implementation backed by a flat slice for
//     performance and cache friendliness, with a raw-data accessor that
//     unlocks fast paths in numerical kernels.
//   - Central validators (nil, square, minimum order, vector capacity,
//     symmetry within eps) so kernels can fail fast with uniform sentinels.
//
// Dense is best for small-to-medium problems where O(n²) memory is
// acceptable; that is exactly the regime of direct eigenvalue reduction.
//
// See the eigen package for the consumer of these primitives.
package matrix
