// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface consumed by numerical kernels.
// Errors live in errors.go; the concrete Dense implementation in dense.go.
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Implementations are expected to keep all methods O(1) except Clone
// (O(r*c)). Indexers return sentinels on bounds violations; they never
// panic on user input.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange on invalid indices and ErrNaNInf when v is not
	// finite (strict numeric policy).
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
