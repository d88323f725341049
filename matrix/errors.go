// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel panics on user-triggered error conditions; panics
// are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are
	// non-positive. Constructors must validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or a vector whose length disagrees
	// with the matrix dimension it is applied to.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (Set, tolerance arguments).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNotPositiveDefinite is returned by Cholesky when a pivot is not
	// strictly positive, i.e. the input admits no Cholesky factorization.
	// Never substituted with a pseudo-inverse or a regularized matrix.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive-definite")

	// ErrSingular is returned when a zero diagonal entry is encountered
	// during triangular inversion (the factor cannot be inverted).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotTriangular signals that an upper-triangular input was required
	// but a non-negligible entry was found below the diagonal.
	ErrNotTriangular = errors.New("matrix: matrix is not upper-triangular")
)
