// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels.
//
// Purpose:
//   - Implement the kernels the mvn evaluator needs: Transpose, Mul, MatVec,
//     the upper Cholesky factorization, and upper-triangular inversion.
//   - Keep roles clean: validation via the central validators, sentinel errors
//     wrapped with operation tags at the kernel boundary.
//
// Notes:
//   - Every kernel has a *Dense fast-path on the flat backing slice and a
//     generic At/Set fallback with an identical, fixed traversal order.
//   - Kernels never mutate their operands; results are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for substitution and dot products.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero diagonal in triangular solves.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opMul       = "Mul"
	opMatVec    = "MatVec"
	opCholesky  = "Cholesky"
	opInverseUT = "InverseUpperTriangular"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is. Use only when
// err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Implementation:
//   - Stage 1: ValidateNotNil(m); allocate Dense(cols, rows).
//   - Stage 2: if m is *Dense, copy via flat indexing; else generic i→j loop.
//
// Behavior highlights:
//   - Deterministic copy order; one allocation; input never mutated.
//
// Errors:
//   - ErrNilMatrix, allocation errors (from NewDense).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	// Validate input non-nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	// Allocate result Dense with flipped dimensions.
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int // loop iterators (deterministic order)

	// Fast-path for Dense → Dense: data[i*cols+j] → res.data[j*rows+i].
	if dm, ok := m.(*Dense); ok {
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b); allocate C(r×c).
//   - Stage 2: *Dense×*Dense uses i→k→j with row-major strides and zero-skip;
//     otherwise a fixed i→j→k interface loop.
//
// Behavior highlights:
//   - Deterministic triple loops; one allocation for C; zero A[i,k] skipped.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	// Validate inputs via the canonical validator.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Allocate result Dense.
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k         int
		av, bv, current float64
	)

	// Fast-path for two Dense matrices: row-major multiplication into res.data.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				bv, err = b.At(k, j)
				if err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Validate m is not nil.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	// Validate x is not nil and matches the number of columns.
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var (
		i, j int
		mv   float64
		err  error
	)
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Cholesky computes the upper-triangular factor U such that Uᵀ·U = A for a
// symmetric positive-definite A.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(A) and ValidateSymmetric(A, tol).
//   - Stage 2: column-oriented factorization in fixed j→i→k order:
//     U[i,j] = (A[i,j] − Σ_{k<i} U[k,i]·U[k,j]) / U[i,i]  for i < j,
//     U[j,j] = √(A[j,j] − Σ_{k<j} U[k,j]²).
//
// Behavior highlights:
//   - A non-positive diagonal pivot aborts immediately with
//     ErrNotPositiveDefinite — no regularization, no silent NaNs.
//   - Deterministic loop order; A is never mutated; strictly-lower entries of
//     the result stay exactly zero.
//
// Inputs:
//   - a  : symmetric positive-definite matrix (n×n).
//   - tol: symmetry tolerance (≥ 0), typically DefaultSymmetryTol.
//
// Returns:
//   - *Dense: upper-triangular U with Uᵀ·U = A.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (not square), ErrAsymmetry,
//     ErrNaNInf (bad tol), ErrNotPositiveDefinite.
//
// Determinism:
//   - Fixed j→i→k traversal; identical inputs give identical bits.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Positive-definiteness is detected, not assumed: the pivot check is the
//     mathematically exact criterion for the factorization to exist.
//
// AI-Hints:
//   - Pass *Dense to stay on the flat fast-path.
//   - For whitening, combine with InverseUpperTriangular and Transpose; the
//     diagonal of the result feeds log-determinant bookkeeping via
//     Σ log U[i,i] = ½·log det(A).
func Cholesky(a Matrix, tol float64) (*Dense, error) {
	// Validate: not nil → square → symmetric within tol.
	if err := ValidateSquareNonNil(a); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err := ValidateSymmetric(a, tol); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := a.Rows()
	u, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	var (
		i, j, k int
		sum, av float64
	)

	// Detect fast-path on *Dense input.
	ad, useFast := a.(*Dense)

	for j = 0; j < n; j++ {
		for i = 0; i <= j; i++ {
			// sum = A[i,j] − Σ_{k<i} U[k,i]·U[k,j]
			if useFast {
				sum = ad.data[i*n+j]
			} else {
				av, err = a.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opCholesky, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				sum = av
			}
			for k = 0; k < i; k++ {
				sum -= u.data[k*n+i] * u.data[k*n+j]
			}

			if i == j {
				// Exact positive-definiteness criterion: the pivot must be > 0.
				if sum <= ZeroPivot || math.IsNaN(sum) {
					return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
				}
				u.data[j*n+j] = math.Sqrt(sum)
			} else {
				u.data[i*n+j] = sum / u.data[i*n+i]
			}
		}
	}

	return u, nil
}

// InverseUpperTriangular computes U⁻¹ for an upper-triangular U by back
// substitution, exploiting triangularity instead of general inversion.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(u); reject non-negligible entries below
//     the diagonal (ErrNotTriangular) and zero diagonal entries (ErrSingular).
//   - Stage 2: solve U·X = I column by column, bottom-up:
//     X[j,j] = 1/U[j,j];  X[i,j] = −(Σ_{k=i+1..j} U[i,k]·X[k,j]) / U[i,i].
//
// Behavior highlights:
//   - The inverse of an upper-triangular matrix is upper-triangular; the
//     strictly-lower entries of the result stay exactly zero.
//   - Deterministic j→(i descending)→k order; input never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNotTriangular, ErrSingular.
//
// Determinism:
//   - Fixed traversal; no pivoting; stable bits for stable inputs.
//
// Complexity:
//   - Time O(n³) worst case (O(n²) per column on the triangular band),
//     Space O(n²).
//
// AI-Hints:
//   - Feed this the Cholesky factor: (U⁻¹)ᵀ is the whitening transform and
//     its diagonal carries −½·log det(A) as Σ log((U⁻¹)[i,i]).
func InverseUpperTriangular(u Matrix) (*Dense, error) {
	// Validate: not nil → square.
	if err := ValidateSquareNonNil(u); err != nil {
		return nil, matrixErrorf(opInverseUT, err)
	}

	n := u.Rows()

	// Materialize the input once so the solve runs on flat storage regardless
	// of the concrete type; also lets us verify triangularity in one pass.
	var (
		ud  *Dense
		err error
	)
	if d, ok := u.(*Dense); ok {
		ud = d
	} else {
		tmp, cErr := NewDense(n, n)
		if cErr != nil {
			return nil, matrixErrorf(opInverseUT, cErr)
		}
		var i, j int
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = u.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opInverseUT, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				tmp.data[i*n+j] = v
			}
		}
		ud = tmp
	}

	// Structural checks: strictly-lower entries must be zero, diagonal nonzero.
	var i, j, k int
	for i = 1; i < n; i++ {
		for j = 0; j < i; j++ {
			if ud.data[i*n+j] != 0 {
				return nil, matrixErrorf(opInverseUT, ErrNotTriangular)
			}
		}
	}
	for i = 0; i < n; i++ {
		if ud.data[i*n+i] == ZeroPivot {
			return nil, matrixErrorf(opInverseUT, ErrSingular)
		}
	}

	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverseUT, err)
	}

	// Back substitution, one column of the identity at a time.
	var sum float64
	for j = 0; j < n; j++ {
		// Diagonal entry first: U[j,j]·X[j,j] = 1.
		inv.data[j*n+j] = 1.0 / ud.data[j*n+j]
		// Then rows above it, bottom-up.
		for i = j - 1; i >= 0; i-- {
			sum = ZeroSum
			for k = i + 1; k <= j; k++ {
				sum += ud.data[i*n+k] * inv.data[k*n+j]
			}
			inv.data[i*n+j] = -sum / ud.data[i*n+i]
		}
	}

	return inv, nil
}
