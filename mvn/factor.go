// SPDX-License-Identifier: MIT

package mvn

import (
	"math"

	"github.com/katalvlaran/mvnorm/matrix"
)

// halfLogTwoPi is log(2π)/2, the per-dimension share of the Gaussian
// normalizing constant −(k/2)·log(2π).
const halfLogTwoPi = 0.91893853320467274178

// Factorization is the reusable whitening transform derived from one
// covariance matrix: everything the per-row evaluation needs, computed once.
// It is immutable after Factorize returns and therefore safe for concurrent
// read by any number of workers.
//
// Contents:
//   - the whitening transform rooti = (U⁻¹)ᵀ where UᵀU = Σ (lower triangular),
//   - rootisum = Σᵢ log rooti[i,i] = −½·log det Σ,
//   - the dimensionality k.
type Factorization struct {
	dim      int       // k
	rootiSum float64   // Σ log rooti[i,i]
	wh       []float64 // rooti, row-major k×k flat storage (lower triangular)
}

// Factorize derives the whitening transform and log-determinant contribution
// from a symmetric positive-definite covariance matrix.
// Implementation:
//   - Stage 1: validate sigma (non-nil, square; symmetry within
//     matrix.DefaultSymmetryTol is enforced inside Cholesky).
//   - Stage 2: U := Cholesky(sigma); rooti := Transpose(U⁻¹) via triangular
//     back substitution; rootisum := Σ log rooti[i,i].
//
// Behavior highlights:
//   - Pure function of sigma; the input is never mutated.
//   - A covariance that admits no Cholesky factorization fails with
//     matrix.ErrNotPositiveDefinite — a defined error, never silent NaNs.
//
// Returns:
//   - *Factorization: immutable, shareable whitening state.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrAsymmetry,
//     matrix.ErrNotPositiveDefinite, matrix.ErrSingular.
//
// Determinism:
//   - Fixed factorization and substitution orders; identical inputs give
//     identical bits.
//
// Complexity:
//   - Time O(k³), Space O(k²).
func Factorize(sigma matrix.Matrix) (*Factorization, error) {
	// Stage 1: shape guards (symmetry is checked inside Cholesky).
	if err := matrix.ValidateSquareNonNil(sigma); err != nil {
		return nil, mvnErrorf(opFactorize, err)
	}

	// Stage 2: upper Cholesky factor U with UᵀU = Σ.
	u, err := matrix.Cholesky(sigma, matrix.DefaultSymmetryTol)
	if err != nil {
		return nil, mvnErrorf(opFactorize, err)
	}

	// Invert U exploiting triangularity, then transpose: rooti = (U⁻¹)ᵀ.
	uinv, err := matrix.InverseUpperTriangular(u)
	if err != nil {
		return nil, mvnErrorf(opFactorize, err)
	}
	rooti, err := matrix.Transpose(uinv)
	if err != nil {
		return nil, mvnErrorf(opFactorize, err)
	}

	// Flatten the transform once so the hot loop runs on contiguous storage,
	// and accumulate the log-determinant contribution from the diagonal.
	k := rooti.Rows()
	f := &Factorization{
		dim: k,
		wh:  make([]float64, k*k),
	}
	var row []float64
	for i := 0; i < k; i++ {
		row, err = rooti.RowView(i)
		if err != nil {
			return nil, mvnErrorf(opFactorize, err)
		}
		copy(f.wh[i*k:(i+1)*k], row)
		// rooti[i,i] = 1/U[i,i] > 0 for a positive-definite Σ, so the log is finite.
		f.rootiSum += math.Log(row[i])
	}

	return f, nil
}

// Dim returns the dimensionality k of the factored covariance.
// Complexity: O(1).
func (f *Factorization) Dim() int { return f.dim }

// RootiSum returns Σᵢ log rooti[i,i], i.e. −½·log det Σ.
// Complexity: O(1).
func (f *Factorization) RootiSum() float64 { return f.rootiSum }

// Rooti materializes the whitening transform as a fresh k×k Dense matrix.
// The copy keeps the internal transform immutable; mutate the result freely.
// Complexity: O(k²).
func (f *Factorization) Rooti() *matrix.Dense {
	d, err := matrix.NewDense(f.dim, f.dim)
	if err != nil {
		// Unreachable: dim >= 1 is guaranteed by Factorize.
		panic(err)
	}
	var i, j int
	for i = 0; i < f.dim; i++ {
		for j = 0; j < f.dim; j++ {
			// Entries are finite by construction; Set cannot fail here.
			_ = d.Set(i, j, f.wh[i*f.dim+j])
		}
	}

	return d
}
