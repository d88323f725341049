// SPDX-License-Identifier: MIT

package mvn

import (
	"math"

	"github.com/katalvlaran/mvnorm/matrix"
)

// Density evaluates the multivariate normal density for every row of obs
// under the given mean and covariance.
// Implementation:
//   - Stage 1: resolve options; reject workers < MinWorkers; validate the
//     full shape contract once, before any computation.
//   - Stage 2: Factorize(sigma) — the sequential setup phase and
//     synchronization barrier.
//   - Stage 3: evaluate all rows (sequentially, or statically partitioned
//     across workers); exponentiate in one pass unless WithLogScale.
//
// Behavior highlights:
//   - Rows are independent; output order matches input row order.
//   - All accumulation happens in log-space; overflow-safe for
//     high-dimensional or far-tailed inputs.
//   - Multi-worker results are bit-identical to the sequential path (no
//     shared accumulation).
//
// Inputs:
//   - obs  : n×k observation batch, one observation per row.
//   - mean : length-k mean vector shared by all rows.
//   - sigma: k×k symmetric positive-definite covariance matrix.
//   - opts : WithLogScale(), WithWorkers(n).
//
// Returns:
//   - []float64: length-n densities (or log-densities), one per input row.
//
// Errors:
//   - ErrInvalidWorkers (workers < 1, rejected before dispatch),
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (shape contract),
//   - matrix.ErrAsymmetry / matrix.ErrNotPositiveDefinite (covariance).
//     No partial results are ever returned on failure.
//
// Determinism:
//   - Fixed row order; static partitioning; stable bits across worker counts.
//
// Complexity:
//   - Time O(k³ + n·k²), Space O(k²) setup + O(n) output.
//
// AI-Hints:
//   - Evaluating several batches against one covariance? Call Factorize once
//     and reuse Factorization.Densities to skip the O(k³) setup per batch.
//   - Pass obs as *matrix.Dense to avoid the one-time interface materialization.
func Density(obs matrix.Matrix, mean []float64, sigma matrix.Matrix, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	// Invalid worker counts are rejected before any dispatch or factorization.
	if o.workers < MinWorkers {
		return nil, mvnErrorf(opDensity, ErrInvalidWorkers)
	}

	// Shape contract, checked once up front: sigma square, mean length k,
	// observation width k. The call fails before any computation.
	if err := matrix.ValidateSquareNonNil(sigma); err != nil {
		return nil, mvnErrorf(opDensity, err)
	}
	if err := validateBatch(obs, mean, sigma.Rows()); err != nil {
		return nil, mvnErrorf(opDensity, err)
	}

	// Sequential setup phase: factor the covariance exactly once.
	f, err := Factorize(sigma)
	if err != nil {
		return nil, mvnErrorf(opDensity, err)
	}

	out, err := f.evaluate(obs, mean, o)
	if err != nil {
		return nil, mvnErrorf(opDensity, err)
	}

	return out, nil
}

// Densities evaluates the batch against an existing factorization, skipping
// the O(k³) setup. Same contract, options, and error taxonomy as Density,
// with the covariance shape fixed by the factorization's dimensionality.
// Complexity: Time O(n·k²), Space O(n) output + O(k) scratch per worker.
func (f *Factorization) Densities(obs matrix.Matrix, mean []float64, opts ...Option) ([]float64, error) {
	o := gatherOptions(opts...)
	if o.workers < MinWorkers {
		return nil, mvnErrorf(opDensities, ErrInvalidWorkers)
	}
	if err := validateBatch(obs, mean, f.dim); err != nil {
		return nil, mvnErrorf(opDensities, err)
	}

	out, err := f.evaluate(obs, mean, o)
	if err != nil {
		return nil, mvnErrorf(opDensities, err)
	}

	return out, nil
}

// validateBatch enforces the batch shape contract against dimensionality k:
// obs non-nil with k columns, mean non-nil with length k.
// Complexity: O(1).
func validateBatch(obs matrix.Matrix, mean []float64, k int) error {
	if err := matrix.ValidateNotNil(obs); err != nil {
		return err
	}
	if obs.Cols() != k {
		return matrix.ErrDimensionMismatch
	}

	return matrix.ValidateVecLen(mean, k)
}

// evaluate runs the per-row kernel over the whole batch. Shapes are already
// validated; options are already resolved.
func (f *Factorization) evaluate(obs matrix.Matrix, mean []float64, o Options) ([]float64, error) {
	n := obs.Rows()
	out := make([]float64, n)
	// An empty batch is legal: nothing to compute, empty output.
	if n == 0 {
		return out, nil
	}

	// Materialize the batch once so the hot loop always scans flat row-major
	// storage; *Dense inputs pass through without copying.
	d, err := toDense(obs)
	if err != nil {
		return nil, err
	}

	// Constant log-space offset shared by every row:
	// −(k/2)·log 2π + rootisum.
	cst := -float64(f.dim)*halfLogTwoPi + f.rootiSum

	// Static partition: never spawn more workers than rows.
	workers := o.workers
	if workers > n {
		workers = n
	}
	if workers == 1 {
		// Strictly single-threaded: the chunk body runs inline, no goroutines.
		f.evalRange(d, mean, cst, out, 0, n)
	} else {
		forRowChunks(n, workers, func(start, end int) {
			f.evalRange(d, mean, cst, out, start, end)
		})
	}

	// One exponentiation pass after the loop keeps the hot loop branch-free
	// and the accumulation purely in log-space.
	if !o.logScale {
		for i := range out {
			out[i] = math.Exp(out[i])
		}
	}

	return out, nil
}

// evalRange computes log-densities for rows [start, end) into out.
// Each invocation owns its centering scratch, so concurrent invocations over
// disjoint ranges share only read-only state (wh, mean) and write only their
// own output indices — no synchronization needed.
// Complexity: O((end−start)·k²).
func (f *Factorization) evalRange(obs *matrix.Dense, mean []float64, cst float64, out []float64, start, end int) {
	k := f.dim
	diff := make([]float64, k) // per-range scratch for x − mean

	var (
		i, j, m int
		base    int
		z, q    float64
		row     []float64
	)
	for i = start; i < end; i++ {
		row, _ = obs.RowView(i) // bounds hold: [start,end) ⊆ [0, Rows)

		// Center the observation.
		for m = 0; m < k; m++ {
			diff[m] = row[m] - mean[m]
		}

		// z = rooti·diff; rooti is lower triangular, so only m ≤ j contributes.
		// q accumulates the squared Mahalanobis distance Σ z².
		q = 0
		for j = 0; j < k; j++ {
			base = j * k
			z = 0
			for m = 0; m <= j; m++ {
				z += f.wh[base+m] * diff[m]
			}
			q += z * z
		}

		out[i] = cst - 0.5*q
	}
}

// toDense returns m itself when it is already a *Dense, otherwise copies it
// into fresh flat storage in fixed i→j order.
func toDense(m matrix.Matrix) (*matrix.Dense, error) {
	if d, ok := m.(*matrix.Dense); ok {
		return d, nil
	}

	rows, cols := m.Rows(), m.Cols()
	d, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = d.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return d, nil
}
