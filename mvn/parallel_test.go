// SPDX-License-Identifier: MIT
// Package mvn_test: determinism tests for the parallel evaluation path.

package mvn_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mvnorm/matrix"
	"github.com/katalvlaran/mvnorm/mvn"
)

// randomBatch builds a deterministic n×k batch, mean and SPD covariance.
func randomBatch(t testing.TB, n, k int, seed int64) (*matrix.Dense, []float64, *matrix.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))

	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, k)
		for j = 0; j < k; j++ {
			rows[i][j] = rng.NormFloat64()
		}
	}
	obs := mustDense(t, rows)

	mean := make([]float64, k)
	for j = 0; j < k; j++ {
		mean[j] = rng.NormFloat64()
	}

	// Σ = AᵀA + k·I keeps the covariance comfortably positive-definite.
	a := make([][]float64, k)
	for i = 0; i < k; i++ {
		a[i] = make([]float64, k)
		for j = 0; j < k; j++ {
			a[i][j] = rng.NormFloat64()
		}
	}
	am := mustDense(t, a)
	at, err := matrix.Transpose(am)
	require.NoError(t, err)
	sigma, err := matrix.Mul(at, am)
	require.NoError(t, err)
	var v float64
	for i = 0; i < k; i++ {
		v, err = sigma.At(i, i)
		require.NoError(t, err)
		require.NoError(t, sigma.Set(i, i, v+float64(k)))
	}

	return obs, mean, sigma
}

func TestDensityWorkersBitIdentical(t *testing.T) {
	// Static contiguous partitioning with per-row independence must make
	// every worker count reproduce the sequential result bit-for-bit.
	obs, mean, sigma := randomBatch(t, 257, 7, 99)

	sequential, err := mvn.Density(obs, mean, sigma)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 3, 4, 8, 16, 300} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			got, runErr := mvn.Density(obs, mean, sigma, mvn.WithWorkers(workers))
			require.NoError(t, runErr)
			require.Len(t, got, len(sequential))
			for i := range sequential {
				// Exact float64 equality, not a tolerance.
				assert.Equal(t, sequential[i], got[i], "row %d", i)
			}
		})
	}
}

func TestDensityWorkersBitIdenticalLogScale(t *testing.T) {
	obs, mean, sigma := randomBatch(t, 64, 5, 7)

	sequential, err := mvn.Density(obs, mean, sigma, mvn.WithLogScale())
	require.NoError(t, err)

	parallel, err := mvn.Density(obs, mean, sigma, mvn.WithLogScale(), mvn.WithWorkers(4))
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
}

func TestDensityWorkersSmallBatches(t *testing.T) {
	// More workers than rows, and single-row batches, must still be exact.
	obs, mean, sigma := randomBatch(t, 3, 4, 21)

	sequential, err := mvn.Density(obs, mean, sigma)
	require.NoError(t, err)

	oversub, err := mvn.Density(obs, mean, sigma, mvn.WithWorkers(32))
	require.NoError(t, err)
	assert.Equal(t, sequential, oversub)

	single := mustDense(t, [][]float64{{0.1, -0.2, 0.3, -0.4}})
	one, err := mvn.Density(single, mean, sigma, mvn.WithWorkers(1))
	require.NoError(t, err)
	many, err := mvn.Density(single, mean, sigma, mvn.WithWorkers(8))
	require.NoError(t, err)
	assert.Equal(t, one, many)
}
