// SPDX-License-Identifier: MIT
// Package mvn_test: throughput benchmarks for batch density evaluation.

package mvn_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/mvnorm/mvn"
)

// benchRows are the batch sizes to benchmark.
var benchRows = []int{1024, 8192}

// benchDim is the observation dimensionality for the throughput runs.
const benchDim = 8

// sink defeats dead-code elimination.
var sink []float64

func BenchmarkDensity(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchRows {
		for _, workers := range []int{1, 4} {
			b.Run(fmt.Sprintf("n=%d/workers=%d", n, workers), func(b *testing.B) {
				obs, mean, sigma := randomBatch(b, n, benchDim, 1337)
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					out, err := mvn.Density(obs, mean, sigma, mvn.WithWorkers(workers))
					if err != nil {
						b.Fatal(err)
					}
					sink = out
				}
			})
		}
	}
}

func BenchmarkDensitiesReuse(b *testing.B) {
	// Factor once, evaluate repeatedly: the steady-state serving pattern.
	b.ReportAllocs()
	obs, mean, sigma := randomBatch(b, 4096, benchDim, 4242)

	f, err := mvn.Factorize(sigma)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, runErr := f.Densities(obs, mean, mvn.WithLogScale())
		if runErr != nil {
			b.Fatal(runErr)
		}
		sink = out
	}
}
