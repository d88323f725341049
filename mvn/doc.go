// Package mvn evaluates the multivariate normal (Gaussian) probability
// density, and its natural logarithm, for batches of observations that share
// one mean vector and one covariance matrix.
//
// 🚀 How it works
//
//	The covariance Σ is factored exactly once per call:
//	  1. U      — upper Cholesky factor, UᵀU = Σ
//	  2. rooti  — (U⁻¹)ᵀ, the whitening transform (lower triangular)
//	  3. rootisum — Σᵢ log rooti[i,i] = −½·log det Σ
//	Every observation row x then costs one triangular matvec:
//	  z = rooti·(x − mean),  q = Σ z²  (squared Mahalanobis distance)
//	  log f(x) = −(k/2)·log 2π − q/2 + rootisum
//	Densities are exponentiated in a single pass at the very end, so all
//	accumulation happens in log-space and never overflows en route.
//
// ✨ Key properties:
//   - factor once, reuse across all rows — the Factorization is an immutable
//     value object shared read-only by every evaluation
//   - embarrassingly parallel — WithWorkers(n) statically partitions row
//     indices into contiguous chunks; each worker owns a disjoint slice of
//     the output, so results are bit-identical to the sequential path
//   - fail-fast — shape mismatches are rejected once before any arithmetic;
//     a covariance that is not positive-definite surfaces as
//     matrix.ErrNotPositiveDefinite, never as silent NaNs
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mvnorm/mvn"
//
//	out, err := mvn.Density(obs, mean, sigma)                  // densities
//	lps, err := mvn.Density(obs, mean, sigma, mvn.WithLogScale())
//	out, err = mvn.Density(obs, mean, sigma, mvn.WithWorkers(8))
//
//	// or keep the factorization around explicitly:
//	f, err := mvn.Factorize(sigma)
//	out, err = f.Densities(obs, mean)
//
// Performance:
//
//   - Setup:   O(k³) for the factorization (once per call)
//   - Per row: O(k²) triangular matvec, O(k) centering
//   - Memory:  O(k²) for the transform + O(n) output; O(k) scratch per worker
//
// See example_test.go for runnable examples and DESIGN.md for the numeric
// policy rationale.
package mvn
