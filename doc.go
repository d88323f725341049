// Package mvnorm is a small, numerically careful toolkit for evaluating the
// multivariate Gaussian probability density (and its logarithm) over batches
// of observations that share one mean and one covariance matrix.
//
// 🚀 What is mvnorm?
//
//	A pure-Go library built around one idea: factor the covariance once,
//	reuse the factorization for every observation:
//	  • matrix/ — dense row-major storage, strict validators, and the
//	    linear-algebra kernels the evaluator needs (Cholesky, triangular
//	    inversion, transpose, matvec)
//	  • mvn/    — the density evaluator itself: whitening-based quadratic
//	    forms, log-space accumulation, optional multi-worker fan-out
//
// ✨ Why choose mvnorm?
//
//   - Numerically robust — everything is accumulated in log-space and
//     exponentiated only at the very end
//   - Deterministic — fixed loop orders, static work partitioning, and
//     bit-identical results whatever the worker count
//   - Fail-fast — shape and positive-definiteness violations surface as
//     named sentinel errors, never as silent NaNs
//   - Pure Go — no cgo, no hidden deps
//
// Quick sketch:
//
//	f, err := mvn.Factorize(sigma)        // Cholesky, once
//	out, err := f.Densities(obs, mean)    // reused across all rows
//
// or in one call:
//
//	out, err := mvn.Density(obs, mean, sigma, mvn.WithWorkers(4))
//
// Dive into the per-package docs for the full contract and error taxonomy.
//
//	go get github.com/katalvlaran/mvnorm
package mvnorm
