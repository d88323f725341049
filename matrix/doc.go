// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate for mvnorm:
// row-major float64 storage, strict fail-fast validators, and the small set
// of kernels the density evaluator needs — transpose, matrix product,
// matrix-vector product, upper Cholesky factorization, and triangular
// inversion.
//
// 🚀 Design in one breath:
//
//	One concrete type (Dense), one interface (Matrix), deterministic loop
//	orders everywhere, sentinel errors instead of panics on user input,
//	and *Dense fast-paths on the flat backing slice in every kernel.
//
// ✨ Guarantees:
//
//   - Safety — At/Set return ErrOutOfRange, never panic; Set optionally
//     rejects NaN/±Inf under the package numeric policy
//   - Determinism — fixed traversal orders, no map iteration, no pivoting
//     surprises; identical inputs give identical bits
//   - Fail-fast — every kernel validates shape/nil/symmetry up front via
//     the canonical validators and wraps violations with an operation tag
//   - Purity — kernels never mutate their operands; results are freshly
//     allocated
//
// Error discipline:
//
//	All failures bottom out in the package sentinels (errors.go). Match
//	them with errors.Is; facades add context via "Op: %w" wrapping only.
//
// Performance:
//
//	Kernels are O(k²)–O(k³) on k×k inputs; the flat row-major layout keeps
//	them bandwidth-friendly. Pass *Dense to stay on the fast-paths.
//
// See example_test.go for runnable usage and mvn/ for the consumer.
package matrix
