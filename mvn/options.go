// SPDX-License-Identifier: MIT

// Package mvn: functional configuration for the density evaluator.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package mvn

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultWorkers is the default worker count. One worker means strictly
	// single-threaded evaluation — no goroutines are spawned at all.
	DefaultWorkers = 1

	// MinWorkers is the smallest legal worker count; anything below it is
	// rejected with ErrInvalidWorkers before dispatch.
	MinWorkers = 1

	// DefaultLogScale controls the output scale. false ⇒ densities
	// (exponentiated once, after the loop); true ⇒ natural-log densities.
	DefaultLogScale = false
)

// Option mutates internal options. Safe to apply repeatedly (idempotent);
// later setters win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-by-field to prevent external mutation;
// public entry points accept `...Option` and resolve them via gatherOptions.
type Options struct {
	workers  int  // >= MinWorkers after validation; DefaultWorkers
	logScale bool // DefaultLogScale
}

// WithWorkers requests that row evaluation be statically partitioned across
// n workers. n = 1 keeps the call strictly single-threaded. The caller is
// responsible for sizing n to available hardware (runtime.NumCPU() is a
// sensible ceiling); values below MinWorkers are rejected by the facade with
// ErrInvalidWorkers before any work is dispatched.
// Complexity: O(1).
func WithWorkers(n int) Option {
	return func(o *Options) { o.workers = n }
}

// WithLogScale switches the output to natural-log densities. The evaluator
// always accumulates in log-space; this option merely skips the final
// exponentiation pass.
// Complexity: O(1).
func WithLogScale() Option {
	return func(o *Options) { o.logScale = true }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; deterministic for a given setter sequence.
// Validation of the resolved values happens at the facade (see Density), so
// invalid requests surface as sentinel errors rather than panics.
// Complexity: Time O(k), Space O(1) for k = len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		workers:  DefaultWorkers,
		logScale: DefaultLogScale,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
