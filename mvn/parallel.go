// SPDX-License-Identifier: MIT

// Package mvn: static data-parallel fan-out over independent row ranges.
//
// Scheduling model:
//   - Row costs are uniform (every row performs the same FLOP count), so a
//     fixed contiguous partition beats dynamic scheduling: no work queue, no
//     stealing, no per-item synchronization overhead.
//   - Each goroutine owns a disjoint [start, end) range and therefore a
//     disjoint region of the output slice; the only shared state is read-only
//     (whitening transform, mean, input batch). A single WaitGroup is the
//     sole synchronization point.

package mvn

import "sync"

// forRowChunks splits [0, n) into ceil(n/workers)-sized contiguous chunks and
// runs body(start, end) for each chunk on its own goroutine, returning after
// all chunks complete.
//
// Contract: n >= 1, 1 <= workers <= n (callers cap workers at n). The body
// must confine its writes to indices in [start, end).
// Determinism: chunk boundaries depend only on (n, workers), and chunk
// results are independent, so output bits match the sequential path exactly.
// Complexity: O(n) total work across workers + O(workers) goroutine overhead.
func forRowChunks(n, workers int, body func(start, end int)) {
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			body(s, e)
		}(start, end)
	}
	wg.Wait()
}
