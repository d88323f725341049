// SPDX-License-Identifier: MIT
// Package mvn: sentinel error set.
// Shape and factorization failures are reported through the matrix package
// sentinels (matrix.ErrNilMatrix, matrix.ErrDimensionMismatch,
// matrix.ErrNotPositiveDefinite, ...) so one errors.Is vocabulary covers the
// whole module. This file adds only the sentinels that originate here.

package mvn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWorkers is returned when a worker count below MinWorkers is
	// requested. Rejected before any dispatch or factorization work begins.
	ErrInvalidWorkers = errors.New("mvn: workers must be >= 1")
)

// Operation name constants for unified error wrapping.
const (
	opFactorize = "Factorize"
	opDensity   = "Density"
	opDensities = "Densities"
)

// mvnErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with err != nil.
func mvnErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
