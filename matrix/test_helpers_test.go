// SPDX-License-Identifier: MIT
// Package matrix_test: shared helpers for the matrix package tests.

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/mvnorm/matrix"
)

// floatTol is the comparison tolerance for reconstruction-style assertions.
const floatTol = 1e-12

// MustDense allocates a rows×cols Dense or fails the test.
func MustDense(t testing.TB, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}

	return m
}

// MustFromRows builds a Dense from rows or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// AssertAllClose compares two matrices element-wise within tol.
func AssertAllClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	if want.Rows() != got.Rows() || want.Cols() != got.Cols() {
		t.Fatalf("shape mismatch: want %dx%d, got %dx%d",
			want.Rows(), want.Cols(), got.Rows(), got.Cols())
	}
	var i, j int
	var w, g float64
	for i = 0; i < want.Rows(); i++ {
		for j = 0; j < want.Cols(); j++ {
			w = MustAt(t, want, i, j)
			g = MustAt(t, got, i, j)
			if math.Abs(w-g) > tol {
				t.Fatalf("element [%d,%d]: want %v, got %v (tol %v)", i, j, w, g, tol)
			}
		}
	}
}

// hide wraps a Matrix to defeat *Dense type assertions, forcing the generic
// interface fallback paths in the kernels.
type hide struct{ matrix.Matrix }

// Clone keeps the wrapper opaque so cloned values stay on the fallback path.
func (h hide) Clone() matrix.Matrix { return hide{h.Matrix.Clone()} }
