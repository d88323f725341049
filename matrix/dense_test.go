// SPDX-License-Identifier: MIT
// Package matrix_test: unit tests for Dense storage and accessors.

package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/mvnorm/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// Immediately after creation all elements must be 0.
			var i, j int
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					if v := MustAt(t, m, i, j); v != 0.0 {
						t.Fatalf("element [%d,%d] of a new Dense must be 0, got %v", i, j, v)
					}
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 2},
		{2, -4},
	} {
		if _, err := matrix.NewDense(tc.rows, tc.cols); !errors.Is(err, matrix.ErrInvalidDimensions) {
			t.Fatalf("NewDense(%d,%d): want ErrInvalidDimensions, got %v", tc.rows, tc.cols, err)
		}
	}
}

func TestAtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 3)

	// Valid write then read round-trips.
	MustSet(t, m, 1, 2, 7.5)
	if v := MustAt(t, m, 1, 2); v != 7.5 {
		t.Fatalf("At(1,2): want 7.5, got %v", v)
	}

	// Out-of-range accesses must return the sentinel, never panic.
	for _, tc := range []struct{ i, j int }{
		{-1, 0}, {2, 0}, {0, -1}, {0, 3},
	} {
		if _, err := m.At(tc.i, tc.j); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("At(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
		if err := m.Set(tc.i, tc.j, 1); !errors.Is(err, matrix.ErrOutOfRange) {
			t.Fatalf("Set(%d,%d): want ErrOutOfRange, got %v", tc.i, tc.j, err)
		}
	}
}

func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 2, 2)
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := m.Set(0, 0, v); !errors.Is(err, matrix.ErrNaNInf) {
			t.Fatalf("Set(0,0,%v): want ErrNaNInf, got %v", v, err)
		}
	}
}

func TestNewDenseFromRows(t *testing.T) {
	src := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	}
	m := MustFromRows(t, src)
	if m.Rows() != 2 || m.Cols() != 3 {
		t.Fatalf("shape: want 2x3, got %dx%d", m.Rows(), m.Cols())
	}
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			if v := MustAt(t, m, i, j); v != src[i][j] {
				t.Fatalf("[%d,%d]: want %v, got %v", i, j, src[i][j], v)
			}
		}
	}

	// The input is copied, never aliased.
	src[0][0] = 99
	if v := MustAt(t, m, 0, 0); v != 1 {
		t.Fatalf("mutating the source rows must not affect the matrix, got %v", v)
	}
}

func TestNewDenseFromRowsRagged(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	if !errors.Is(err, matrix.ErrDimensionMismatch) {
		t.Fatalf("ragged input: want ErrDimensionMismatch, got %v", err)
	}

	if _, err = matrix.NewDenseFromRows(nil); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("nil input: want ErrInvalidDimensions, got %v", err)
	}
}

func TestRowViewAliasesStorage(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	row, err := m.RowView(1)
	if err != nil {
		t.Fatalf("RowView(1): %v", err)
	}
	if row[0] != 3 || row[1] != 4 {
		t.Fatalf("RowView(1): want [3 4], got %v", row)
	}

	// Mutation through the view writes through to the matrix.
	row[0] = -3
	if v := MustAt(t, m, 1, 0); v != -3 {
		t.Fatalf("RowView must alias backing storage, got %v", v)
	}

	if _, err = m.RowView(2); !errors.Is(err, matrix.ErrOutOfRange) {
		t.Fatalf("RowView(2): want ErrOutOfRange, got %v", err)
	}
}

func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.Clone()

	MustSet(t, m, 0, 0, 42)
	if v := MustAt(t, cp, 0, 0); v != 1 {
		t.Fatalf("Clone must be a deep copy; got %v after mutating the original", v)
	}
}

func TestIdentity(t *testing.T) {
	id, err := matrix.Identity(3)
	if err != nil {
		t.Fatalf("Identity(3): %v", err)
	}
	var i, j int
	var want float64
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			want = 0.0
			if i == j {
				want = 1.0
			}
			if v := MustAt(t, id, i, j); v != want {
				t.Fatalf("Identity[%d,%d]: want %v, got %v", i, j, want, v)
			}
		}
	}

	if _, err = matrix.Identity(0); !errors.Is(err, matrix.ErrInvalidDimensions) {
		t.Fatalf("Identity(0): want ErrInvalidDimensions, got %v", err)
	}
}
