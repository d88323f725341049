// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (rejection of NaN/Inf on Set) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see linalg.go): operate on the flat data slice directly.
//   - Use RowView(i) to avoid copies when scanning rows; the slice aliases the base matrix.
//   - DefaultValidateNaNInf is on; insert only finite values.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/RowView: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- numeric policy ----------

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
// Constructors snapshot this default; existing matrices keep their policy.
const DefaultValidateNaNInf = true

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxRowView = "RowView" // method tag used in error wrappers
)

// ---------- formatting literals ----------

const (
	fmtRowOpen  = "["
	fmtRowClose = "]\n"
	fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
// Kept as a named helper so the numeric policy reads uniformly at call sites.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// Matrix is the minimal read/write surface the kernels operate on.
// Concrete *Dense inputs unlock the flat fast-paths; any other implementation
// falls back to the At/Set interface paths with identical results.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
	// At returns the element at (row, col) or ErrOutOfRange.
	At(row, col int) (float64, error)
	// Set writes the element at (row, col); may reject NaN/±Inf per policy.
	Set(row, col int, v float64) error
	// Clone returns a deep, independent copy.
	Clone() Matrix
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (default from DefaultValidateNaNInf).
type Dense struct {
	r, c           int       // row and column counts (> 0 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and snapshot the numeric policy.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions before touching the allocator.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64.
// Implementation:
//   - Stage 1: validate non-empty input and equal row lengths.
//   - Stage 2: copy rows into the flat buffer in fixed i→j order.
//
// Behavior highlights:
//   - The input slices are copied, never aliased; later mutation of `rows`
//     does not affect the returned matrix.
//   - NaN/±Inf entries are rejected under the default numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (empty input), ErrDimensionMismatch (ragged rows),
//     ErrNaNInf (non-finite entry).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Validate outer shape.
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	r, c := len(rows), len(rows[0])

	d, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}

	var i, j int // loop iterators (deterministic order)
	for i = 0; i < r; i++ {
		// Reject ragged input up front; a partial copy is never returned.
		if len(rows[i]) != c {
			return nil, denseErrorf("NewDenseFromRows", i, len(rows[i]), ErrDimensionMismatch)
		}
		for j = 0; j < c; j++ {
			if d.validateNaNInf && isNonFinite(rows[i][j]) {
				return nil, denseErrorf("NewDenseFromRows", i, j, ErrNaNInf)
			}
			d.data[i*c+j] = rows[i][j]
		}
	}

	return d, nil
}

// Identity returns the n×n identity matrix.
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n²).
func Identity(n int) (*Dense, error) {
	d, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 1.0
	}

	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index.
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index.
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset (row-major).
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Errors: ErrOutOfRange on bad indices. Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes v at (row, col), enforcing the numeric policy.
// Errors: ErrOutOfRange on bad indices; ErrNaNInf when the policy rejects v.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	// Numeric policy: reject non-finite values when validation is on.
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// RowView returns a no-copy view of row i as a []float64 slice.
// The slice aliases the backing storage: reads are O(1) per element and
// mutations write through to the matrix. Callers that need an independent
// lifetime must copy.
// Errors: ErrOutOfRange when i is outside [0, Rows).
// Complexity: O(1).
func (m *Dense) RowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRowView, i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy with the same shape, data, and numeric policy.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := &Dense{
		r:              m.r,
		c:              m.c,
		data:           make([]float64, len(m.data)),
		validateNaNInf: m.validateNaNInf,
	}
	copy(cp.data, m.data)

	return cp
}

// String renders the matrix row by row for debugging; not a wire format.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(fmtSep)
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString(fmtRowClose)
	}

	return sb.String()
}
