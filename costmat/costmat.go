// Package costmat provides the canonical dense cost-matrix type consumed by
// the assignment solver. Dense is a row-major matrix of int64 costs backed by
// a flat slice for cache friendliness; FromRows is the single conversion
// point from caller-supplied nested slices into the canonical form.
package costmat

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of int64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int
	data []int64
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions unless rows and cols are both > 0.
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// FromRows builds a Dense from caller-supplied nested slices.
// The input is deep-copied so the returned matrix never aliases caller data.
// Returns ErrEmptyMatrix if rows has no rows or no columns,
// ErrNonRectangular if any row length differs from the first.
// Complexity: O(r·c) time and memory.
func FromRows(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, ErrNonRectangular
		}
	}

	m := &Dense{r: len(rows), c: c, data: make([]int64, len(rows)*c)}
	for i, row := range rows {
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col), guarding against a nil
// receiver (ErrNilMatrix) and out-of-bounds indices (ErrOutOfRange).
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("costmat: (%d,%d) in %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange on invalid indices; never panics.
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange on invalid indices; never panics.
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r·c) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]int64, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Values returns a copy of the backing storage in row-major order.
// Mutating the returned slice does not affect the matrix.
func (m *Dense) Values() []int64 {
	out := make([]int64, len(m.data))
	copy(out, m.data)

	return out
}

// MinMax returns the smallest and largest entry of the matrix in one pass.
// Complexity: O(r·c).
func (m *Dense) MinMax() (minVal, maxVal int64) {
	minVal, maxVal = m.data[0], m.data[0]
	for _, v := range m.data[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	return minVal, maxVal
}

// String implements fmt.Stringer for easy debugging: one bracketed row per line.
// Complexity: O(r·c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
