package munkres

import (
	"math"

	"github.com/katalvlaran/assign/costmat"
)

// newSolver normalizes the caller's matrix into the canonical square,
// non-negative working form and allocates all auxiliary state.
//
// Stage 1 (negatives): scan for the minimum entry. A negative minimum either
// fails with ErrNegativeCost (allowNegatives=false) or is resolved by adding
// its absolute value to every entry. The shift adds a constant to every
// perfect matching's total, so it cannot change which assignment is optimal;
// the extractor reports costs from the retained original values, so the shift
// never leaks into the answer.
//
// Stage 2 (padding): a non-square matrix is extended to n×n with a sentinel
// equal to the largest shifted entry plus one. Dummy rows/columns contribute
// the same constant to every perfect matching, so any finite sentinel keeps
// the argmin among real cells intact; a data-derived sentinel avoids the
// wraparound a MaxInt64 sentinel would risk in later additive steps.
//
// Complexity: O(n²) time and memory.
func newSolver(m *costmat.Dense, allowNegatives bool) (*solver, error) {
	orig := m.Values()
	rows, cols := m.Rows(), m.Cols()
	minVal, maxVal := m.MinMax()

	var shift int64
	if minVal < 0 {
		if !allowNegatives {
			return nil, ErrNegativeCost
		}
		shift = -minVal
		if maxVal > math.MaxInt64-shift {
			return nil, ErrNumericOverflow
		}
	}

	n := rows
	if cols > n {
		n = cols
	}
	maxShifted := maxVal + shift
	sentinel := int64(math.MaxInt64)
	if rows != cols {
		if maxShifted == math.MaxInt64 {
			// No headroom left for a sentinel strictly above the data.
			return nil, ErrNumericOverflow
		}
		sentinel = maxShifted + 1
	}

	s := &solver{
		n:        n,
		origRows: rows,
		origCols: cols,
		cost:     make([]int64, n*n),
		orig:     orig,
		mask:     make([]mark, n*n),
		rowCover: make([]bool, n),
		colCover: make([]bool, n),
		path:     make([][2]int, 0, 2*n+1),
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r < rows && c < cols {
				s.cost[r*n+c] = orig[r*cols+c] + shift
			} else {
				s.cost[r*n+c] = sentinel
			}
		}
	}

	return s, nil
}
