package munkres

import "github.com/katalvlaran/assign/costmat"

// Solve computes a minimum-cost perfect matching of rows to columns for the
// given cost matrix using the Kuhn–Munkres (Hungarian) algorithm.
//
// The input may be rectangular: the smaller dimension is padded internally
// with dummy entries that never surface in the result. The caller's matrix is
// never mutated, so repeated calls on the same input yield identical results.
//
// Returns (result, error):
//   - ErrNilMatrix when costs is nil.
//   - ErrNegativeCost when a negative entry is present and
//     opts.AllowNegatives is false.
//   - ErrNumericOverflow when entry magnitudes leave no headroom for the
//     internal shift or adjustment arithmetic.
//
// Complexity: O(n³) time, O(n²) memory, n = max(rows, cols).
func Solve(costs *costmat.Dense, opts Options) (Result, error) {
	if costs == nil {
		return Result{}, ErrNilMatrix
	}

	s, err := newSolver(costs, opts.AllowNegatives)
	if err != nil {
		return Result{}, err
	}
	if err = s.run(); err != nil {
		return Result{}, err
	}

	return s.extract(opts.ReturnPairs)
}

// SolveRows is a convenience wrapper that ingests nested slices through
// costmat.FromRows and delegates to Solve. It surfaces
// costmat.ErrEmptyMatrix and costmat.ErrNonRectangular for malformed input.
func SolveRows(rows [][]int64, opts Options) (Result, error) {
	m, err := costmat.FromRows(rows)
	if err != nil {
		return Result{}, err
	}

	return Solve(m, opts)
}

// extract reads the final mask against the original (unshifted, unpadded)
// values: the true optimal cost is the sum of original entries at starred
// positions within the original index ranges. Stars in dummy rows or columns
// are ignored. The accumulation is checked so extreme entries surface as
// ErrNumericOverflow instead of a wrapped total.
func (s *solver) extract(wantPairs bool) (Result, error) {
	var res Result
	for r := 0; r < s.origRows; r++ {
		for c := 0; c < s.origCols; c++ {
			if s.markAt(r, c) == markStarred {
				v := s.orig[r*s.origCols+c]
				sum := res.Cost + v
				if (v > 0 && sum < res.Cost) || (v < 0 && sum > res.Cost) {
					return Result{}, ErrNumericOverflow
				}
				res.Cost = sum
				if wantPairs {
					res.Pairs = append(res.Pairs, Pair{Row: r, Col: c})
				}
			}
		}
	}

	return res, nil
}
