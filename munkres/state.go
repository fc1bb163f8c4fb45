package munkres

// mark is the 3-valued tag kept per cell of the mask matrix.
// A starred zero is a tentative assignment; a primed zero is a candidate
// considered during augmenting-path search.
type mark uint8

const (
	markNone mark = iota
	markStarred
	markPrimed
)

// step is the explicit program counter of the solver's state machine.
// The transition graph is fixed; see steps.go for the handlers.
type step uint8

const (
	stepReduce  step = iota + 1 // row reduction
	stepStar                    // initial greedy starring of free zeros
	stepCount                   // cover starred columns, test for completion
	stepPrime                   // prime uncovered zeros, seed augmenting path
	stepAugment                 // apply alternating star/prime path
	stepAdjust                  // create new zeros via min-uncovered adjustment
	stepDone                    // terminal
)

// solver owns all mutable state of one algorithm invocation: the padded
// working matrix, the original values, the mask, the cover vectors and the
// augmenting-path buffer. Everything is sized to n and discarded with the
// invocation; nothing is shared across calls.
type solver struct {
	n        int // padded square dimension
	origRows int // caller's row count
	origCols int // caller's column count

	cost []int64 // n×n working matrix, row-major, mutated in place
	orig []int64 // origRows×origCols original values, read-only

	mask     []mark // n×n star/prime marks
	rowCover []bool
	colCover []bool

	path             [][2]int // augmenting-path buffer, ≤ 2n+1 entries
	seedRow, seedCol int      // uncovered primed zero found by stepPrime
}

func (s *solver) at(r, c int) int64 { return s.cost[r*s.n+c] }

func (s *solver) markAt(r, c int) mark { return s.mask[r*s.n+c] }

func (s *solver) clearCovers() {
	for i := range s.rowCover {
		s.rowCover[i] = false
		s.colCover[i] = false
	}
}

// erasePrimes removes every prime mark, leaving stars untouched.
func (s *solver) erasePrimes() {
	for i, m := range s.mask {
		if m == markPrimed {
			s.mask[i] = markNone
		}
	}
}

// starInRow returns the column of the starred zero in row r, if any.
// Rows hold at most one star from stepStar onward.
func (s *solver) starInRow(r int) (int, bool) {
	for c := 0; c < s.n; c++ {
		if s.markAt(r, c) == markStarred {
			return c, true
		}
	}

	return -1, false
}

// starInCol returns the row of the starred zero in column c, if any.
func (s *solver) starInCol(c int) (int, bool) {
	for r := 0; r < s.n; r++ {
		if s.markAt(r, c) == markStarred {
			return r, true
		}
	}

	return -1, false
}

// primeInRow returns the column of the primed zero in row r, if any.
// During stepAugment the queried row always holds exactly one prime.
func (s *solver) primeInRow(r int) (int, bool) {
	for c := 0; c < s.n; c++ {
		if s.markAt(r, c) == markPrimed {
			return c, true
		}
	}

	return -1, false
}

// findUncoveredZero locates the first zero whose row and column are both
// uncovered, scanning in increasing row order and increasing column within
// each row. The scan order is load-bearing: it fixes which zero is primed
// first and therefore the deterministic tie-breaking of the whole machine.
func (s *solver) findUncoveredZero() (row, col int, ok bool) {
	for r := 0; r < s.n; r++ {
		if s.rowCover[r] {
			continue
		}
		for c := 0; c < s.n; c++ {
			if s.at(r, c) == 0 && !s.colCover[c] {
				return r, c, true
			}
		}
	}

	return -1, -1, false
}
