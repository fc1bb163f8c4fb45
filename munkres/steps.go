package munkres

import "math"

// run drives the state machine from row reduction to termination.
// The transition graph:
//
//	reduce → star → count ⇄ prime → augment → count
//	                        prime ⇄ adjust
//	        count → done (n columns covered)
//
// Each handler returns the next state; only stepAdjust can fail (checked
// arithmetic). An unknown state is reported as ErrInternal rather than
// silently terminating.
func (s *solver) run() error {
	return s.runFrom(stepReduce)
}

// runFrom executes the dispatch loop starting at st; split out so the
// unknown-state contract is directly testable.
func (s *solver) runFrom(st step) error {
	for st != stepDone {
		switch st {
		case stepReduce:
			st = s.reduceRows()
		case stepStar:
			st = s.starZeros()
		case stepCount:
			st = s.countStarredColumns()
		case stepPrime:
			st = s.primeZeros()
		case stepAugment:
			st = s.augmentPath()
		case stepAdjust:
			var err error
			if st, err = s.adjustMatrix(); err != nil {
				return err
			}
		default:
			return ErrInternal
		}
	}

	return nil
}

// reduceRows subtracts each row's minimum from every entry in the row,
// guaranteeing at least one zero per row. Rows already containing a zero are
// left untouched.
func (s *solver) reduceRows() step {
	for r := 0; r < s.n; r++ {
		row := s.cost[r*s.n : (r+1)*s.n]
		smallest := row[0]
		for _, v := range row[1:] {
			if v < smallest {
				smallest = v
			}
		}
		if smallest > 0 {
			for c := range row {
				row[c] -= smallest
			}
		}
	}

	return stepStar
}

// starZeros greedily stars zeros in row-major order, covering each starred
// zero's row and column so no two stars share a line. This builds an initial
// partial matching from "free" zeros only; stepCount measures how far it got.
// Covers are cleared before leaving so later states can reuse them.
func (s *solver) starZeros() step {
	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			if s.at(r, c) == 0 && !s.rowCover[r] && !s.colCover[c] {
				s.mask[r*s.n+c] = markStarred
				s.rowCover[r] = true
				s.colCover[c] = true
			}
		}
	}
	s.clearCovers()

	return stepCount
}

// countStarredColumns covers every column containing a starred zero. If all n
// columns are covered the starred set is a complete assignment and the
// machine halts; otherwise the search continues in stepPrime with the column
// covers left in place.
func (s *solver) countStarredColumns() step {
	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			if s.markAt(r, c) == markStarred {
				s.colCover[c] = true
			}
		}
	}

	count := 0
	for _, covered := range s.colCover {
		if covered {
			count++
		}
	}
	if count >= s.n {
		return stepDone
	}

	return stepPrime
}

// primeZeros repeatedly primes the first uncovered zero. A primed zero whose
// row holds a star covers that row and uncovers the star's column, exposing
// new candidates; a primed zero in a star-free row seeds the augmenting path.
// When no uncovered zero remains the matrix needs adjustment.
func (s *solver) primeZeros() step {
	for {
		r, c, ok := s.findUncoveredZero()
		if !ok {
			return stepAdjust
		}
		s.mask[r*s.n+c] = markPrimed
		starCol, starred := s.starInRow(r)
		if !starred {
			s.seedRow, s.seedCol = r, c
			return stepAugment
		}
		s.rowCover[r] = true
		s.colCover[starCol] = false
	}
}

// augmentPath builds the alternating series of primed and starred zeros
// starting at the seed Z0: the star in Z0's column (if any), then the prime
// in that star's row, and so on until a prime whose column holds no star.
// Applying the path unstars every star on it and stars every prime, growing
// the matching by exactly one. Covers and primes are then reset for the next
// coverage test.
func (s *solver) augmentPath() step {
	s.path = s.path[:0]
	s.path = append(s.path, [2]int{s.seedRow, s.seedCol})
	for {
		last := s.path[len(s.path)-1]
		r, ok := s.starInCol(last[1])
		if !ok {
			break
		}
		s.path = append(s.path, [2]int{r, last[1]})
		c, _ := s.primeInRow(r)
		s.path = append(s.path, [2]int{r, c})
	}

	for _, p := range s.path {
		idx := p[0]*s.n + p[1]
		if s.mask[idx] == markStarred {
			s.mask[idx] = markNone
		} else {
			s.mask[idx] = markStarred
		}
	}
	s.clearCovers()
	s.erasePrimes()

	return stepCount
}

// adjustMatrix finds the smallest entry whose row and column are both
// uncovered, adds it to every covered row and subtracts it from every
// uncovered column. Doubly-covered entries net unchanged; doubly-uncovered
// entries only decrease, so at least one new zero appears for stepPrime
// without disturbing existing stars or primes. Additions are checked so a
// pathological magnitude surfaces as ErrNumericOverflow instead of wrapping.
func (s *solver) adjustMatrix() (step, error) {
	minVal := int64(math.MaxInt64)
	for r := 0; r < s.n; r++ {
		if s.rowCover[r] {
			continue
		}
		for c := 0; c < s.n; c++ {
			if !s.colCover[c] && s.at(r, c) < minVal {
				minVal = s.at(r, c)
			}
		}
	}

	for r := 0; r < s.n; r++ {
		for c := 0; c < s.n; c++ {
			idx := r*s.n + c
			if s.rowCover[r] {
				if s.cost[idx] > math.MaxInt64-minVal {
					return 0, ErrNumericOverflow
				}
				s.cost[idx] += minVal
			}
			if !s.colCover[c] {
				s.cost[idx] -= minVal
			}
		}
	}

	return stepPrime, nil
}
