// Package munkres solves the linear assignment problem: given an n×n matrix
// of integral costs, find the one-to-one mapping of rows to columns that
// minimizes the total selected cost.
//
// 🚀 What is the assignment problem?
//
//	Let C be a cost matrix where C[i][j] is the cost of worker i performing
//	job j. Each worker takes exactly one job and each job exactly one worker;
//	the goal is the cheapest such pairing — a minimum-cost perfect matching
//	on the bipartite cost matrix. Typical uses:
//	  • Task / job assignment and resource allocation
//	  • Tracking: associating detections with existing tracks
//	  • Any bipartite min-cost matching over a dense cost table
//
// ✨ Key features:
//   - Kuhn–Munkres (Hungarian) algorithm, matrix-based formulation
//   - Rectangular inputs handled by internal padding; dummy assignments
//     never appear in the result
//   - Negative costs tolerated via an internal uniform shift (reported
//     cost always uses the original values), or rejected on request
//   - Deterministic: fixed row-major scan order, no randomness
//   - Checked arithmetic — extreme magnitudes fail with ErrNumericOverflow
//     instead of silently wrapping
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/assign/costmat"
//	  "github.com/katalvlaran/assign/munkres"
//	)
//
//	m, err := costmat.FromRows([][]int64{
//	  {25, 40, 35},
//	  {40, 60, 35},
//	  {20, 40, 25},
//	})
//	// handle err
//
//	opts := munkres.DefaultOptions()
//	opts.ReturnPairs = true
//	res, err := munkres.Solve(m, opts)
//	// res.Cost == 95, res.Pairs == [{0 1} {1 2} {2 0}]
//
// Performance:
//
//   - Time:   O(n³), n = max(rows, cols)
//   - Memory: O(n²)
//
// The solver holds no global state; independent invocations may run in
// parallel goroutines with zero coordination. Maximization is out of scope:
// negate or complement the costs before calling.
package munkres
