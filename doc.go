// Package assign is a small, dependency-free toolkit for bipartite
// minimum-cost assignment over dense cost matrices.
//
// 🚀 What is assign?
//
//	A pure-Go library that pairs a canonical dense cost-matrix type with a
//	deterministic Kuhn–Munkres (Hungarian) solver:
//	  • costmat/ — row-major int64 matrix, validated ingestion, cloning
//	  • munkres/ — the seven-state Hungarian step machine: row reduction,
//	    zero starring/priming, coverage, augmenting paths, adjustment
//
// ✨ Why choose assign?
//
//   - Exact integral arithmetic – no floating-point drift in costs
//   - Deterministic – fixed scan order, no global state, no randomness
//   - Safe by construction – rectangular inputs padded internally, negative
//     costs shifted or rejected, overflow surfaced as a typed error
//   - Pure Go – no cgo, no hidden deps
//
// Quick example:
//
//	res, err := munkres.SolveRows([][]int64{{1, 2}, {3, 4}}, munkres.DefaultOptions())
//	// res.Cost == 5
//
// See each package's doc.go and example_test.go for full walkthroughs.
//
//	go get github.com/katalvlaran/assign
package assign
