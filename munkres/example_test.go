package munkres_test

import (
	"fmt"

	"github.com/katalvlaran/assign/costmat"
	"github.com/katalvlaran/assign/munkres"
)

// ExampleSolve assigns three workers to three jobs.
//
// Scenario:
//
//	cost[i][j] is the cost of worker i doing job j:
//	  25 40 35
//	  40 60 35
//	  20 40 25
//
// The unique optimum sends worker 0 to job 1, worker 1 to job 2 and
// worker 2 to job 0, totalling 40+35+20 = 95.
func ExampleSolve() {
	m, err := costmat.FromRows([][]int64{
		{25, 40, 35},
		{40, 60, 35},
		{20, 40, 25},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := munkres.DefaultOptions()
	opts.ReturnPairs = true
	res, err := munkres.Solve(m, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%d\npairs=%v\n", res.Cost, res.Pairs)
	// Output:
	// cost=95
	// pairs=[{0 1} {1 2} {2 0}]
}

// ExampleSolveRows shows the nested-slice convenience entry point.
// Both assignments of the 2×2 instance total 5.
func ExampleSolveRows() {
	res, err := munkres.SolveRows([][]int64{
		{1, 2},
		{3, 4},
	}, munkres.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%d\n", res.Cost)
	// Output:
	// cost=5
}

// ExampleSolve_rectangular assigns two workers among three jobs: the matrix
// is padded internally and the leftover job simply stays unassigned.
func ExampleSolve_rectangular() {
	opts := munkres.DefaultOptions()
	opts.ReturnPairs = true
	res, err := munkres.SolveRows([][]int64{
		{1, 10, 10},
		{10, 1, 10},
	}, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("cost=%d\npairs=%v\n", res.Cost, res.Pairs)
	// Output:
	// cost=2
	// pairs=[{0 0} {1 1}]
}
