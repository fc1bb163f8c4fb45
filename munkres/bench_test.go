package munkres_test

import (
	"testing"

	"github.com/katalvlaran/assign/costmat"
	"github.com/katalvlaran/assign/munkres"
)

// benchmarkSolve runs the solver on a deterministic rows×cols instance.
// It resets the timer after setup and fails on unexpected errors.
func benchmarkSolve(b *testing.B, rows, cols int) {
	data := make([][]int64, rows)
	for i := range data {
		data[i] = make([]int64, cols)
		for j := range data[i] {
			data[i][j] = int64((i*31 + j*17) % 97) // predictable, well-mixed costs
		}
	}
	m, err := costmat.FromRows(data)
	if err != nil {
		b.Fatalf("FromRows failed: %v", err)
	}
	opts := munkres.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = munkres.Solve(m, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Small benchmarks a 32×32 instance.
func BenchmarkSolve_Small(b *testing.B) {
	benchmarkSolve(b, 32, 32)
}

// BenchmarkSolve_Medium benchmarks a 64×64 instance.
func BenchmarkSolve_Medium(b *testing.B) {
	benchmarkSolve(b, 64, 64)
}

// BenchmarkSolve_Large benchmarks a 128×128 instance.
func BenchmarkSolve_Large(b *testing.B) {
	benchmarkSolve(b, 128, 128)
}

// BenchmarkSolve_Rectangular benchmarks a 64×96 instance, exercising the
// padding path.
func BenchmarkSolve_Rectangular(b *testing.B) {
	benchmarkSolve(b, 64, 96)
}
