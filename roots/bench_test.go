package roots_test

import (
	"testing"

	"github.com/katalvlaran/rootfind/roots"
)

// benchmarkSolve runs fn b.N times and fails on unexpected errors, so each
// benchmark body stays a one-liner.
func benchmarkSolve(b *testing.B, fn func() (float64, error)) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fn(); err != nil {
			b.Fatalf("solve failed: %v", err)
		}
	}
}

// BenchmarkBisection_Cubic measures interval halving on the cubic at 1e-6.
func BenchmarkBisection_Cubic(b *testing.B) {
	benchmarkSolve(b, func() (float64, error) {
		return roots.Bisection(1, 2, cubic)
	})
}

// BenchmarkFalsePosition_Cubic measures regula falsi on the same bracket.
func BenchmarkFalsePosition_Cubic(b *testing.B) {
	benchmarkSolve(b, func() (float64, error) {
		return roots.FalsePosition(1, 2, cubic)
	})
}

// BenchmarkFixedPoint_Contraction measures plain substitution.
func BenchmarkFixedPoint_Contraction(b *testing.B) {
	benchmarkSolve(b, func() (float64, error) {
		return roots.FixedPoint(1.5, contraction)
	})
}

// BenchmarkNewtonRaphson_Cubic measures tangent updates with the numerical
// derivative (two extra evaluations per step).
func BenchmarkNewtonRaphson_Cubic(b *testing.B) {
	benchmarkSolve(b, func() (float64, error) {
		return roots.NewtonRaphson(1.5, cubic)
	})
}

// BenchmarkSecant_Cubic measures the two-point secant window.
func BenchmarkSecant_Cubic(b *testing.B) {
	benchmarkSolve(b, func() (float64, error) {
		return roots.Secant(1, 2, cubic)
	})
}

// BenchmarkSteffensen_Contraction measures the Δ²-accelerated substitution.
func BenchmarkSteffensen_Contraction(b *testing.B) {
	benchmarkSolve(b, func() (float64, error) {
		return roots.Steffensen(1.5, contraction)
	})
}
