package dmath_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

// BenchmarkExp_Small benchmarks Exp inside the no-reduction range.
func BenchmarkExp_Small(b *testing.B) {
	cfg := dmath.DefaultConfig()
	x := decimal.RequireFromString("0.05")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dmath.Exp(x, cfg)
	}
}

// BenchmarkExp_Reduced benchmarks Exp on a large argument that triggers
// half-angle reduction and repeated squaring.
func BenchmarkExp_Reduced(b *testing.B) {
	cfg := dmath.DefaultConfig()
	x := decimal.RequireFromString("17.5")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dmath.Exp(x, cfg)
	}
}

// BenchmarkLn benchmarks Ln on a typical discount-factor reciprocal.
func BenchmarkLn(b *testing.B) {
	cfg := dmath.DefaultConfig()
	x := decimal.RequireFromString("1.0735")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dmath.Ln(x, cfg); err != nil {
			b.Fatalf("Ln failed: %v", err)
		}
	}
}

// BenchmarkSqrt benchmarks the Newton square root.
func BenchmarkSqrt(b *testing.B) {
	cfg := dmath.DefaultConfig()
	x := decimal.RequireFromString("2")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dmath.Sqrt(x, cfg)
	}
}

// BenchmarkNthRoot benchmarks the degree-12 root on a discount factor,
// the deepest root the spot engine requests.
func BenchmarkNthRoot(b *testing.B) {
	cfg := dmath.DefaultConfig()
	x := decimal.RequireFromString("0.70")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dmath.NthRoot(x, 12, cfg); err != nil {
			b.Fatalf("NthRoot failed: %v", err)
		}
	}
}

// BenchmarkPow_Fractional benchmarks the Exp∘Ln fractional power used by
// forward rates and bond-equivalent yields.
func BenchmarkPow_Fractional(b *testing.B) {
	cfg := dmath.DefaultConfig()
	base := decimal.RequireFromString("1.035")
	exp := decimal.RequireFromString("2.5")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dmath.Pow(base, exp, cfg); err != nil {
			b.Fatalf("Pow failed: %v", err)
		}
	}
}
