package dmath

import "github.com/shopspring/decimal"

// Exp computes eˣ by Taylor series with half-angle reduction.
//
// Algorithm outline:
//  1. x < Config.ExpFloor  → return exactly 0 (underflow convention).
//     x > Config.ExpCeiling → saturate x at the ceiling (no overflow).
//  2. While |x| > 2: halve x, counting the halvings h.
//     Uses exp(x) = exp(x/2)², which keeps the series argument small
//     enough for the fixed term count to reach full precision.
//  3. Sum the Taylor series Σ xᵏ/k! for k = 0..ExpTaylorTerms.
//  4. Square the sum h times to undo the reduction.
//
// Edge cases:
//   - Exp(0) == 1 exactly.
//
// Complexity: O(ExpTaylorTerms + log|x|) decimal operations.
func Exp(x decimal.Decimal, cfg Config) decimal.Decimal {
	cfg = cfg.normalized()

	// 1) Floor and ceiling conventions.
	if x.Cmp(cfg.ExpFloor) < 0 {
		return decimal.Zero
	}
	if x.Cmp(cfg.ExpCeiling) > 0 {
		x = cfg.ExpCeiling
	}

	// 2) Half-angle reduction: shrink |x| into [0, 2].
	halvings := 0
	for x.Abs().Cmp(two) > 0 {
		x = x.Div(two)
		halvings++
	}

	// 3) Taylor series: term_k = term_{k-1}·x/k, accumulated into sum.
	sum := one
	term := one
	for k := 1; k <= cfg.ExpTaylorTerms; k++ {
		term = term.Mul(x).Div(decimal.NewFromInt(int64(k)))
		sum = sum.Add(term)
	}

	// 4) Undo the reduction by repeated squaring.
	for i := 0; i < halvings; i++ {
		sum = sum.Mul(sum)
	}

	return sum
}
