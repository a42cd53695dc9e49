package dmath

import "github.com/shopspring/decimal"

// Ln computes the natural logarithm of x by range reduction and the
// odd-power atanh series.
//
// Algorithm outline:
//  1. Validate x > 0 (ErrLnDomain otherwise).
//  2. Range-reduce v toward 1: halve while v ≥ 2, double while v < ½,
//     tracking the net shift in the integer k, so that
//     ln(x) = ln(v) + k·ln2 with v ∈ [½, 2).
//  3. Substitute u = (v−1)/(v+1) and sum the odd-power series
//     ln(v) = 2·Σ u^(2i+1)/(2i+1) for i = 0..LnSeriesTerms−1.
//     |u| ≤ 1/3 after reduction, so the series converges geometrically
//     and the fixed term count reaches well past division precision.
//  4. Return series + k·ln2.
//
// Edge cases:
//   - Ln(1) == 0 exactly (u == 0, k == 0).
//
// Complexity: O(LnSeriesTerms + log x) decimal operations.
func Ln(x decimal.Decimal, cfg Config) (decimal.Decimal, error) {
	cfg = cfg.normalized()

	// 1) Domain check.
	if x.Sign() <= 0 {
		return decimal.Zero, ErrLnDomain
	}

	// 2) Range reduction into [½, 2), tracked by k.
	v := x
	k := 0
	for v.Cmp(two) >= 0 {
		v = v.Div(two)
		k++
	}
	for v.Cmp(half) < 0 {
		v = v.Mul(two)
		k--
	}

	// 3) Odd-power series in u = (v−1)/(v+1).
	u := v.Sub(one).Div(v.Add(one))
	u2 := u.Mul(u)
	sum := decimal.Zero
	term := u
	for i := 0; i < cfg.LnSeriesTerms; i++ {
		sum = sum.Add(term.Div(decimal.NewFromInt(int64(2*i + 1))))
		term = term.Mul(u2)
	}
	sum = sum.Mul(two)

	// 4) Reassemble with the k·ln2 shift.
	return sum.Add(ln2.Mul(decimal.NewFromInt(int64(k)))), nil
}
