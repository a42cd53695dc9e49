package dmath

import "github.com/shopspring/decimal"

// Sqrt computes √x by Newton's method g ← (g + x/g)/2.
//
// Non-positive input returns 0 — an intentional degenerate-case convention
// (downstream statistics treat a vanishing variance as a zero deviation),
// not an error.
//
// Iteration stops early once successive guesses differ by less than
// Config.Tolerance, otherwise after Config.SqrtIterations steps. Newton
// doubles correct digits per step, so the cap is generous for any input
// the kernel produces.
func Sqrt(x decimal.Decimal, cfg Config) decimal.Decimal {
	cfg = cfg.normalized()

	if x.Sign() <= 0 {
		return decimal.Zero
	}

	// Initial guess (x+1)/2 bounds √x from above for every positive x.
	g := x.Add(one).Div(two)
	for i := 0; i < cfg.SqrtIterations; i++ {
		next := g.Add(x.Div(g)).Div(two)
		if next.Sub(g).Abs().Cmp(cfg.Tolerance) < 0 {
			return next
		}
		g = next
	}

	return g
}

// NthRoot computes x^(1/n) by Newton's method on f(g) = gⁿ − x from the
// initial guess 1.
//
// The guess suits the kernel's call sites, which take roots of values near 1
// (discount factors, 1±small rates); convergence for every degree n ≤ 12 on
// such inputs is required within Config.RootIterations steps.
//
// Errors:
//   - ErrRootDegree    if n < 1.
//   - ErrRootDomain    if x < 0.
//   - ErrNoConvergence if the residual |gⁿ−x| still exceeds Config.Tolerance
//     after the iteration cap.
func NthRoot(x decimal.Decimal, n int, cfg Config) (decimal.Decimal, error) {
	cfg = cfg.normalized()

	// 1) Validate degree and domain.
	if n < 1 {
		return decimal.Zero, ErrRootDegree
	}
	if x.Sign() < 0 {
		return decimal.Zero, ErrRootDomain
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}
	if n == 1 {
		return x, nil
	}

	// 2) Newton iteration: g ← g − (gⁿ−x)/(n·gⁿ⁻¹).
	nDec := decimal.NewFromInt(int64(n))
	g := one
	for i := 0; i < cfg.RootIterations; i++ {
		gPrev := powIntPositive(g, n-1) // gⁿ⁻¹
		residual := gPrev.Mul(g).Sub(x) // gⁿ − x
		if residual.Abs().Cmp(cfg.Tolerance) < 0 {
			return g, nil
		}
		deriv := nDec.Mul(gPrev)
		if deriv.IsZero() {
			// Only reachable if g collapsed to 0; treat as non-convergence.
			return g, ErrNoConvergence
		}
		g = g.Sub(residual.Div(deriv))
	}

	return g, ErrNoConvergence
}

// powIntPositive raises base to a non-negative integer power by iterative
// squaring. Exact to scale: only multiplications, no division.
func powIntPositive(base decimal.Decimal, k int) decimal.Decimal {
	result := one
	sq := base
	for k > 0 {
		if k&1 == 1 {
			result = result.Mul(sq)
		}
		sq = sq.Mul(sq)
		k >>= 1
	}

	return result
}
