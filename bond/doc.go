// Package bond solves bond yield to maturity over fixed-scale decimals.
//
// 🚀 What is bond?
//
//	The first curve engine of the curvemath kernel. Given a bond's terms
//	(face value, annual coupon rate, coupon frequency, years to maturity)
//	and its market price, SolveYTM inverts the pricing equation
//
//	  price = Σ coupon/(1+r)ᵏ + face/(1+r)ᴺ
//
//	for the periodic rate r via Newton–Raphson, then derives the
//	annualized YTM, the bond-equivalent yield and the effective annual
//	yield.
//
// Numeric policy:
//
//   - Discount factors are accumulated iteratively (d ← d·(1+r) per
//     period), never via a single large-exponent power, to control
//     compounding error.
//   - The periodic rate is clamped into the solver's bound window
//     (default [-0.5, 2.0]) so the Taylor-based primitives stay
//     well-conditioned.
//   - Two-tier convergence: a solve that only meets the relaxed tolerance
//     still succeeds, with the degraded precision reported in
//     Result.Warnings rather than as an error.
//
// Errors (sentinel):
//
//   - ErrNonPositiveFace, ErrNonPositivePrice, ErrNonPositiveMaturity,
//     ErrBadFrequency — out-of-domain terms.
//   - ErrOffPeriodGrid — maturity does not land on the coupon grid.
//   - ErrDegenerateCashflow — zero final cashflow, the pricing equation
//     has no finite root.
//   - newton.ErrZeroDerivative / newton.ErrNoConvergence propagate
//     (wrapped) from the solve itself.
package bond
