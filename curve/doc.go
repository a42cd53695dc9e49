// Package curve bootstraps a zero-coupon spot curve from par instruments
// and derives discount factors and no-arbitrage forward rates, all over
// fixed-scale decimals.
//
// 🚀 What is curve?
//
//	The spot-curve engine of the curvemath kernel. Input is a strictly
//	ascending list of par instruments (maturity in years, par rate);
//	output is a Curve exposing:
//	  • bootstrapped annualized spot rates per input tenor
//	  • the terminal discount factor per tenor
//	  • linear spot interpolation at arbitrary tenors (SpotAt, DiscountAt)
//	  • consecutive-tenor forward rates (ForwardRates)
//
// Bootstrap procedure:
//
//	The first instrument's spot equals its par rate exactly. Each later
//	instrument's terminal discount factor is isolated algebraically from
//	the par equation
//
//	  1 = c·Σ DFᵢ + (1+c)·DFₙ ,  c = par/frequency
//
//	where the intermediate DFᵢ come from linear interpolation over the
//	spots bootstrapped so far (flat beyond the last knot). The terminal
//	factor converts to an annualized spot via an nth root for integral
//	maturities, or a fractional power otherwise.
//
// Input discipline:
//
//	Ascending maturities are an input invariant. Unsorted or duplicate
//	tenors are validation errors — never a silent sort — because a
//	reordered curve would bootstrap different intermediate factors than
//	the caller audited.
//
// Errors (sentinel):
//
//   - ErrInsufficientData    — fewer than two instruments.
//   - ErrUnsortedInput       — maturities not strictly ascending.
//   - ErrDuplicateMaturity   — repeated tenor.
//   - ErrNonPositiveMaturity — tenor ≤ 0.
//   - ErrBadFrequency        — coupon frequency < 1.
//   - ErrOffCouponGrid       — maturity not on the coupon grid.
//   - ErrImpossibleDiscount  — algebra produced a non-positive terminal
//     discount factor (economically impossible input).
//   - ErrBeyondCurve         — interpolation requested past the last knot.
package curve
