// Package newton implements a generic Newton–Raphson root finder over
// shopspring/decimal values, with bound clamping and a two-tier
// convergence policy.
//
// 🚀 What is newton?
//
//	The one solver pattern behind every equation inversion in the
//	curvemath kernel: bond price → periodic yield, terminal discount
//	factor → spot rate. Callers supply the function, its analytic
//	derivative, an initial guess and an Options value; Solve returns an
//	explicit Outcome that callers must branch on.
//
// Iteration step:
//
//	xₙ₊₁ = clamp(xₙ − f(xₙ)/f'(xₙ), LowerBound, UpperBound)
//
// Clamping keeps iterates inside the range where the Taylor-based
// primitives stay well-conditioned (the default [-0.5, 2.0] window suits
// periodic rates).
//
// Two-tier convergence:
//
//	Within the iteration cap the strict Tolerance applies. Once the cap is
//	exhausted, one relaxed-tolerance check runs before the solve is
//	declared failed; a relaxed pass is still a success, flagged on the
//	Outcome so engines can surface it as a degraded-precision warning.
//
// Errors (sentinel):
//
//   - ErrNilFunc        — f or fPrime is nil.
//   - ErrBadTolerance   — non-positive strict or relaxed tolerance.
//   - ErrBadIterations  — non-positive iteration cap.
//   - ErrBadBounds      — LowerBound ≥ UpperBound.
//   - ErrZeroDerivative — f'(xₙ) vanished; reported immediately, no
//     perturbation retry.
//   - ErrNoConvergence  — cap exhausted outside both tolerances.
//
// On every error path the returned Outcome still carries the last iterate,
// residual and iteration count for diagnostics.
package newton
