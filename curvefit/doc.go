// Package curvefit fits parametric Nelson–Siegel and Svensson yield-curve
// models to observed rates by ordinary least squares over fixed-scale
// decimals.
//
// 🚀 What is curvefit?
//
//	The parametric engine of the curvemath kernel. For a FIXED decay
//	parameter the models are linear in their betas, so the fit reduces to
//	the normal equations AᵗA·β = Aᵗy solved exactly:
//	  • Nelson–Siegel — 3 betas, 3×3 Cramer solve
//	  • Svensson      — 4 betas, 4×4 Gaussian elimination
//	The decay parameter itself comes from a coarse grid of fixed
//	candidates plus a local percentage-delta refinement around the best
//	one, keeping the lowest sum of squared errors — no nonlinear gradient
//	search anywhere.
//
// Results never hide fit quality behind a boolean: every fit returns its
// Diagnostics (fitted rates, residuals, RMSE, R²) recomputed for the
// returned parameters, and non-fatal conditions (poor RMSE, a collinear
// Svensson loading column skipped by the solver) come back as warnings
// alongside the result rather than as failures.
//
// Errors (sentinel):
//
//   - ErrInsufficientData    — fewer observations than betas (3 for
//     Nelson–Siegel, 4 for Svensson).
//   - ErrNonPositiveMaturity — an observed tenor ≤ 0.
//   - ErrBadLambda           — a non-positive decay candidate.
//   - ErrNoViableLambda      — every grid candidate produced a singular
//     normal system.
package curvefit
