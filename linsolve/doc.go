// SPDX-License-Identifier: MIT
// Package linsolve solves the small dense linear systems A·β = b arising
// from least-squares normal equations (AᵗA·β = Aᵗy) in yield-curve fitting:
//
//   - Solve3 — 3×3 systems by closed-form Cramer's rule with
//     cofactor-expanded determinants (Nelson–Siegel betas).
//   - Solve4 — 4×4 systems by Gaussian elimination with partial pivoting
//     and back-substitution (Svensson betas).
//
// Everything is decimal arithmetic over fixed-size value arrays: no
// allocation beyond the result, fully deterministic scan order, no
// general-matrix abstraction (the kernel caps linear algebra at 4×4).
//
// Zero-pivot policy:
//
//	A 3×3 system with |det| inside SingularEpsilon is a hard ErrSingular —
//	Cramer would otherwise divide by a near-zero determinant. The 4×4
//	path is configurable: under ZeroPivotSkip (default) a column whose
//	best pivot is inside SingularEpsilon is skipped, its coefficient is
//	forced to zero and the column index is recorded on the solution, so a
//	collinear loading in a grid-search fit degrades gracefully instead of
//	aborting the scan. Under ZeroPivotFail the same condition returns
//	ErrSingular.
//
// Errors (sentinel):
//
//   - ErrSingular — vanishing determinant (Solve3) or zero pivot under
//     ZeroPivotFail (Solve4).
package linsolve
