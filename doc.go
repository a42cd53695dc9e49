// Package curvemath is a deterministic fixed-point numerical kernel for
// financial analytics — transcendental primitives, root finding, small dense
// linear solvers, and the yield-curve engines built on top of them.
//
// 🚀 What is curvemath?
//
//	A pure-computation library that reproduces bit-for-bit identical results
//	across platforms by avoiding binary floating point entirely. Every value
//	is a shopspring/decimal fixed-scale decimal, every transcendental comes
//	from a series expansion or fixed-iteration approximation with a documented
//	convergence tolerance:
//	  • dmath    — exp, ln, sqrt, nth-root, pow over decimals
//	  • newton   — generic Newton–Raphson with bounds and two-tier tolerance
//	  • linsolve — 3×3 Cramer and 4×4 Gaussian-elimination solvers
//	  • bond     — bond yield-to-maturity (periodic, annual, BEY, EAY)
//	  • curve    — par-curve bootstrap, spot interpolation, forward rates
//	  • curvefit — Nelson–Siegel and Svensson least-squares fitting
//	  • config   — one YAML-loadable struct for every numeric tunable
//
// ✨ Why choose curvemath?
//
//   - Reproducible – no hardware transcendentals, no hidden rounding modes
//   - Auditable – every iteration cap and tolerance is a named, documented constant
//   - Thread-safe by construction – pure functions over immutable inputs
//   - Explicit failure – sentinel errors per package, warnings carried in results
//
// Data flows one way: market inputs → curve engines → rates, discount factors
// and fit diagnostics. Report building, persistence and I/O live outside this
// module.
//
// Dive into the package docs and examples/ for full walkthroughs.
//
//	go get github.com/fall-development-rob/curvemath
package curvemath
