// Package dmath computes transcendental functions — exp, ln, sqrt, nth-root
// and pow — over shopspring/decimal fixed-scale decimals, using only exact
// add/sub/mul and fixed-precision division. No math.Exp, no math.Log, no
// hardware transcendentals anywhere: every value comes from a series
// expansion or a fixed-iteration Newton approximation so results are
// bit-for-bit reproducible across platforms.
//
// 🚀 What is dmath?
//
//	The leaf layer of the curvemath kernel. Every higher-level engine
//	(yield solving, curve bootstrapping, Nelson–Siegel fitting) composes
//	these five primitives:
//	  • Exp     — Taylor series Σ xᵏ/k! with half-angle reduction
//	  • Ln      — halving/doubling range reduction + odd-power atanh series
//	  • Sqrt    — Newton iteration (g+x/g)/2
//	  • NthRoot — Newton on gⁿ−x from guess 1
//	  • Pow     — iterative squaring for integer exponents,
//	              Exp(e·Ln(b)) for real exponents
//
// ⚙️ Configuration:
//
//	Term counts, iteration caps and the convergence tolerance live in one
//	Config struct with documented defaults (DefaultConfig). They are part of
//	each function's numeric contract: changing them changes downstream
//	regulatory results, so callers inject them explicitly rather than
//	relying on scattered per-call-site literals.
//
// Degenerate-input conventions (intentional, documented, not errors):
//
//   - Exp(x) for x below Config.ExpFloor returns exactly 0.
//   - Exp(x) for x above Config.ExpCeiling saturates at Exp(ExpCeiling).
//   - Sqrt of a non-positive value returns 0.
//   - Pow(base, 0) returns 1 for any base, including 0 and negatives.
//
// Errors (sentinel):
//
//   - ErrLnDomain      — Ln of a non-positive value.
//   - ErrRootDegree    — NthRoot with n < 1.
//   - ErrRootDomain    — NthRoot of a negative value.
//   - ErrPowDomain     — real-exponent Pow of a non-positive base.
//   - ErrPowZeroBase   — zero base raised to a negative exponent.
//   - ErrNoConvergence — iteration cap exhausted outside tolerance.
//
// All functions are pure: no package-level state, no hidden rounding mode.
// Division uses shopspring's default 16-digit division precision, which this
// package never mutates.
package dmath
