package dmath

import "errors"

// Sentinel errors returned by the primitive layer. Callers match them via
// errors.Is; none of these are ever wrapped with additional sentinels.
var (
	// ErrLnDomain indicates Ln was called with a non-positive argument.
	ErrLnDomain = errors.New("dmath: ln argument must be positive")

	// ErrRootDegree indicates NthRoot was called with degree n < 1.
	ErrRootDegree = errors.New("dmath: root degree must be >= 1")

	// ErrRootDomain indicates NthRoot was called with a negative radicand.
	ErrRootDomain = errors.New("dmath: root radicand must be non-negative")

	// ErrPowDomain indicates a real-exponent Pow of a non-positive base,
	// which has no real-valued result in general.
	ErrPowDomain = errors.New("dmath: real-exponent pow requires a positive base")

	// ErrPowZeroBase indicates zero raised to a negative exponent.
	ErrPowZeroBase = errors.New("dmath: zero base with negative exponent")

	// ErrNoConvergence indicates the fixed iteration cap was exhausted
	// without meeting the configured tolerance.
	ErrNoConvergence = errors.New("dmath: iteration cap exhausted without convergence")
)
