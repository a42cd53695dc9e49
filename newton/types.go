package newton

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by Solve. Matched via errors.Is.
var (
	// ErrNilFunc indicates that f or fPrime was nil.
	ErrNilFunc = errors.New("newton: function and derivative must be non-nil")

	// ErrBadTolerance indicates a non-positive strict or relaxed tolerance.
	ErrBadTolerance = errors.New("newton: tolerance must be positive")

	// ErrBadIterations indicates a non-positive iteration cap.
	ErrBadIterations = errors.New("newton: max iterations must be positive")

	// ErrBadBounds indicates LowerBound >= UpperBound.
	ErrBadBounds = errors.New("newton: lower bound must be below upper bound")

	// ErrZeroDerivative indicates f'(x) vanished at an iterate. The solve
	// stops immediately; there is no perturbation retry.
	ErrZeroDerivative = errors.New("newton: zero derivative encountered")

	// ErrNoConvergence indicates the iteration cap was exhausted and even
	// the relaxed tolerance was not met.
	ErrNoConvergence = errors.New("newton: no convergence within iteration cap")
)

// Func is a scalar function of one decimal variable.
type Func func(decimal.Decimal) decimal.Decimal

// Outcome reports the result of a Newton–Raphson solve. It is populated on
// every return, including error paths, so callers always see the last
// iterate, residual and iteration count.
//
// Callers must branch on Converged (or the returned error) explicitly;
// Root is only a solution when Converged is true.
type Outcome struct {
	// Root is the final iterate.
	Root decimal.Decimal

	// Residual is f(Root) at the final iterate.
	Residual decimal.Decimal

	// Iterations is the number of Newton steps taken.
	Iterations int

	// Converged reports whether Residual met the strict tolerance, or the
	// relaxed tolerance after the cap (see Relaxed).
	Converged bool

	// Relaxed reports that only the relaxed tolerance was met. Engines
	// surface this as a degraded-precision warning, not an error.
	Relaxed bool
}

// Options configures a solve.
//
// Tolerance        – strict convergence tolerance on |f(x)|.
// RelaxedTolerance – second-chance tolerance applied once after the cap.
// MaxIterations    – Newton step cap.
// LowerBound       – iterates are clamped to at least this value.
// UpperBound       – iterates are clamped to at most this value.
type Options struct {
	Tolerance        decimal.Decimal
	RelaxedTolerance decimal.Decimal
	MaxIterations    int
	LowerBound       decimal.Decimal
	UpperBound       decimal.Decimal
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithTolerance sets the strict convergence tolerance.
func WithTolerance(tol decimal.Decimal) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithRelaxedTolerance sets the after-cap second-chance tolerance.
func WithRelaxedTolerance(tol decimal.Decimal) Option {
	return func(o *Options) { o.RelaxedTolerance = tol }
}

// WithMaxIterations sets the Newton step cap.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithBounds sets the clamp window for iterates.
func WithBounds(lower, upper decimal.Decimal) Option {
	return func(o *Options) {
		o.LowerBound = lower
		o.UpperBound = upper
	}
}

// DefaultOptions returns the documented default solve policy.
//
// Defaults:
//   - Tolerance:        1e-10
//   - RelaxedTolerance: 1e-2
//   - MaxIterations:    50
//   - Bounds:           [-0.5, 2.0] — the periodic-rate window that keeps
//     the Taylor-based primitives well-conditioned.
func DefaultOptions() Options {
	return Options{
		Tolerance:        decimal.New(1, -10),
		RelaxedTolerance: decimal.New(1, -2),
		MaxIterations:    50,
		LowerBound:       decimal.New(-5, -1),
		UpperBound:       decimal.NewFromInt(2),
	}
}

// validate checks an Options value, returning the first violated sentinel.
func (o Options) validate() error {
	if o.Tolerance.Sign() <= 0 || o.RelaxedTolerance.Sign() <= 0 {
		return ErrBadTolerance
	}
	if o.MaxIterations <= 0 {
		return ErrBadIterations
	}
	if o.LowerBound.Cmp(o.UpperBound) >= 0 {
		return ErrBadBounds
	}

	return nil
}
