package newton

import "github.com/shopspring/decimal"

// Solve runs Newton–Raphson on f from guess, using the analytic derivative
// fPrime, and returns an explicit Outcome.
//
// Preconditions and validation (in order):
//  1. f and fPrime must be non-nil (ErrNilFunc).
//  2. Options must be coherent (ErrBadTolerance, ErrBadIterations, ErrBadBounds).
//
// Iteration:
//   - The initial guess and every subsequent iterate are clamped into
//     [Options.LowerBound, Options.UpperBound].
//   - |f(x)| < Options.Tolerance → converged.
//   - f'(x) == 0 → ErrZeroDerivative immediately, Outcome carries the
//     offending iterate and residual.
//   - After Options.MaxIterations: one relaxed check
//     |f(x)| < Options.RelaxedTolerance → converged with Relaxed=true;
//     otherwise ErrNoConvergence.
//
// Complexity: O(MaxIterations) evaluations of f and fPrime.
func Solve(f, fPrime Func, guess decimal.Decimal, opts ...Option) (Outcome, error) {
	// 1) Build and validate options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if f == nil || fPrime == nil {
		return Outcome{}, ErrNilFunc
	}
	if err := cfg.validate(); err != nil {
		return Outcome{}, err
	}

	// 2) Clamp the initial guess into the working window.
	x := clamp(guess, cfg.LowerBound, cfg.UpperBound)
	residual := f(x)

	// 3) Newton steps under the strict tolerance.
	var iterations int
	for iterations = 0; iterations < cfg.MaxIterations; iterations++ {
		if residual.Abs().Cmp(cfg.Tolerance) < 0 {
			return Outcome{
				Root:       x,
				Residual:   residual,
				Iterations: iterations,
				Converged:  true,
			}, nil
		}

		deriv := fPrime(x)
		if deriv.IsZero() {
			return Outcome{
				Root:       x,
				Residual:   residual,
				Iterations: iterations,
			}, ErrZeroDerivative
		}

		x = clamp(x.Sub(residual.Div(deriv)), cfg.LowerBound, cfg.UpperBound)
		residual = f(x)
	}

	// 4) Cap exhausted: one relaxed-tolerance check before failing.
	if residual.Abs().Cmp(cfg.RelaxedTolerance) < 0 {
		return Outcome{
			Root:       x,
			Residual:   residual,
			Iterations: iterations,
			Converged:  true,
			Relaxed:    true,
		}, nil
	}

	return Outcome{
		Root:       x,
		Residual:   residual,
		Iterations: iterations,
	}, ErrNoConvergence
}

// clamp restricts v into [lower, upper].
func clamp(v, lower, upper decimal.Decimal) decimal.Decimal {
	if v.Cmp(lower) < 0 {
		return lower
	}
	if v.Cmp(upper) > 0 {
		return upper
	}

	return v
}
