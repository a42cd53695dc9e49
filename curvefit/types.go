package curvefit

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/dmath"
)

// Sentinel errors returned by the fitting engines.
var (
	// ErrInsufficientData indicates fewer observations than model betas.
	ErrInsufficientData = errors.New("curvefit: not enough observations for the model")

	// ErrNonPositiveMaturity indicates an observed tenor <= 0.
	ErrNonPositiveMaturity = errors.New("curvefit: observed maturity must be positive")

	// ErrBadLambda indicates a non-positive decay candidate.
	ErrBadLambda = errors.New("curvefit: decay candidates must be positive")

	// ErrNoViableLambda indicates every candidate produced a singular
	// normal system.
	ErrNoViableLambda = errors.New("curvefit: no decay candidate produced a solvable system")
)

// NelsonSiegelParams are the fitted Nelson–Siegel parameters:
//
//	r(t) = β0 + β1·L1(t/λ) + β2·L2(t/λ)
//
// with L1(x) = (1−e⁻ˣ)/x and L2(x) = L1(x) − e⁻ˣ. Immutable once
// returned; fits never share state.
type NelsonSiegelParams struct {
	Beta0, Beta1, Beta2 decimal.Decimal
	Lambda              decimal.Decimal
}

// SvenssonParams extend Nelson–Siegel with a second hump term:
//
//	r(t) = β0 + β1·L1(t/λ1) + β2·L2(t/λ1) + β3·L2(t/λ2)
type SvenssonParams struct {
	Beta0, Beta1, Beta2, Beta3 decimal.Decimal
	Lambda1, Lambda2           decimal.Decimal
}

// Diagnostics reports fit quality, recomputed for the returned
// parameters whenever they change.
//
// RSquared is 1 − SSE/TSS; when the observed rates have no variance
// (TSS ≈ 0) it is defined as 1 for a matching fit and 0 otherwise.
type Diagnostics struct {
	// Fitted holds the model rate at every observed tenor.
	Fitted []curve.TenorRate
	// Residuals holds observed − fitted, index-aligned with Fitted.
	Residuals []decimal.Decimal
	// RMSE is √(SSE/n).
	RMSE decimal.Decimal
	// RSquared is the coefficient of determination.
	RSquared decimal.Decimal
}

// NelsonSiegelResult is a fit outcome: parameters plus diagnostics plus
// non-fatal quality warnings.
type NelsonSiegelResult struct {
	Params      NelsonSiegelParams
	Diagnostics Diagnostics
	Warnings    []string
}

// SvenssonResult is the Svensson analogue of NelsonSiegelResult.
type SvenssonResult struct {
	Params      SvenssonParams
	Diagnostics Diagnostics
	Warnings    []string
}

// Options configures a fit.
//
// Lambdas      – decay-candidate grid, all positive.
// RefineDeltas – percentage deltas applied around the best candidate
// (0.05 = ±5%), in scan order.
// PoorFitRMSE  – RMSE above this adds a poor-fit warning.
// Math         – primitive-layer numeric policy.
type Options struct {
	Lambdas      []decimal.Decimal
	RefineDeltas []decimal.Decimal
	PoorFitRMSE  decimal.Decimal
	Math         dmath.Config
}

// Option is a functional option for configuring a fit.
type Option func(*Options)

// WithLambdas sets the decay-candidate grid.
func WithLambdas(lambdas ...decimal.Decimal) Option {
	return func(o *Options) { o.Lambdas = lambdas }
}

// WithRefineDeltas sets the local refinement percentages.
func WithRefineDeltas(deltas ...decimal.Decimal) Option {
	return func(o *Options) { o.RefineDeltas = deltas }
}

// WithPoorFitRMSE sets the warning threshold on RMSE.
func WithPoorFitRMSE(threshold decimal.Decimal) Option {
	return func(o *Options) { o.PoorFitRMSE = threshold }
}

// WithMathConfig sets the primitive-layer numeric policy.
func WithMathConfig(cfg dmath.Config) Option {
	return func(o *Options) { o.Math = cfg }
}

// DefaultOptions returns the documented fit policy.
//
// Defaults:
//   - Lambdas:      0.25, 0.5, 1, 1.5, 2, 3, 5, 10 (years of decay)
//   - RefineDeltas: ±10%, ±5%, ±2%, ±1%
//   - PoorFitRMSE:  0.005 (50bp)
//   - Math:         dmath.DefaultConfig()
func DefaultOptions() Options {
	return Options{
		Lambdas: []decimal.Decimal{
			decimal.New(25, -2), decimal.New(5, -1), decimal.NewFromInt(1),
			decimal.New(15, -1), decimal.NewFromInt(2), decimal.NewFromInt(3),
			decimal.NewFromInt(5), decimal.NewFromInt(10),
		},
		RefineDeltas: []decimal.Decimal{
			decimal.New(1, -1), decimal.New(5, -2), decimal.New(2, -2), decimal.New(1, -2),
		},
		PoorFitRMSE: decimal.New(5, -3),
		Math:        dmath.DefaultConfig(),
	}
}
