package bond

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

// Sentinel errors returned by SolveYTM input validation.
var (
	// ErrNonPositiveFace indicates FaceValue <= 0.
	ErrNonPositiveFace = errors.New("bond: face value must be positive")

	// ErrNonPositivePrice indicates MarketPrice <= 0.
	ErrNonPositivePrice = errors.New("bond: market price must be positive")

	// ErrNonPositiveMaturity indicates YearsToMaturity <= 0.
	ErrNonPositiveMaturity = errors.New("bond: years to maturity must be positive")

	// ErrBadFrequency indicates Frequency < 1.
	ErrBadFrequency = errors.New("bond: coupon frequency must be >= 1")

	// ErrOffPeriodGrid indicates YearsToMaturity × Frequency is not a
	// whole number of coupon periods.
	ErrOffPeriodGrid = errors.New("bond: maturity must land on the coupon grid")

	// ErrDegenerateCashflow indicates a zero final cashflow; the pricing
	// equation degenerates and has no finite yield.
	ErrDegenerateCashflow = errors.New("bond: zero final cashflow")
)

// Terms describes a fixed-coupon bullet bond.
type Terms struct {
	// FaceValue is the redemption amount paid at maturity.
	FaceValue decimal.Decimal
	// CouponRate is the annual coupon rate as a decimal (0.05 = 5%).
	CouponRate decimal.Decimal
	// MarketPrice is the observed dirty price the yield must reproduce.
	MarketPrice decimal.Decimal
	// YearsToMaturity is the remaining life in years. Together with
	// Frequency it must produce a whole number of coupon periods.
	YearsToMaturity decimal.Decimal
	// Frequency is the number of coupons per year (1 = annual, 2 = semi-annual).
	Frequency int
}

// Result is the output of SolveYTM. All rates are per-unit decimals.
type Result struct {
	// PeriodicYield is the per-period discount rate solving the pricing equation.
	PeriodicYield decimal.Decimal
	// AnnualYTM is the nominal annual yield: PeriodicYield × Frequency.
	AnnualYTM decimal.Decimal
	// BondEquivalentYield is the semi-annual-comparable yield:
	// 2 × PeriodicYield when Frequency == 2, otherwise
	// 2·((1+r)^(Frequency/2) − 1) via fractional power.
	BondEquivalentYield decimal.Decimal
	// EffectiveAnnualYield is (1+r)^Frequency − 1.
	EffectiveAnnualYield decimal.Decimal
	// Iterations is the number of Newton steps taken.
	Iterations int
	// Warnings carries non-fatal quality notes, e.g. relaxed-tolerance
	// convergence. Empty on a clean solve.
	Warnings []string
}

// Options configures the YTM solve.
//
// Math         – primitive-layer numeric policy.
// Solver       – Newton policy (tolerances, cap, rate bounds).
// InitialGuess – starting periodic rate; zero means "derive from terms"
// (coupon rate per period, falling back to 2.5% for zero-coupon bonds).
type Options struct {
	Math         dmath.Config
	Solver       SolverOptions
	InitialGuess decimal.Decimal
}

// SolverOptions mirrors the newton policy knobs exposed to YTM callers.
// Zero-valued fields fall back to the package defaults.
type SolverOptions struct {
	Tolerance        decimal.Decimal
	RelaxedTolerance decimal.Decimal
	MaxIterations    int
	LowerBound       decimal.Decimal
	UpperBound       decimal.Decimal
}

// Option is a functional option for configuring SolveYTM.
type Option func(*Options)

// WithMathConfig sets the primitive-layer numeric policy.
func WithMathConfig(cfg dmath.Config) Option {
	return func(o *Options) { o.Math = cfg }
}

// WithSolverOptions sets the Newton policy for the yield solve.
func WithSolverOptions(s SolverOptions) Option {
	return func(o *Options) { o.Solver = s }
}

// WithInitialGuess sets the starting periodic rate.
func WithInitialGuess(guess decimal.Decimal) Option {
	return func(o *Options) { o.InitialGuess = guess }
}

// DefaultOptions returns the documented default YTM policy.
//
// Defaults:
//   - Math:   dmath.DefaultConfig()
//   - Solver: tolerance 1e-10, relaxed 1e-2, 50 iterations, bounds [-0.5, 2.0]
//   - InitialGuess: derived from terms (see Options).
func DefaultOptions() Options {
	return Options{
		Math: dmath.DefaultConfig(),
		Solver: SolverOptions{
			Tolerance:        decimal.New(1, -10),
			RelaxedTolerance: decimal.New(1, -2),
			MaxIterations:    50,
			LowerBound:       decimal.New(-5, -1),
			UpperBound:       decimal.NewFromInt(2),
		},
	}
}
