package bond

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
	"github.com/fall-development-rob/curvemath/newton"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)

	// fallbackGuess is the starting periodic rate for zero-coupon bonds,
	// where the coupon rate offers no hint (2.5%, mid-range for rates).
	fallbackGuess = decimal.New(25, -3)
)

// SolveYTM inverts the bond pricing equation for t's periodic yield and
// derives the annualized views.
//
// Preconditions and validation (in order):
//  1. FaceValue > 0             (ErrNonPositiveFace).
//  2. MarketPrice > 0           (ErrNonPositivePrice).
//  3. YearsToMaturity > 0       (ErrNonPositiveMaturity).
//  4. Frequency >= 1            (ErrBadFrequency).
//  5. Maturity × Frequency must be a whole period count (ErrOffPeriodGrid).
//  6. Final cashflow non-zero   (ErrDegenerateCashflow).
//
// The solve runs newton.Solve on f(r) = PV(r) − MarketPrice with the
// analytic derivative, both accumulated period by period (d ← d·(1+r),
// never one large-exponent power). A relaxed-tolerance convergence is a
// success with a warning in Result.Warnings. Solver failures propagate
// wrapped; match with errors.Is against the newton sentinels.
func SolveYTM(t Terms, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1)–4) Domain validation.
	if t.FaceValue.Sign() <= 0 {
		return Result{}, ErrNonPositiveFace
	}
	if t.MarketPrice.Sign() <= 0 {
		return Result{}, ErrNonPositivePrice
	}
	if t.YearsToMaturity.Sign() <= 0 {
		return Result{}, ErrNonPositiveMaturity
	}
	if t.Frequency < 1 {
		return Result{}, ErrBadFrequency
	}

	// 5) The coupon grid must be whole: N = years × frequency ∈ ℕ.
	periodsDec := t.YearsToMaturity.Mul(decimal.NewFromInt(int64(t.Frequency)))
	if !periodsDec.IsInteger() {
		return Result{}, ErrOffPeriodGrid
	}
	periods := int(periodsDec.IntPart())

	// 6) Final cashflow = face + last coupon must not vanish.
	coupon := t.FaceValue.Mul(t.CouponRate).Div(decimal.NewFromInt(int64(t.Frequency)))
	if t.FaceValue.Add(coupon).IsZero() {
		return Result{}, ErrDegenerateCashflow
	}

	// Price and derivative of the pricing equation at a periodic rate r.
	f := func(r decimal.Decimal) decimal.Decimal {
		pv, _ := priceAndDeriv(r, coupon, t.FaceValue, periods)

		return pv.Sub(t.MarketPrice)
	}
	fPrime := func(r decimal.Decimal) decimal.Decimal {
		_, deriv := priceAndDeriv(r, coupon, t.FaceValue, periods)

		return deriv
	}

	// Starting rate: explicit option, else coupon per period, else 2.5%.
	guess := cfg.InitialGuess
	if guess.IsZero() {
		guess = t.CouponRate.Div(decimal.NewFromInt(int64(t.Frequency)))
		if guess.Sign() <= 0 {
			guess = fallbackGuess
		}
	}

	out, err := newton.Solve(f, fPrime, guess, cfg.solverOptions()...)
	if err != nil {
		return Result{}, fmt.Errorf("bond: ytm solve: %w", err)
	}

	res := Result{
		PeriodicYield: out.Root,
		AnnualYTM:     out.Root.Mul(decimal.NewFromInt(int64(t.Frequency))),
		Iterations:    out.Iterations,
	}
	if out.Relaxed {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("yield met only the relaxed tolerance after %d iterations (residual %s)",
				out.Iterations, out.Residual))
	}

	// Derived annualized views from the periodic rate.
	if res.BondEquivalentYield, err = bondEquivalentYield(out.Root, t.Frequency, cfg.Math); err != nil {
		return Result{}, fmt.Errorf("bond: bond-equivalent yield: %w", err)
	}
	if res.EffectiveAnnualYield, err = effectiveAnnualYield(out.Root, t.Frequency, cfg.Math); err != nil {
		return Result{}, fmt.Errorf("bond: effective annual yield: %w", err)
	}

	return res, nil
}

// priceAndDeriv returns (PV, dPV/dr) at periodic rate r, accumulating the
// discount iteratively: d ← d·(1+r) per period. The solver's bound window
// keeps 1+r ≥ 0.5, so every division is well-defined.
func priceAndDeriv(r, coupon, face decimal.Decimal, periods int) (decimal.Decimal, decimal.Decimal) {
	onePlus := one.Add(r)
	discount := one
	pv := decimal.Zero
	deriv := decimal.Zero

	for k := 1; k <= periods; k++ {
		discount = discount.Mul(onePlus) // (1+r)^k
		cf := coupon
		if k == periods {
			cf = cf.Add(face)
		}
		pv = pv.Add(cf.Div(discount))
		// d/dr cf·(1+r)^(−k) = −k·cf·(1+r)^(−k−1)
		deriv = deriv.Sub(decimal.NewFromInt(int64(k)).Mul(cf).Div(discount.Mul(onePlus)))
	}

	return pv, deriv
}

// bondEquivalentYield converts a periodic rate to the semi-annual-comparable
// convention: 2r for semi-annual coupons, otherwise a fractional power.
func bondEquivalentYield(periodic decimal.Decimal, frequency int, cfg dmath.Config) (decimal.Decimal, error) {
	if frequency == 2 {
		return periodic.Mul(two), nil
	}

	// 2·((1+r)^(freq/2) − 1), fractional exponent when frequency is odd.
	exponent := decimal.NewFromInt(int64(frequency)).Div(two)
	grown, err := dmath.Pow(one.Add(periodic), exponent, cfg)
	if err != nil {
		return decimal.Zero, err
	}

	return grown.Sub(one).Mul(two), nil
}

// effectiveAnnualYield computes (1+r)^frequency − 1 on the exact
// integer-power path.
func effectiveAnnualYield(periodic decimal.Decimal, frequency int, cfg dmath.Config) (decimal.Decimal, error) {
	grown, err := dmath.Pow(one.Add(periodic), decimal.NewFromInt(int64(frequency)), cfg)
	if err != nil {
		return decimal.Zero, err
	}

	return grown.Sub(one), nil
}

// solverOptions translates SolverOptions into newton options, leaving
// zero-valued knobs at the newton defaults.
func (o Options) solverOptions() []newton.Option {
	var out []newton.Option
	if o.Solver.Tolerance.Sign() > 0 {
		out = append(out, newton.WithTolerance(o.Solver.Tolerance))
	}
	if o.Solver.RelaxedTolerance.Sign() > 0 {
		out = append(out, newton.WithRelaxedTolerance(o.Solver.RelaxedTolerance))
	}
	if o.Solver.MaxIterations > 0 {
		out = append(out, newton.WithMaxIterations(o.Solver.MaxIterations))
	}
	if !o.Solver.LowerBound.IsZero() || !o.Solver.UpperBound.IsZero() {
		out = append(out, newton.WithBounds(o.Solver.LowerBound, o.Solver.UpperBound))
	}

	return out
}
