package curve

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

// SpotAt returns the annualized spot rate at tenor t by linear
// interpolation over the bootstrapped knots: flat before the first knot,
// ErrBeyondCurve past the last.
func (c *Curve) SpotAt(t decimal.Decimal) (decimal.Decimal, error) {
	if t.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveMaturity
	}
	if t.Cmp(c.Spots[len(c.Spots)-1].Maturity) > 0 {
		return decimal.Zero, ErrBeyondCurve
	}

	return c.interpolate(t), nil
}

// DiscountAt returns the discount factor (1+spot)^(−t) at tenor t, with
// the spot interpolated as in SpotAt.
func (c *Curve) DiscountAt(t decimal.Decimal) (decimal.Decimal, error) {
	spot, err := c.SpotAt(t)
	if err != nil {
		return decimal.Zero, err
	}

	return discountFromSpot(spot, t, c.math)
}

// ForwardRates derives the annualized forward rate between each pair of
// consecutive bootstrapped tenors from the no-arbitrage compounding
// identity
//
//	(1+f)^(t₂−t₁) = (1+s₂)^t₂ / (1+s₁)^t₁
//
// using fractional powers. The returned tenor of each forward is the end
// of its interval, so the slice has one fewer entry than Spots.
func (c *Curve) ForwardRates() ([]TenorRate, error) {
	forwards := make([]TenorRate, 0, len(c.Spots)-1)

	for i := 1; i < len(c.Spots); i++ {
		prev, next := c.Spots[i-1], c.Spots[i]

		growthPrev, err := compoundGrowth(prev, c.math)
		if err != nil {
			return nil, fmt.Errorf("forward %d: %w", i, err)
		}
		growthNext, err := compoundGrowth(next, c.math)
		if err != nil {
			return nil, fmt.Errorf("forward %d: %w", i, err)
		}

		span := next.Maturity.Sub(prev.Maturity)
		factor, err := dmath.Pow(growthNext.Div(growthPrev), one.Div(span), c.math)
		if err != nil {
			return nil, fmt.Errorf("forward %d: %w", i, err)
		}

		forwards = append(forwards, TenorRate{
			Maturity: next.Maturity,
			Rate:     factor.Sub(one),
		})
	}

	return forwards, nil
}

// compoundGrowth computes (1+rate)^maturity for a knot.
func compoundGrowth(k TenorRate, cfg dmath.Config) (decimal.Decimal, error) {
	return dmath.Pow(one.Add(k.Rate), k.Maturity, cfg)
}
