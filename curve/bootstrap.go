package curve

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

var one = decimal.NewFromInt(1)

// Bootstrap builds a spot curve from par instruments in strictly
// ascending maturity order.
//
// Algorithm outline:
//  1. Validate: two or more instruments, positive strictly ascending
//     maturities on the coupon grid (order violations error, never sort).
//  2. First instrument: spot = par rate exactly; terminal discount factor
//     (1+spot)^(−maturity).
//  3. Each later instrument: isolate its terminal discount factor from
//     the par equation 1 = c·Σ DFᵢ + (1+c)·DFₙ, with intermediate DFᵢ
//     from linearly interpolated already-bootstrapped spots (flat beyond
//     the last knot). A non-positive DFₙ is ErrImpossibleDiscount.
//  4. Convert DFₙ to an annualized spot: nth root (with its own Newton
//     refinement) for integral maturities, fractional power otherwise.
//
// The whole pass fails fast on the first invalid or impossible
// instrument, since every later step depends on the earlier spots.
//
// Complexity: O(Σ periods) primitive evaluations.
func Bootstrap(instruments []ParInstrument, opts ...Option) (*Curve, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Input discipline.
	if cfg.Frequency < 1 {
		return nil, ErrBadFrequency
	}
	if len(instruments) < 2 {
		return nil, ErrInsufficientData
	}
	freq := decimal.NewFromInt(int64(cfg.Frequency))
	for i, inst := range instruments {
		if inst.Maturity.Sign() <= 0 {
			return nil, fmt.Errorf("instrument %d: %w", i, ErrNonPositiveMaturity)
		}
		if !inst.Maturity.Mul(freq).IsInteger() {
			return nil, fmt.Errorf("instrument %d: %w", i, ErrOffCouponGrid)
		}
		if i == 0 {
			continue
		}
		switch inst.Maturity.Cmp(instruments[i-1].Maturity) {
		case 0:
			return nil, fmt.Errorf("instrument %d: %w", i, ErrDuplicateMaturity)
		case -1:
			return nil, fmt.Errorf("instrument %d: %w", i, ErrUnsortedInput)
		}
	}

	c := &Curve{Frequency: cfg.Frequency, math: cfg.Math}

	// 2) First knot: spot equals the par rate by construction.
	first := instruments[0]
	df, err := discountFromSpot(first.ParRate, first.Maturity, cfg.Math)
	if err != nil {
		return nil, fmt.Errorf("instrument 0: %w", err)
	}
	c.Spots = append(c.Spots, TenorRate{Maturity: first.Maturity, Rate: first.ParRate})
	c.Discounts = append(c.Discounts, DiscountFactor{Maturity: first.Maturity, Factor: df})

	// 3) Bootstrap the remaining tenors in order.
	for i := 1; i < len(instruments); i++ {
		inst := instruments[i]
		coupon := inst.ParRate.Div(freq)

		// Coupon dates before maturity: t_k = k/frequency.
		periods := int(inst.Maturity.Mul(freq).IntPart())
		sum := decimal.Zero
		for k := 1; k < periods; k++ {
			tk := decimal.NewFromInt(int64(k)).Div(freq)
			dfk, derr := discountFromSpot(c.interpolate(tk), tk, cfg.Math)
			if derr != nil {
				return nil, fmt.Errorf("instrument %d: %w", i, derr)
			}
			sum = sum.Add(dfk)
		}

		// Terminal factor from the par equation.
		terminal := one.Sub(coupon.Mul(sum)).Div(one.Add(coupon))
		if terminal.Sign() <= 0 {
			return nil, fmt.Errorf("instrument %d: %w", i, ErrImpossibleDiscount)
		}

		// 4) Annualized spot from the terminal factor.
		spot, serr := spotFromDiscount(terminal, inst.Maturity, cfg.Math)
		if serr != nil {
			return nil, fmt.Errorf("instrument %d: %w", i, serr)
		}

		c.Spots = append(c.Spots, TenorRate{Maturity: inst.Maturity, Rate: spot})
		c.Discounts = append(c.Discounts, DiscountFactor{Maturity: inst.Maturity, Factor: terminal})
	}

	return c, nil
}

// discountFromSpot computes (1+spot)^(−t).
func discountFromSpot(spot, t decimal.Decimal, cfg dmath.Config) (decimal.Decimal, error) {
	return dmath.Pow(one.Add(spot), t.Neg(), cfg)
}

// spotFromDiscount inverts (1+s)^t = 1/DF. Integral maturities use the
// nth root (Newton-refined); fractional maturities use Pow.
func spotFromDiscount(df, t decimal.Decimal, cfg dmath.Config) (decimal.Decimal, error) {
	growth := one.Div(df) // (1+s)^t

	if t.IsInteger() {
		factor, err := dmath.NthRoot(growth, int(t.IntPart()), cfg)
		if err != nil {
			return decimal.Zero, err
		}

		return factor.Sub(one), nil
	}

	factor, err := dmath.Pow(growth, one.Div(t), cfg)
	if err != nil {
		return decimal.Zero, err
	}

	return factor.Sub(one), nil
}

// interpolate returns the spot at tenor t over the knots bootstrapped so
// far: flat before the first knot and beyond the last, linear in between.
// Only called with t below the maturity currently being solved.
func (c *Curve) interpolate(t decimal.Decimal) decimal.Decimal {
	knots := c.Spots
	if t.Cmp(knots[0].Maturity) <= 0 {
		return knots[0].Rate
	}
	last := knots[len(knots)-1]
	if t.Cmp(last.Maturity) >= 0 {
		return last.Rate
	}

	for i := 1; i < len(knots); i++ {
		if t.Cmp(knots[i].Maturity) > 0 {
			continue
		}
		lo, hi := knots[i-1], knots[i]
		span := hi.Maturity.Sub(lo.Maturity)
		weight := t.Sub(lo.Maturity).Div(span)

		return lo.Rate.Add(hi.Rate.Sub(lo.Rate).Mul(weight))
	}

	return last.Rate
}
