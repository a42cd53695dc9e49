package curve_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/dmath"
)

// d parses a decimal literal for test fixtures.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// par builds a ParInstrument from string literals.
func par(maturity, rate string) curve.ParInstrument {
	return curve.ParInstrument{Maturity: d(maturity), ParRate: d(rate)}
}

// TestBootstrap_Validation verifies the input-discipline sentinels.
func TestBootstrap_Validation(t *testing.T) {
	cases := []struct {
		name string
		in   []curve.ParInstrument
		want error
	}{
		{"too few", []curve.ParInstrument{par("1", "0.03")}, curve.ErrInsufficientData},
		{"unsorted", []curve.ParInstrument{par("2", "0.035"), par("1", "0.03")}, curve.ErrUnsortedInput},
		{"duplicate", []curve.ParInstrument{par("1", "0.03"), par("1", "0.035")}, curve.ErrDuplicateMaturity},
		{"non-positive maturity", []curve.ParInstrument{par("0", "0.03"), par("1", "0.035")}, curve.ErrNonPositiveMaturity},
		{"off coupon grid", []curve.ParInstrument{par("0.75", "0.03"), par("2", "0.035")}, curve.ErrOffCouponGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := curve.Bootstrap(tc.in)
			assert.ErrorIs(t, err, tc.want, "input must be rejected, never reordered")
		})
	}

	_, err := curve.Bootstrap([]curve.ParInstrument{par("1", "0.03"), par("2", "0.035")}, curve.WithFrequency(0))
	assert.ErrorIs(t, err, curve.ErrBadFrequency)
}

// TestBootstrap_TwoInstrument reproduces the reference case: par rates
// 3%@1y and 3.5%@2y, semi-annual. The 1y spot must equal its par rate
// exactly; the 2y spot sits slightly above 3.5%.
func TestBootstrap_TwoInstrument(t *testing.T) {
	c, err := curve.Bootstrap([]curve.ParInstrument{par("1", "0.03"), par("2", "0.035")})
	require.NoError(t, err)
	require.Len(t, c.Spots, 2)

	assert.True(t, c.Spots[0].Rate.Equal(d("0.03")),
		"first spot must equal its par rate exactly, got %s", c.Spots[0].Rate)

	spot2 := c.Spots[1].Rate
	assert.True(t, spot2.GreaterThan(d("0.035")), "2y spot %s must exceed its par rate", spot2)
	assert.True(t, spot2.LessThan(d("0.0356")), "2y spot %s implausibly high", spot2)
}

// TestBootstrap_FlatCurve verifies the self-consistency fixpoint: a flat
// par curve bootstraps to the same flat spot curve.
func TestBootstrap_FlatCurve(t *testing.T) {
	c, err := curve.Bootstrap([]curve.ParInstrument{
		par("1", "0.05"), par("2", "0.05"), par("3", "0.05"),
	}, curve.WithFrequency(1))
	require.NoError(t, err)

	for i, s := range c.Spots {
		diff := s.Rate.Sub(d("0.05")).Abs()
		assert.True(t, diff.LessThan(d("0.0000001")),
			"flat par curve must stay flat: spot[%d] = %s", i, s.Rate)
	}
}

// TestBootstrap_DiscountFactorsDecreasing verifies that an ascending
// positive par curve yields strictly decreasing discount factors in (0,1).
func TestBootstrap_DiscountFactorsDecreasing(t *testing.T) {
	c, err := curve.Bootstrap([]curve.ParInstrument{
		par("1", "0.02"), par("2", "0.025"), par("3", "0.03"),
	})
	require.NoError(t, err)
	require.Len(t, c.Discounts, 3)

	prev := decimal.NewFromInt(1)
	for i, df := range c.Discounts {
		assert.True(t, df.Factor.Sign() > 0, "DF[%d]=%s must be positive", i, df.Factor)
		assert.True(t, df.Factor.LessThan(prev),
			"DF[%d]=%s must be strictly below its predecessor %s", i, df.Factor, prev)
		prev = df.Factor
	}
}

// TestBootstrap_ImpossibleDiscount verifies that a coupon stream large
// enough to exhaust par value is rejected as economically impossible.
func TestBootstrap_ImpossibleDiscount(t *testing.T) {
	_, err := curve.Bootstrap([]curve.ParInstrument{par("1", "0.03"), par("3", "4.0")})
	assert.ErrorIs(t, err, curve.ErrImpossibleDiscount)
}

// TestCurve_SpotAt verifies linear interpolation between knots and the
// boundary behavior on both sides.
func TestCurve_SpotAt(t *testing.T) {
	c, err := curve.Bootstrap([]curve.ParInstrument{
		par("1", "0.02"), par("3", "0.04"),
	}, curve.WithFrequency(1))
	require.NoError(t, err)

	// Before the first knot: flat.
	got, err := c.SpotAt(d("0.5"))
	require.NoError(t, err)
	assert.True(t, got.Equal(c.Spots[0].Rate), "pre-knot tenor must use the first spot")

	// Midpoint: average of the knot rates.
	got, err = c.SpotAt(d("2"))
	require.NoError(t, err)
	mid := c.Spots[0].Rate.Add(c.Spots[1].Rate).Div(decimal.NewFromInt(2))
	diff := got.Sub(mid).Abs()
	assert.True(t, diff.LessThan(d("0.0000000001")), "midpoint spot %s vs expected %s", got, mid)

	// Past the last knot: explicit error.
	_, err = c.SpotAt(d("4"))
	assert.ErrorIs(t, err, curve.ErrBeyondCurve)

	// Non-positive tenor.
	_, err = c.SpotAt(decimal.Zero)
	assert.ErrorIs(t, err, curve.ErrNonPositiveMaturity)
}

// TestCurve_DiscountAt verifies DF(t) = (1+spot)^(−t) at a knot tenor.
func TestCurve_DiscountAt(t *testing.T) {
	c, err := curve.Bootstrap([]curve.ParInstrument{par("1", "0.03"), par("2", "0.035")})
	require.NoError(t, err)

	df, err := c.DiscountAt(d("1"))
	require.NoError(t, err)
	// 1/1.03 = 0.970873786...
	diff := df.Sub(d("0.9708737864077670")).Abs()
	assert.True(t, diff.LessThan(d("0.0000000001")), "DF(1y) = %s", df)
}

// TestCurve_ForwardIdentity verifies each forward against the
// no-arbitrage identity (1+f)^(t₂−t₁) = (1+s₂)^t₂/(1+s₁)^t₁, recomputing
// both sides independently of the engine under test.
func TestCurve_ForwardIdentity(t *testing.T) {
	c, err := curve.Bootstrap([]curve.ParInstrument{
		par("1", "0.02"), par("2", "0.025"), par("3", "0.03"),
	})
	require.NoError(t, err)

	forwards, err := c.ForwardRates()
	require.NoError(t, err)
	require.Len(t, forwards, 2)

	cfg := dmath.DefaultConfig()
	oneD := decimal.NewFromInt(1)
	for i, f := range forwards {
		s1, s2 := c.Spots[i], c.Spots[i+1]
		span := s2.Maturity.Sub(s1.Maturity)

		lhs, perr := dmath.Pow(oneD.Add(f.Rate), span, cfg)
		require.NoError(t, perr)

		g2, perr := dmath.Pow(oneD.Add(s2.Rate), s2.Maturity, cfg)
		require.NoError(t, perr)
		g1, perr := dmath.Pow(oneD.Add(s1.Rate), s1.Maturity, cfg)
		require.NoError(t, perr)

		diff := lhs.Sub(g2.Div(g1)).Abs()
		assert.True(t, diff.LessThan(d("0.00000001")),
			"forward %d violates the compounding identity by %s", i, diff)
	}

	// Ascending spots imply forwards above the earlier spot.
	assert.True(t, forwards[0].Rate.GreaterThan(c.Spots[0].Rate),
		"rising curve must imply forward %s above spot %s", forwards[0].Rate, c.Spots[0].Rate)
}
