package curve

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

// Sentinel errors returned by the bootstrap and curve lookups.
var (
	// ErrInsufficientData indicates fewer instruments than the bootstrap
	// requires (two).
	ErrInsufficientData = errors.New("curve: at least two par instruments required")

	// ErrUnsortedInput indicates maturities out of ascending order. Input
	// is never silently sorted.
	ErrUnsortedInput = errors.New("curve: par instruments must be in ascending maturity order")

	// ErrDuplicateMaturity indicates two instruments at the same tenor.
	ErrDuplicateMaturity = errors.New("curve: duplicate instrument maturity")

	// ErrNonPositiveMaturity indicates a tenor <= 0.
	ErrNonPositiveMaturity = errors.New("curve: maturity must be positive")

	// ErrBadFrequency indicates a coupon frequency < 1.
	ErrBadFrequency = errors.New("curve: coupon frequency must be >= 1")

	// ErrOffCouponGrid indicates an instrument maturity that is not a
	// whole number of coupon periods.
	ErrOffCouponGrid = errors.New("curve: maturity must land on the coupon grid")

	// ErrImpossibleDiscount indicates the par equation produced a
	// non-positive terminal discount factor — a mathematically valid but
	// economically impossible input (e.g. absurdly high coupons).
	ErrImpossibleDiscount = errors.New("curve: non-positive terminal discount factor")

	// ErrBeyondCurve indicates an interpolation tenor past the last
	// bootstrapped knot.
	ErrBeyondCurve = errors.New("curve: tenor beyond the last bootstrapped maturity")
)

// TenorRate is a (maturity years, annualized rate) pair, used both for
// par/observed inputs and spot/forward outputs.
type TenorRate struct {
	Maturity decimal.Decimal
	Rate     decimal.Decimal
}

// DiscountFactor is the present value of one currency unit at Maturity.
// Factors are strictly decreasing with maturity under positive rates;
// that property is checked by tests, not enforced at construction, since
// inverted curves are legitimate inputs.
type DiscountFactor struct {
	Maturity decimal.Decimal
	Factor   decimal.Decimal
}

// ParInstrument is a par-coupon input to the bootstrap: a bond paying
// ParRate (annual, as a decimal) with the configured frequency, priced at
// par, maturing at Maturity years.
type ParInstrument struct {
	Maturity decimal.Decimal
	ParRate  decimal.Decimal
}

// Curve is a bootstrapped spot curve. Immutable once returned; every
// method is safe for concurrent use.
type Curve struct {
	// Spots holds the annualized spot rate per input tenor, ascending.
	Spots []TenorRate
	// Discounts holds the terminal discount factor per input tenor.
	Discounts []DiscountFactor
	// Frequency is the coupon frequency the curve was bootstrapped with.
	Frequency int

	math dmath.Config
}

// Options configures the bootstrap.
//
// Frequency – coupons per year of the par instruments (default 2).
// Math      – primitive-layer numeric policy.
type Options struct {
	Frequency int
	Math      dmath.Config
}

// Option is a functional option for configuring Bootstrap.
type Option func(*Options)

// WithFrequency sets the par instruments' coupon frequency.
func WithFrequency(freq int) Option {
	return func(o *Options) { o.Frequency = freq }
}

// WithMathConfig sets the primitive-layer numeric policy.
func WithMathConfig(cfg dmath.Config) Option {
	return func(o *Options) { o.Math = cfg }
}

// DefaultOptions returns the documented defaults: semi-annual coupons,
// dmath.DefaultConfig().
func DefaultOptions() Options {
	return Options{
		Frequency: 2,
		Math:      dmath.DefaultConfig(),
	}
}
