package dmath

import "github.com/shopspring/decimal"

// Default numeric policy. Each constant is part of the public numeric
// contract: downstream results must be reproducible across versions, so a
// change here is a breaking change even though signatures stay the same.
const (
	// DefaultExpTaylorTerms is the fixed Taylor term count for Exp, one
	// shared value for every call site.
	DefaultExpTaylorTerms = 25

	// DefaultLnSeriesTerms is the odd-power series length for Ln after
	// range reduction into [0.5, 2).
	DefaultLnSeriesTerms = 24

	// DefaultSqrtIterations caps the Newton iteration in Sqrt.
	DefaultSqrtIterations = 25

	// DefaultRootIterations caps the Newton iteration in NthRoot.
	// Must admit convergence for every degree n ≤ 12 on inputs near 1.
	DefaultRootIterations = 40
)

// Default decimal-valued policy, exact string forms.
var (
	// defaultTolerance is the early-exit convergence tolerance (1e-10).
	defaultTolerance = decimal.New(1, -10)

	// defaultExpFloor: Exp(x) for x below this returns exactly 0.
	defaultExpFloor = decimal.NewFromInt(-60)

	// defaultExpCeiling: Exp saturates its argument here instead of
	// overflowing the coefficient.
	defaultExpCeiling = decimal.NewFromInt(60)
)

// Config carries every tunable of the primitive layer. Zero or negative
// fields are replaced by the documented defaults, so Config{} behaves
// identically to DefaultConfig().
//
// Fields:
//   - ExpTaylorTerms — Taylor series length for Exp.
//   - LnSeriesTerms  — odd-power series length for Ln.
//   - SqrtIterations — Newton cap for Sqrt.
//   - RootIterations — Newton cap for NthRoot.
//   - Tolerance      — early-exit convergence tolerance (must be > 0).
//   - ExpFloor       — argument floor below which Exp returns exactly 0.
//   - ExpCeiling     — argument ceiling at which Exp saturates.
type Config struct {
	ExpTaylorTerms int
	LnSeriesTerms  int
	SqrtIterations int
	RootIterations int
	Tolerance      decimal.Decimal
	ExpFloor       decimal.Decimal
	ExpCeiling     decimal.Decimal
}

// DefaultConfig returns the documented default numeric policy.
func DefaultConfig() Config {
	return Config{
		ExpTaylorTerms: DefaultExpTaylorTerms,
		LnSeriesTerms:  DefaultLnSeriesTerms,
		SqrtIterations: DefaultSqrtIterations,
		RootIterations: DefaultRootIterations,
		Tolerance:      defaultTolerance,
		ExpFloor:       defaultExpFloor,
		ExpCeiling:     defaultExpCeiling,
	}
}

// normalized replaces unset (zero or non-positive) fields with defaults.
// Keeps every exported function total over arbitrary Config values.
func (c Config) normalized() Config {
	if c.ExpTaylorTerms <= 0 {
		c.ExpTaylorTerms = DefaultExpTaylorTerms
	}
	if c.LnSeriesTerms <= 0 {
		c.LnSeriesTerms = DefaultLnSeriesTerms
	}
	if c.SqrtIterations <= 0 {
		c.SqrtIterations = DefaultSqrtIterations
	}
	if c.RootIterations <= 0 {
		c.RootIterations = DefaultRootIterations
	}
	if c.Tolerance.Sign() <= 0 {
		c.Tolerance = defaultTolerance
	}
	if c.ExpFloor.IsZero() {
		c.ExpFloor = defaultExpFloor
	}
	if c.ExpCeiling.IsZero() {
		c.ExpCeiling = defaultExpCeiling
	}

	return c
}
