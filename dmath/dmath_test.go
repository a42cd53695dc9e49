package dmath_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fall-development-rob/curvemath/dmath"
)

// dec parses a decimal literal, failing the test on malformed input.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err, "bad decimal literal %q", s)

	return d
}

// assertWithin asserts |got−want| < tol.
func assertWithin(t *testing.T, want, got decimal.Decimal, tol string, msgAndArgs ...interface{}) {
	t.Helper()
	diff := got.Sub(want).Abs()
	assert.True(t, diff.LessThan(decimal.RequireFromString(tol)),
		"want %s, got %s (|diff|=%s, tol=%s) %v", want, got, diff, tol, msgAndArgs)
}

// TestExp_Zero verifies the exact identity Exp(0) == 1.
func TestExp_Zero(t *testing.T) {
	got := dmath.Exp(decimal.Zero, dmath.DefaultConfig())
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "Exp(0) must be exactly 1, got %s", got)
}

// TestExp_KnownValues checks Exp against reference values inside and
// outside the half-angle reduction threshold.
func TestExp_KnownValues(t *testing.T) {
	cfg := dmath.DefaultConfig()

	cases := []struct {
		x, want string
	}{
		{"1", "2.718281828459045"},
		{"-1", "0.367879441171442"},
		{"0.5", "1.648721270700128"},
		{"2", "7.389056098930650"},
		{"5", "148.413159102576603"},   // reduction path (|x| > 2)
		{"-5", "0.006737946999085467"}, // reduction path, negative
	}
	for _, tc := range cases {
		got := dmath.Exp(dec(t, tc.x), cfg)
		assertWithin(t, dec(t, tc.want), got, "0.000000000001", "Exp(%s)", tc.x)
	}
}

// TestExp_FloorAndCeiling verifies the underflow-to-zero floor and the
// saturation ceiling.
func TestExp_FloorAndCeiling(t *testing.T) {
	cfg := dmath.DefaultConfig()

	// Below the floor: exactly zero, not a tiny positive value.
	got := dmath.Exp(dec(t, "-61"), cfg)
	assert.True(t, got.IsZero(), "Exp below floor must be exactly 0, got %s", got)

	// Above the ceiling: saturates at Exp(ceiling) instead of growing.
	atCeiling := dmath.Exp(dec(t, "60"), cfg)
	beyond := dmath.Exp(dec(t, "100"), cfg)
	assert.True(t, beyond.Equal(atCeiling), "Exp beyond ceiling must saturate: %s vs %s", beyond, atCeiling)
}

// TestLn_One verifies the exact identity Ln(1) == 0.
func TestLn_One(t *testing.T) {
	got, err := dmath.Ln(decimal.NewFromInt(1), dmath.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "Ln(1) must be exactly 0, got %s", got)
}

// TestLn_Domain verifies that non-positive arguments return ErrLnDomain.
func TestLn_Domain(t *testing.T) {
	cfg := dmath.DefaultConfig()

	_, err := dmath.Ln(decimal.Zero, cfg)
	assert.ErrorIs(t, err, dmath.ErrLnDomain, "Ln(0) must error")

	_, err = dmath.Ln(dec(t, "-3"), cfg)
	assert.ErrorIs(t, err, dmath.ErrLnDomain, "Ln(-3) must error")
}

// TestLn_KnownValues checks Ln against reference values across the
// range-reduction regimes (v doubled, untouched, halved).
func TestLn_KnownValues(t *testing.T) {
	cfg := dmath.DefaultConfig()

	cases := []struct {
		x, want string
	}{
		{"2", "0.693147180559945"},
		{"0.5", "-0.693147180559945"},
		{"10", "2.302585092994046"},
		{"0.0001", "-9.210340371976184"},
		{"1.05", "0.048790164169432"},
		{"148.4131591025766", "5"},
	}
	for _, tc := range cases {
		got, err := dmath.Ln(dec(t, tc.x), cfg)
		require.NoError(t, err, "Ln(%s)", tc.x)
		assertWithin(t, dec(t, tc.want), got, "0.000000000001", "Ln(%s)", tc.x)
	}
}

// TestLnExp_RoundTrip verifies Ln(Exp(x)) ≈ x and Exp(Ln(x)) ≈ x within
// kernel tolerance across the working domain.
func TestLnExp_RoundTrip(t *testing.T) {
	cfg := dmath.DefaultConfig()

	for _, s := range []string{"-10", "-1", "-0.05", "0.03", "1", "2.5", "7", "15"} {
		x := dec(t, s)
		back, err := dmath.Ln(dmath.Exp(x, cfg), cfg)
		require.NoError(t, err, "Ln(Exp(%s))", s)
		assertWithin(t, x, back, "0.0000000001", "Ln(Exp(%s))", s)
	}

	for _, s := range []string{"0.001", "0.5", "1", "1.0001", "42", "1000"} {
		x := dec(t, s)
		lnX, err := dmath.Ln(x, cfg)
		require.NoError(t, err, "Ln(%s)", s)
		back := dmath.Exp(lnX, cfg)
		// Relative tolerance: scale by x for large magnitudes.
		tol := decimal.RequireFromString("0.0000000001").Mul(decimal.NewFromInt(1).Add(x.Abs()))
		diff := back.Sub(x).Abs()
		assert.True(t, diff.LessThan(tol), "Exp(Ln(%s)): got %s", s, back)
	}
}

// TestSqrt_NonPositive verifies the documented convention that Sqrt of a
// non-positive value is 0, not an error.
func TestSqrt_NonPositive(t *testing.T) {
	cfg := dmath.DefaultConfig()

	assert.True(t, dmath.Sqrt(decimal.Zero, cfg).IsZero(), "Sqrt(0) must be 0")
	assert.True(t, dmath.Sqrt(dec(t, "-4"), cfg).IsZero(), "Sqrt(-4) must be 0")
}

// TestSqrt_KnownValues checks Sqrt against perfect squares and reference
// irrational values.
func TestSqrt_KnownValues(t *testing.T) {
	cfg := dmath.DefaultConfig()

	cases := []struct {
		x, want string
	}{
		{"4", "2"},
		{"9", "3"},
		{"2", "1.414213562373095"},
		{"0.25", "0.5"},
		{"1000000", "1000"},
		{"0.0001", "0.01"},
	}
	for _, tc := range cases {
		got := dmath.Sqrt(dec(t, tc.x), cfg)
		assertWithin(t, dec(t, tc.want), got, "0.0000000001", "Sqrt(%s)", tc.x)
	}
}

// TestNthRoot_DegreeAndDomain verifies degree/domain validation sentinels.
func TestNthRoot_DegreeAndDomain(t *testing.T) {
	cfg := dmath.DefaultConfig()

	_, err := dmath.NthRoot(dec(t, "8"), 0, cfg)
	assert.ErrorIs(t, err, dmath.ErrRootDegree, "degree 0 must error")

	_, err = dmath.NthRoot(dec(t, "-8"), 3, cfg)
	assert.ErrorIs(t, err, dmath.ErrRootDomain, "negative radicand must error")
}

// TestNthRoot_Identities verifies NthRoot(x,1) == x and NthRoot(0,n) == 0.
func TestNthRoot_Identities(t *testing.T) {
	cfg := dmath.DefaultConfig()

	x := dec(t, "0.97")
	got, err := dmath.NthRoot(x, 1, cfg)
	require.NoError(t, err)
	assert.True(t, got.Equal(x), "NthRoot(x,1) must be x")

	got, err = dmath.NthRoot(decimal.Zero, 5, cfg)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "NthRoot(0,n) must be 0")
}

// TestNthRoot_PowerRoundTrip verifies NthRoot(x,n)ⁿ ≈ x within 1e-6 for
// every degree n ∈ [2,12] on (0,1) inputs — the kernel's working range
// (discount factors and 1−smallRate values).
func TestNthRoot_PowerRoundTrip(t *testing.T) {
	cfg := dmath.DefaultConfig()

	for _, s := range []string{"0.05", "0.5", "0.9", "0.97", "0.999"} {
		x := dec(t, s)
		for n := 2; n <= 12; n++ {
			root, err := dmath.NthRoot(x, n, cfg)
			require.NoError(t, err, "NthRoot(%s,%d)", s, n)

			back, err := dmath.Pow(root, decimal.NewFromInt(int64(n)), cfg)
			require.NoError(t, err)
			assertWithin(t, x, back, "0.000001", "NthRoot(%s,%d)^%d", s, n, n)
		}
	}
}

// TestPow_ZeroExponent verifies Pow(base,0) == 1 for any sign of base,
// including zero.
func TestPow_ZeroExponent(t *testing.T) {
	cfg := dmath.DefaultConfig()

	for _, s := range []string{"7", "-7", "0", "0.001", "-123456.789"} {
		got, err := dmath.Pow(dec(t, s), decimal.Zero, cfg)
		require.NoError(t, err, "Pow(%s,0)", s)
		assert.True(t, got.Equal(decimal.NewFromInt(1)), "Pow(%s,0) must be exactly 1, got %s", s, got)
	}
}

// TestPow_UnitBase verifies Pow(1,e) == 1 for any exponent.
func TestPow_UnitBase(t *testing.T) {
	cfg := dmath.DefaultConfig()

	for _, s := range []string{"5", "-5", "0.5", "-0.5", "12.75"} {
		got, err := dmath.Pow(decimal.NewFromInt(1), dec(t, s), cfg)
		require.NoError(t, err, "Pow(1,%s)", s)
		assertWithin(t, decimal.NewFromInt(1), got, "0.0000000001", "Pow(1,%s)", s)
	}
}

// TestPow_IntegerExponents checks the exact squaring path, including
// negative bases and negative exponents.
func TestPow_IntegerExponents(t *testing.T) {
	cfg := dmath.DefaultConfig()

	cases := []struct {
		base, exp, want string
	}{
		{"2", "10", "1024"},
		{"-2", "3", "-8"},
		{"-2", "4", "16"},
		{"1.05", "2", "1.1025"},
		{"2", "-2", "0.25"},
		{"10", "-3", "0.001"},
	}
	for _, tc := range cases {
		got, err := dmath.Pow(dec(t, tc.base), dec(t, tc.exp), cfg)
		require.NoError(t, err, "Pow(%s,%s)", tc.base, tc.exp)
		assertWithin(t, dec(t, tc.want), got, "0.0000000001", "Pow(%s,%s)", tc.base, tc.exp)
	}
}

// TestPow_FractionalExponents checks the Exp∘Ln path used by forward rates
// and bond-equivalent yields.
func TestPow_FractionalExponents(t *testing.T) {
	cfg := dmath.DefaultConfig()

	cases := []struct {
		base, exp, want string
	}{
		{"4", "0.5", "2"},
		{"1.0609", "0.5", "1.03"},
		{"27", "0.333333333333333333", "3"},
		{"1.03", "2.5", "1.0766959061"},
	}
	for _, tc := range cases {
		got, err := dmath.Pow(dec(t, tc.base), dec(t, tc.exp), cfg)
		require.NoError(t, err, "Pow(%s,%s)", tc.base, tc.exp)
		assertWithin(t, dec(t, tc.want), got, "0.00000001", "Pow(%s,%s)", tc.base, tc.exp)
	}
}

// TestPow_DomainErrors verifies the domain sentinels for degenerate bases.
func TestPow_DomainErrors(t *testing.T) {
	cfg := dmath.DefaultConfig()

	_, err := dmath.Pow(dec(t, "-2"), dec(t, "0.5"), cfg)
	assert.ErrorIs(t, err, dmath.ErrPowDomain, "negative base with real exponent must error")

	_, err = dmath.Pow(decimal.Zero, dec(t, "0.5"), cfg)
	assert.ErrorIs(t, err, dmath.ErrPowDomain, "zero base with real exponent must error")

	_, err = dmath.Pow(decimal.Zero, dec(t, "-1"), cfg)
	assert.ErrorIs(t, err, dmath.ErrPowZeroBase, "zero base with negative exponent must error")
}

// TestConfig_ZeroValueBehavesAsDefault verifies that the zero Config is
// normalized to the documented defaults instead of looping zero times.
func TestConfig_ZeroValueBehavesAsDefault(t *testing.T) {
	x := dec(t, "1")
	withDefault := dmath.Exp(x, dmath.DefaultConfig())
	withZero := dmath.Exp(x, dmath.Config{})
	assert.True(t, withDefault.Equal(withZero), "zero Config must match DefaultConfig")
}
