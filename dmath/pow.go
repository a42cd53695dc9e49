package dmath

import "github.com/shopspring/decimal"

// Pow computes baseᵉˣᵖ.
//
// Exponent handling:
//   - exponent == 0 → 1 for any base, including 0 and negatives (convention
//     shared with the YTM and forward-rate engines).
//   - integer exponent → iterative squaring, exact to scale; a negative
//     integer exponent takes the reciprocal of the positive power.
//   - real exponent → Exp(exponent·Ln(base)); requires base > 0.
//
// Errors:
//   - ErrPowZeroBase if base == 0 with a negative exponent.
//   - ErrPowDomain   if base ≤ 0 with a non-integer exponent.
func Pow(base, exponent decimal.Decimal, cfg Config) (decimal.Decimal, error) {
	cfg = cfg.normalized()

	// 1) Universal zero-exponent convention.
	if exponent.IsZero() {
		return one, nil
	}

	// 2) Integer exponents: exact squaring path.
	if exponent.IsInteger() {
		return powInt(base, exponent.IntPart())
	}

	// 3) Real exponents: exp(e·ln b), positive base only.
	if base.Sign() <= 0 {
		return decimal.Zero, ErrPowDomain
	}
	lnBase, err := Ln(base, cfg)
	if err != nil {
		return decimal.Zero, err
	}

	return Exp(exponent.Mul(lnBase), cfg), nil
}

// powInt raises base to any int64 power by iterative squaring.
func powInt(base decimal.Decimal, k int64) (decimal.Decimal, error) {
	if k < 0 {
		if base.IsZero() {
			return decimal.Zero, ErrPowZeroBase
		}

		return one.Div(powIntPositive(base, int(-k))), nil
	}

	return powIntPositive(base, int(k)), nil
}
