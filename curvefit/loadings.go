package curvefit

import (
	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

var one = decimal.NewFromInt(1)

// loadings returns the Nelson–Siegel basis values (L1, L2) at tenor t for
// decay lambda:
//
//	x  = t/λ
//	L1 = (1−e⁻ˣ)/x
//	L2 = L1 − e⁻ˣ
//
// Callers guarantee t > 0 and λ > 0, so x > 0 and the division is safe.
func loadings(t, lambda decimal.Decimal, cfg dmath.Config) (decimal.Decimal, decimal.Decimal) {
	x := t.Div(lambda)
	e := dmath.Exp(x.Neg(), cfg)
	l1 := one.Sub(e).Div(x)

	return l1, l1.Sub(e)
}

// Rate evaluates the Nelson–Siegel model at tenor t.
//
// Errors:
//   - ErrNonPositiveMaturity if t <= 0.
//   - ErrBadLambda if the parameters carry a non-positive decay.
func (p NelsonSiegelParams) Rate(t decimal.Decimal, cfg dmath.Config) (decimal.Decimal, error) {
	if t.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveMaturity
	}
	if p.Lambda.Sign() <= 0 {
		return decimal.Zero, ErrBadLambda
	}

	l1, l2 := loadings(t, p.Lambda, cfg)

	return p.Beta0.Add(p.Beta1.Mul(l1)).Add(p.Beta2.Mul(l2)), nil
}

// Rate evaluates the Svensson model at tenor t.
//
// Errors:
//   - ErrNonPositiveMaturity if t <= 0.
//   - ErrBadLambda if either decay is non-positive.
func (p SvenssonParams) Rate(t decimal.Decimal, cfg dmath.Config) (decimal.Decimal, error) {
	if t.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveMaturity
	}
	if p.Lambda1.Sign() <= 0 || p.Lambda2.Sign() <= 0 {
		return decimal.Zero, ErrBadLambda
	}

	l1, l2 := loadings(t, p.Lambda1, cfg)
	_, l3 := loadings(t, p.Lambda2, cfg)

	return p.Beta0.Add(p.Beta1.Mul(l1)).Add(p.Beta2.Mul(l2)).Add(p.Beta3.Mul(l3)), nil
}
