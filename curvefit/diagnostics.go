package curvefit

import (
	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/dmath"
)

// tssEpsilon bounds "no variance in the observations" for the R²
// degenerate branch.
var tssEpsilon = decimal.New(1, -20)

// diagnose evaluates the fitted model at every observed tenor and
// derives the quality measures reported alongside the parameters.
//
// R² follows the OLS convention 1 − SSE/TSS with one degenerate branch:
// a flat observed curve has TSS = 0, where a perfect fit scores 1 and
// any residual scores 0.
func diagnose(observed []curve.TenorRate, eval func(decimal.Decimal) (decimal.Decimal, error), cfg Options) (Diagnostics, error) {
	n := decimal.NewFromInt(int64(len(observed)))

	diag := Diagnostics{
		Fitted:    make([]curve.TenorRate, len(observed)),
		Residuals: make([]decimal.Decimal, len(observed)),
	}

	// 1) Fitted values, residuals, SSE and the observation mean.
	sse := decimal.Zero
	mean := decimal.Zero
	for _, obs := range observed {
		mean = mean.Add(obs.Rate)
	}
	mean = mean.Div(n)
	for i, obs := range observed {
		fitted, err := eval(obs.Maturity)
		if err != nil {
			return Diagnostics{}, err
		}
		diag.Fitted[i] = curve.TenorRate{Maturity: obs.Maturity, Rate: fitted}
		diag.Residuals[i] = obs.Rate.Sub(fitted)
		sse = sse.Add(diag.Residuals[i].Mul(diag.Residuals[i]))
	}

	// 2) RMSE = √(SSE/n).
	diag.RMSE = dmath.Sqrt(sse.Div(n), cfg.Math)

	// 3) R², with the flat-curve branch.
	tss := decimal.Zero
	for _, obs := range observed {
		d := obs.Rate.Sub(mean)
		tss = tss.Add(d.Mul(d))
	}
	switch {
	case tss.LessThan(tssEpsilon):
		if sse.LessThan(tssEpsilon) {
			diag.RSquared = one
		} else {
			diag.RSquared = decimal.Zero
		}
	default:
		diag.RSquared = one.Sub(sse.Div(tss))
	}

	return diag, nil
}
