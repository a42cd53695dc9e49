package curvefit

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/linsolve"
)

// FitNelsonSiegel fits the three-beta Nelson–Siegel model to observed
// rates by fixed-lambda OLS plus grid search.
//
// Algorithm outline:
//  1. Validate: ≥3 observations with positive tenors, positive candidates.
//  2. For each lambda candidate: build the 3×3 normal equations over the
//     loadings, solve by Cramer, keep the lowest sum of squared errors.
//     Singular candidates are skipped; all-singular is ErrNoViableLambda.
//  3. Refine: for each configured percentage delta, re-evaluate at
//     best·(1−δ) and best·(1+δ), adopting improvements as they appear.
//  4. Diagnose: fitted rates, residuals, RMSE, R² for the winning
//     parameters; RMSE above Options.PoorFitRMSE adds a warning instead
//     of failing the fit.
//
// Complexity: O((|Lambdas| + |RefineDeltas|) · n) primitive evaluations.
func FitNelsonSiegel(observed []curve.TenorRate, opts ...Option) (NelsonSiegelResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Input discipline.
	if err := validateObserved(observed, 3); err != nil {
		return NelsonSiegelResult{}, err
	}
	if err := validateLambdas(cfg.Lambdas); err != nil {
		return NelsonSiegelResult{}, err
	}

	// 2) Coarse grid over the fixed candidates.
	var best NelsonSiegelParams
	bestSSE := decimal.Zero
	viable := false
	for _, lambda := range cfg.Lambdas {
		params, sse, err := solveNelsonSiegelAt(lambda, observed, cfg)
		if err != nil {
			if errors.Is(err, linsolve.ErrSingular) {
				continue
			}

			return NelsonSiegelResult{}, err
		}
		if !viable || sse.LessThan(bestSSE) {
			best, bestSSE, viable = params, sse, true
		}
	}
	if !viable {
		return NelsonSiegelResult{}, ErrNoViableLambda
	}

	// 3) Local percentage-delta refinement around the winner.
	for _, delta := range cfg.RefineDeltas {
		for _, sign := range []decimal.Decimal{one.Sub(delta), one.Add(delta)} {
			candidate := best.Lambda.Mul(sign)
			params, sse, err := solveNelsonSiegelAt(candidate, observed, cfg)
			if err != nil {
				continue // refinement is best-effort; the grid winner stands
			}
			if sse.LessThan(bestSSE) {
				best, bestSSE = params, sse
			}
		}
	}

	// 4) Diagnostics for the returned parameters.
	res := NelsonSiegelResult{Params: best}
	diag, err := diagnose(observed, func(t decimal.Decimal) (decimal.Decimal, error) {
		return best.Rate(t, cfg.Math)
	}, cfg)
	if err != nil {
		return NelsonSiegelResult{}, err
	}
	res.Diagnostics = diag
	res.Warnings = appendPoorFitWarning(res.Warnings, diag.RMSE, cfg.PoorFitRMSE)

	return res, nil
}

// solveNelsonSiegelAt solves the fixed-lambda OLS subproblem and returns
// the parameters with their sum of squared errors.
func solveNelsonSiegelAt(lambda decimal.Decimal, observed []curve.TenorRate, cfg Options) (NelsonSiegelParams, decimal.Decimal, error) {
	if lambda.Sign() <= 0 {
		return NelsonSiegelParams{}, decimal.Zero, ErrBadLambda
	}

	// Design rows φ(t) = [1, L1, L2] and the normal equations ΦᵗΦ, Φᵗy.
	var a [3][3]decimal.Decimal
	var b [3]decimal.Decimal
	rows := make([][3]decimal.Decimal, len(observed))
	for i, obs := range observed {
		l1, l2 := loadings(obs.Maturity, lambda, cfg.Math)
		rows[i] = [3]decimal.Decimal{one, l1, l2}
		for r := 0; r < 3; r++ {
			for c := 0; c < 3; c++ {
				a[r][c] = a[r][c].Add(rows[i][r].Mul(rows[i][c]))
			}
			b[r] = b[r].Add(rows[i][r].Mul(obs.Rate))
		}
	}

	beta, err := linsolve.Solve3(a, b)
	if err != nil {
		return NelsonSiegelParams{}, decimal.Zero, fmt.Errorf("lambda %s: %w", lambda, err)
	}

	params := NelsonSiegelParams{Beta0: beta[0], Beta1: beta[1], Beta2: beta[2], Lambda: lambda}

	// SSE over the design rows just built.
	sse := decimal.Zero
	for i, obs := range observed {
		fitted := beta[0].Mul(rows[i][0]).Add(beta[1].Mul(rows[i][1])).Add(beta[2].Mul(rows[i][2]))
		r := obs.Rate.Sub(fitted)
		sse = sse.Add(r.Mul(r))
	}

	return params, sse, nil
}

// validateObserved enforces the observation count and positive tenors.
func validateObserved(observed []curve.TenorRate, minPoints int) error {
	if len(observed) < minPoints {
		return ErrInsufficientData
	}
	for i, obs := range observed {
		if obs.Maturity.Sign() <= 0 {
			return fmt.Errorf("observation %d: %w", i, ErrNonPositiveMaturity)
		}
	}

	return nil
}

// validateLambdas enforces a non-empty, positive candidate grid.
func validateLambdas(lambdas []decimal.Decimal) error {
	if len(lambdas) == 0 {
		return ErrBadLambda
	}
	for _, l := range lambdas {
		if l.Sign() <= 0 {
			return ErrBadLambda
		}
	}

	return nil
}

// appendPoorFitWarning adds the RMSE-threshold warning when crossed.
func appendPoorFitWarning(warnings []string, rmse, threshold decimal.Decimal) []string {
	if threshold.Sign() > 0 && rmse.GreaterThan(threshold) {
		warnings = append(warnings,
			fmt.Sprintf("poor fit: rmse %s above threshold %s", rmse, threshold))
	}

	return warnings
}
