package curvefit

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/linsolve"
)

// FitSvensson fits the four-beta Svensson extension by fixed-pair OLS
// plus grid search over ordered (lambda1, lambda2) candidate pairs.
//
// Algorithm outline:
//  1. Validate: ≥4 observations with positive tenors, positive candidates.
//  2. For each pair of distinct candidates: build the 4×4 normal
//     equations over [1, L1(λ1), L2(λ1), L2(λ2)] and solve by Gaussian
//     elimination with partial pivoting. Near-collinear loadings (a
//     pivot below the singularity epsilon) zero the offending beta and
//     surface as a warning rather than an error. A grid without at
//     least two distinct candidates leaves no pair to try and is
//     ErrNoViableLambda.
//  3. Refine lambda1 and lambda2 independently by the configured
//     percentage deltas, adopting improvements as they appear.
//  4. Diagnose the winning parameters the same way as Nelson–Siegel.
func FitSvensson(observed []curve.TenorRate, opts ...Option) (SvenssonResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Input discipline.
	if err := validateObserved(observed, 4); err != nil {
		return SvenssonResult{}, err
	}
	if err := validateLambdas(cfg.Lambdas); err != nil {
		return SvenssonResult{}, err
	}

	// 2) Coarse grid over ordered pairs of distinct candidates.
	var best svenssonCandidate
	viable := false
	for _, l1 := range cfg.Lambdas {
		for _, l2 := range cfg.Lambdas {
			if l1.Equal(l2) {
				continue
			}
			cand, err := solveSvenssonAt(l1, l2, observed, cfg)
			if err != nil {
				if errors.Is(err, linsolve.ErrSingular) {
					continue
				}

				return SvenssonResult{}, err
			}
			if !viable || cand.sse.LessThan(best.sse) {
				best, viable = cand, true
			}
		}
	}
	if !viable {
		return SvenssonResult{}, ErrNoViableLambda
	}

	// 3) Refine each decay independently around the winner.
	for _, delta := range cfg.RefineDeltas {
		for _, sign := range []decimal.Decimal{one.Sub(delta), one.Add(delta)} {
			if cand, err := solveSvenssonAt(best.params.Lambda1.Mul(sign), best.params.Lambda2, observed, cfg); err == nil && cand.sse.LessThan(best.sse) {
				best = cand
			}
			if cand, err := solveSvenssonAt(best.params.Lambda1, best.params.Lambda2.Mul(sign), observed, cfg); err == nil && cand.sse.LessThan(best.sse) {
				best = cand
			}
		}
	}

	// 4) Diagnostics and collinearity warnings for the winning pair.
	res := SvenssonResult{Params: best.params}
	for _, col := range best.skipped {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("collinear loadings: normal-equation column %d skipped, its beta forced to zero", col))
	}
	diag, err := diagnose(observed, func(t decimal.Decimal) (decimal.Decimal, error) {
		return best.params.Rate(t, cfg.Math)
	}, cfg)
	if err != nil {
		return SvenssonResult{}, err
	}
	res.Diagnostics = diag
	res.Warnings = appendPoorFitWarning(res.Warnings, diag.RMSE, cfg.PoorFitRMSE)

	return res, nil
}

// svenssonCandidate carries one solved fixed-pair subproblem.
type svenssonCandidate struct {
	params  SvenssonParams
	sse     decimal.Decimal
	skipped []int
}

// solveSvenssonAt solves the fixed-(lambda1, lambda2) OLS subproblem.
func solveSvenssonAt(lambda1, lambda2 decimal.Decimal, observed []curve.TenorRate, cfg Options) (svenssonCandidate, error) {
	if lambda1.Sign() <= 0 || lambda2.Sign() <= 0 {
		return svenssonCandidate{}, ErrBadLambda
	}

	// Design rows φ(t) = [1, L1(λ1), L2(λ1), L2(λ2)] and ΦᵗΦ, Φᵗy.
	var a [4][4]decimal.Decimal
	var b [4]decimal.Decimal
	rows := make([][4]decimal.Decimal, len(observed))
	for i, obs := range observed {
		l1, l2 := loadings(obs.Maturity, lambda1, cfg.Math)
		_, l3 := loadings(obs.Maturity, lambda2, cfg.Math)
		rows[i] = [4]decimal.Decimal{one, l1, l2, l3}
		for r := 0; r < 4; r++ {
			for c := 0; c < 4; c++ {
				a[r][c] = a[r][c].Add(rows[i][r].Mul(rows[i][c]))
			}
			b[r] = b[r].Add(rows[i][r].Mul(obs.Rate))
		}
	}

	sol, err := linsolve.Solve4(a, b)
	if err != nil {
		return svenssonCandidate{}, fmt.Errorf("lambda pair (%s, %s): %w", lambda1, lambda2, err)
	}

	cand := svenssonCandidate{
		params: SvenssonParams{
			Beta0:   sol.Beta[0],
			Beta1:   sol.Beta[1],
			Beta2:   sol.Beta[2],
			Beta3:   sol.Beta[3],
			Lambda1: lambda1,
			Lambda2: lambda2,
		},
		skipped: sol.SkippedColumns,
	}

	// SSE over the design rows just built.
	for i, obs := range observed {
		fitted := decimal.Zero
		for j := 0; j < 4; j++ {
			fitted = fitted.Add(sol.Beta[j].Mul(rows[i][j]))
		}
		r := obs.Rate.Sub(fitted)
		cand.sse = cand.sse.Add(r.Mul(r))
	}

	return cand, nil
}
