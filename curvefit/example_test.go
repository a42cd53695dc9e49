package curvefit_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/curve"
	"github.com/fall-development-rob/curvemath/curvefit"
)

// ////////////////////////////////////////////////////////////////////////////
// ExampleFitNelsonSiegel
// ////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Five observations, all at 5%. A flat curve needs no slope and no
//	curvature, so the fit collapses onto the level beta with vanishing
//	error.
func ExampleFitNelsonSiegel() {
	observed := make([]curve.TenorRate, 5)
	for i := range observed {
		observed[i] = curve.TenorRate{
			Maturity: decimal.NewFromInt(int64(i + 1)),
			Rate:     decimal.RequireFromString("0.05"),
		}
	}

	res, err := curvefit.FitNelsonSiegel(observed)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("beta0 = %s\n", res.Params.Beta0.StringFixed(4))
	fmt.Printf("rmse  = %s\n", res.Diagnostics.RMSE.StringFixed(4))
	// Output:
	// beta0 = 0.0500
	// rmse  = 0.0000
}
