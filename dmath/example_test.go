package dmath_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fall-development-rob/curvemath/dmath"
)

// ExampleExp demonstrates the Taylor-series exponential on a plain rate.
func ExampleExp() {
	cfg := dmath.DefaultConfig()

	e := dmath.Exp(decimal.NewFromInt(1), cfg)
	fmt.Println(e.StringFixed(6))
	// Output: 2.718282
}

// ExampleLn demonstrates the range-reduced natural logarithm.
func ExampleLn() {
	cfg := dmath.DefaultConfig()

	v, err := dmath.Ln(decimal.NewFromInt(2), cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v.StringFixed(6))
	// Output: 0.693147
}

// ExamplePow demonstrates a fractional power — the operation behind
// forward-rate and bond-equivalent-yield conversions.
func ExamplePow() {
	cfg := dmath.DefaultConfig()

	// (1.0609)^0.5 — annualizing a two-period compounded factor.
	v, err := dmath.Pow(decimal.RequireFromString("1.0609"), decimal.RequireFromString("0.5"), cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(v.StringFixed(4))
	// Output: 1.0300
}

// ExampleNthRoot demonstrates converting a 3-year discount factor into an
// annual compounding factor.
func ExampleNthRoot() {
	cfg := dmath.DefaultConfig()

	// DF(3y) = 0.915142, so (1/DF)^(1/3) = 1 + spot.
	factor, err := dmath.NthRoot(decimal.RequireFromString("0.915142"), 3, cfg)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(factor.StringFixed(6))
	// Output: 0.970874
}
