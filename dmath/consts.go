package dmath

import "github.com/shopspring/decimal"

// Shared decimal constants. Constructed once at init; all are treated as
// immutable (shopspring decimals are value types, so sharing is safe).
var (
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)
	half = decimal.New(5, -1)

	// ln2 to 32 fractional digits — twice the 16-digit division precision,
	// so the k·ln2 term never dominates the range-reduction error.
	ln2 = decimal.RequireFromString("0.69314718055994530941723212145818")
)
