// SPDX-License-Identifier: MIT
package linsolve

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrSingular is returned when a determinant or pivot vanishes within
// Options.SingularEpsilon and the configured policy treats that as fatal.
var ErrSingular = errors.New("linsolve: singular system")

// ZeroPivotPolicy selects how Solve4 treats a column whose best available
// pivot is within SingularEpsilon of zero.
type ZeroPivotPolicy int

const (
	// ZeroPivotSkip skips the degenerate column: its coefficient is forced
	// to zero and the column index is recorded in Solution4.SkippedColumns.
	// Default; preserves grid-search fits over collinear loadings.
	ZeroPivotSkip ZeroPivotPolicy = iota

	// ZeroPivotFail treats a degenerate column as a hard ErrSingular.
	ZeroPivotFail
)

// Options configures the numeric policy of the solvers.
//
// SingularEpsilon – magnitude below which a determinant or pivot counts as
// zero. ZeroPivotPolicy – see the policy constants (Solve4 only).
type Options struct {
	SingularEpsilon decimal.Decimal
	ZeroPivotPolicy ZeroPivotPolicy
}

// Option is a functional option for configuring a solve.
type Option func(*Options)

// WithSingularEpsilon sets the zero-detection magnitude.
func WithSingularEpsilon(eps decimal.Decimal) Option {
	return func(o *Options) { o.SingularEpsilon = eps }
}

// WithZeroPivotPolicy sets the degenerate-column policy for Solve4.
func WithZeroPivotPolicy(p ZeroPivotPolicy) Option {
	return func(o *Options) { o.ZeroPivotPolicy = p }
}

// DefaultOptions returns the documented default policy:
// SingularEpsilon 1e-12, ZeroPivotSkip.
func DefaultOptions() Options {
	return Options{
		SingularEpsilon: decimal.New(1, -12),
		ZeroPivotPolicy: ZeroPivotSkip,
	}
}

// Solution4 is the result of a 4×4 solve.
//
// Beta holds the coefficients in column order. SkippedColumns lists the
// zero-indexed columns eliminated under ZeroPivotSkip, whose Beta entries
// are exactly zero; empty on a clean solve.
type Solution4 struct {
	Beta           [4]decimal.Decimal
	SkippedColumns []int
}
