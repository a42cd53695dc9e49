// SPDX-License-Identifier: MIT
package linsolve

import "github.com/shopspring/decimal"

// Solve3 solves the 3×3 system a·β = b by Cramer's rule.
//
// Algorithm outline:
//  1. det(a) via cofactor expansion along the first row.
//  2. |det| <= SingularEpsilon → ErrSingular (never a near-zero division).
//  3. βᵢ = det(a with column i replaced by b) / det(a).
//
// Deterministic: fixed expansion order, no pivoting needed since every
// division is by the full determinant.
//
// Complexity: O(1) — four 3×3 determinants.
func Solve3(a [3][3]decimal.Decimal, b [3]decimal.Decimal, opts ...Option) ([3]decimal.Decimal, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Determinant of the coefficient matrix.
	det := det3(a)

	// 2) Singularity gate.
	if det.Abs().Cmp(cfg.SingularEpsilon) <= 0 {
		return [3]decimal.Decimal{}, ErrSingular
	}

	// 3) Column replacement per unknown.
	var beta [3]decimal.Decimal
	for i := 0; i < 3; i++ {
		ai := a
		for r := 0; r < 3; r++ {
			ai[r][i] = b[r]
		}
		beta[i] = det3(ai).Div(det)
	}

	return beta, nil
}

// det3 expands the 3×3 determinant along the first row.
func det3(a [3][3]decimal.Decimal) decimal.Decimal {
	m00 := a[1][1].Mul(a[2][2]).Sub(a[1][2].Mul(a[2][1]))
	m01 := a[1][0].Mul(a[2][2]).Sub(a[1][2].Mul(a[2][0]))
	m02 := a[1][0].Mul(a[2][1]).Sub(a[1][1].Mul(a[2][0]))

	return a[0][0].Mul(m00).Sub(a[0][1].Mul(m01)).Add(a[0][2].Mul(m02))
}

// Solve4 solves the 4×4 system a·β = b by Gaussian elimination with
// partial pivoting and back-substitution.
//
// Algorithm outline:
//  1. Build the augmented matrix [a | b].
//  2. For each column left to right: scan the remaining rows for the
//     largest-magnitude pivot (fixed top-down scan, strict improvement —
//     deterministic row choice) and swap it into position.
//  3. Best pivot within SingularEpsilon → apply Options.ZeroPivotPolicy:
//     skip the column (coefficient zero, index recorded) or ErrSingular.
//  4. Eliminate the column below the pivot row.
//  5. Back-substitute in reverse column order, treating skipped columns
//     as zero contributions.
//
// Complexity: O(1) — fixed 4×4 elimination.
func Solve4(a [4][4]decimal.Decimal, b [4]decimal.Decimal, opts ...Option) (Solution4, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Augmented matrix [a | b].
	var m [4][5]decimal.Decimal
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = a[r][c]
		}
		m[r][4] = b[r]
	}

	var sol Solution4
	pivotRowOf := [4]int{-1, -1, -1, -1} // elimination row per column, -1 = skipped
	row := 0                             // next free elimination row

	for col := 0; col < 4; col++ {
		// 2) Partial pivot: largest |m[r][col]| among remaining rows.
		best := row
		for r := row + 1; r < 4; r++ {
			if m[r][col].Abs().Cmp(m[best][col].Abs()) > 0 {
				best = r
			}
		}

		// 3) Degenerate column: policy decides.
		if m[best][col].Abs().Cmp(cfg.SingularEpsilon) <= 0 {
			if cfg.ZeroPivotPolicy == ZeroPivotFail {
				return Solution4{}, ErrSingular
			}
			sol.SkippedColumns = append(sol.SkippedColumns, col)

			continue
		}

		// Swap the pivot row into position.
		if best != row {
			m[best], m[row] = m[row], m[best]
		}
		pivotRowOf[col] = row

		// 4) Eliminate below the pivot.
		for r := row + 1; r < 4; r++ {
			if m[r][col].IsZero() {
				continue
			}
			factor := m[r][col].Div(m[row][col])
			for c := col; c < 5; c++ {
				m[r][c] = m[r][c].Sub(factor.Mul(m[row][c]))
			}
		}
		row++
	}

	// 5) Back-substitution, skipped columns contribute zero.
	for col := 3; col >= 0; col-- {
		r := pivotRowOf[col]
		if r < 0 {
			sol.Beta[col] = decimal.Zero

			continue
		}
		sum := m[r][4]
		for c := col + 1; c < 4; c++ {
			if sol.Beta[c].IsZero() {
				continue
			}
			sum = sum.Sub(m[r][c].Mul(sol.Beta[c]))
		}
		sol.Beta[col] = sum.Div(m[r][col])
	}

	return sol, nil
}
