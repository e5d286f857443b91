package utils

import "github.com/shopspring/decimal"

// SplitEpsilon is the tolerance for split-sum reconciliation: split totals
// may drift from the expense total by at most one cent.
var SplitEpsilon = decimal.New(1, -2)

// MaxZero clamps a negative amount to zero
func MaxZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// WithinEpsilon reports whether two amounts reconcile within SplitEpsilon
func WithinEpsilon(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(SplitEpsilon)
}
