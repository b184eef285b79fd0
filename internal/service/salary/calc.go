package salary

import "github.com/shopspring/decimal"

// NetAmount computes net pay from the month's figures. All operands use
// the storage scale, so the result does too.
func NetAmount(base, bonus, deduction decimal.Decimal) decimal.Decimal {
	return base.Add(bonus).Sub(deduction)
}
