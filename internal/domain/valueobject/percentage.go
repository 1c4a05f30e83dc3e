// Package valueobject contains domain value objects for the Budget Tracker system.
package valueobject

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Percentage returns value as a whole-number percentage of total, rounded half
// away from zero, so 2.5 becomes 3 and -2.5 becomes -3. A zero total yields 0.
func Percentage(value, total decimal.Decimal) int {
	if total.IsZero() {
		return 0
	}
	return int(value.Mul(hundred).Div(total).Round(0).IntPart())
}
