package entity

import (
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/domain/valueobject"
)

// Goal represents a savings target in the Budget Tracker system.
// CurrentAmount is the only field that changes after creation.
type Goal struct {
	ID            string          `json:"id"`
	Category      string          `json:"category"`
	Amount        decimal.Decimal `json:"amount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	EndDate       string          `json:"endDate"` // YYYY-MM-DD
}

// NewGoal creates a new Goal entity. Accumulated progress always starts at zero.
func NewGoal(id, category string, amount decimal.Decimal, endDate string) *Goal {
	return &Goal{
		ID:            id,
		Category:      category,
		Amount:        amount,
		CurrentAmount: decimal.Zero,
		EndDate:       endDate,
	}
}

// WithProgress returns a copy of the goal with delta added to CurrentAmount.
// The result is not clamped to [0, Amount].
func (g Goal) WithProgress(delta decimal.Decimal) Goal {
	g.CurrentAmount = g.CurrentAmount.Add(delta)
	return g
}

// IsCompleted reports whether the accumulated amount has reached the target.
func (g Goal) IsCompleted() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.Amount)
}

// Remaining returns how much is still missing to reach the target, never below zero.
func (g Goal) Remaining() decimal.Decimal {
	remaining := g.Amount.Sub(g.CurrentAmount)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// ProgressPercent returns CurrentAmount as a rounded percentage of Amount.
func (g Goal) ProgressPercent() int {
	return valueobject.Percentage(g.CurrentAmount, g.Amount)
}

// IsActiveOn reports whether the goal's end date has not passed on the given day.
// Both dates are compared as YYYY-MM-DD strings.
func (g Goal) IsActiveOn(day string) bool {
	return g.EndDate >= day
}
