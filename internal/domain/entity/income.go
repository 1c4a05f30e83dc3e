package entity

import (
	"github.com/shopspring/decimal"
)

// Income represents money received, owned exclusively by the income ledger.
type Income struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // YYYY-MM-DD
	// IsRecurring is informational only; nothing re-creates recurring incomes.
	IsRecurring bool `json:"isRecurring"`
}

// NewIncome creates a new Income entity with the given identifier.
func NewIncome(id string, amount decimal.Decimal, source, description, date string, isRecurring bool) *Income {
	return &Income{
		ID:          id,
		Amount:      amount,
		Source:      source,
		Description: description,
		Date:        date,
		IsRecurring: isRecurring,
	}
}
