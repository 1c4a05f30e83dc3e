// Package entity defines the core business entities for the domain layer.
package entity

import (
	"github.com/shopspring/decimal"
)

// Persisted records carry amounts as JSON numbers. Decoding still accepts
// quoted amounts written by earlier versions.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense represents money spent, owned exclusively by the expense ledger.
// Once created it is never mutated; only removed.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"` // YYYY-MM-DD
}

// NewExpense creates a new Expense entity with the given identifier.
func NewExpense(id string, amount decimal.Decimal, category, description, date string) *Expense {
	return &Expense{
		ID:          id,
		Amount:      amount,
		Category:    category,
		Description: description,
		Date:        date,
	}
}
