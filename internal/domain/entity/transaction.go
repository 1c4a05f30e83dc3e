package entity

import (
	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// Transaction is a read-only view merging expenses and incomes for listings.
// Label holds the expense category or the income source.
type Transaction struct {
	ID          string
	Type        TransactionType
	Amount      decimal.Decimal
	Label       string
	Description string
	Date        string
}

// TransactionFromExpense builds the listing view of an expense.
func TransactionFromExpense(e Expense) Transaction {
	return Transaction{
		ID:          e.ID,
		Type:        TransactionTypeExpense,
		Amount:      e.Amount,
		Label:       e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
}

// TransactionFromIncome builds the listing view of an income.
func TransactionFromIncome(i Income) Transaction {
	return Transaction{
		ID:          i.ID,
		Type:        TransactionTypeIncome,
		Amount:      i.Amount,
		Label:       i.Source,
		Description: i.Description,
		Date:        i.Date,
	}
}
