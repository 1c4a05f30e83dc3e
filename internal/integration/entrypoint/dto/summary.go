package dto

import (
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/domain/valueobject"
)

// SummaryResponse represents the monthly overview of income and spending.
type SummaryResponse struct {
	Period        string                  `json:"period"`
	TotalIncome   string                  `json:"total_income"`
	TotalExpenses string                  `json:"total_expenses"`
	Balance       string                  `json:"balance"`
	SavingsRate   int                     `json:"savings_rate"`
	Categories    []CategoryTotalResponse `json:"categories"`
}

// TransactionResponse represents an expense or income in a merged listing.
type TransactionResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// TransactionListResponse represents the recent transactions listing.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// ToSummaryResponse converts a Summary value object to its DTO.
func ToSummaryResponse(s valueobject.Summary) SummaryResponse {
	return SummaryResponse{
		Period:        s.Period,
		TotalIncome:   amountString(s.TotalIncome),
		TotalExpenses: amountString(s.TotalExpenses),
		Balance:       amountString(s.Balance),
		SavingsRate:   s.SavingsRate,
		Categories:    toCategoryTotalResponses(s.Categories),
	}
}

// ToTransactionListResponse converts merged transactions to their DTO.
func ToTransactionListResponse(transactions []entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, tx := range transactions {
		responses[i] = TransactionResponse{
			ID:          tx.ID,
			Type:        string(tx.Type),
			Amount:      amountString(tx.Amount),
			Label:       tx.Label,
			Description: tx.Description,
			Date:        tx.Date,
		}
	}
	return TransactionListResponse{Transactions: responses}
}
