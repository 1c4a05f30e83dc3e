package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/application/usecase/expense"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/domain/valueobject"
)

// CreateExpenseRequest represents the request body for recording an expense.
// Amount accepts a JSON number or a decimal string.
type CreateExpenseRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
}

// Validate checks the request fields.
func (r CreateExpenseRequest) Validate() error {
	return firstError(
		ValidateAmount(r.Amount),
		ValidateLabel(r.Category),
		ValidateDescription(r.Description),
		ValidateDate(r.Date),
	)
}

// ToInput converts the request to the ledger input, trimming the labels.
func (r CreateExpenseRequest) ToInput() expense.AddExpenseInput {
	return expense.AddExpenseInput{
		Amount:      r.Amount,
		Category:    strings.TrimSpace(r.Category),
		Description: strings.TrimSpace(r.Description),
		Date:        r.Date,
	}
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ExpenseChangeResponse carries the new expense and the collection after the write.
type ExpenseChangeResponse struct {
	Expense  ExpenseResponse   `json:"expense"`
	Expenses []ExpenseResponse `json:"expenses"`
}

// CategoryTotalResponse is one category of a spending breakdown.
type CategoryTotalResponse struct {
	Category   string `json:"category"`
	Amount     string `json:"amount"`
	Percentage int    `json:"percentage"`
}

// CategoryBreakdownResponse represents spending per category for a period.
type CategoryBreakdownResponse struct {
	Period     string                  `json:"period"`
	Total      string                  `json:"total"`
	Categories []CategoryTotalResponse `json:"categories"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID,
		Amount:      amountString(e.Amount),
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
}

// ToExpenseListResponse converts expenses to an ExpenseListResponse DTO.
func ToExpenseListResponse(expenses []entity.Expense) ExpenseListResponse {
	return ExpenseListResponse{Expenses: toExpenseResponses(expenses)}
}

// ToExpenseChangeResponse converts a facade change to its DTO.
func ToExpenseChangeResponse(change *budget.ExpenseChange) ExpenseChangeResponse {
	return ExpenseChangeResponse{
		Expense:  ToExpenseResponse(*change.Expense),
		Expenses: toExpenseResponses(change.Expenses),
	}
}

// ToCategoryBreakdownResponse converts per-category sums into a sorted breakdown.
func ToCategoryBreakdownResponse(period entity.Period, byCategory map[string]decimal.Decimal) CategoryBreakdownResponse {
	items, total := valueobject.Breakdown(byCategory)
	return CategoryBreakdownResponse{
		Period:     period.String(),
		Total:      amountString(total),
		Categories: toCategoryTotalResponses(items),
	}
}

func toExpenseResponses(expenses []entity.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return responses
}

func toCategoryTotalResponses(items []valueobject.CategoryTotal) []CategoryTotalResponse {
	responses := make([]CategoryTotalResponse, len(items))
	for i, item := range items {
		responses[i] = CategoryTotalResponse{
			Category:   item.Category,
			Amount:     amountString(item.Amount),
			Percentage: item.Percentage,
		}
	}
	return responses
}
