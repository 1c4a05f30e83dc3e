package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/application/usecase/income"
	"github.com/finance-tracker/budget/internal/domain/entity"
)

// CreateIncomeRequest represents the request body for recording an income.
type CreateIncomeRequest struct {
	Amount      decimal.Decimal `json:"amount"`
	Source      string          `json:"source" binding:"required"`
	Description string          `json:"description"`
	Date        string          `json:"date" binding:"required"`
	IsRecurring bool            `json:"is_recurring"`
}

// Validate checks the request fields.
func (r CreateIncomeRequest) Validate() error {
	return firstError(
		ValidateAmount(r.Amount),
		ValidateLabel(r.Source),
		ValidateDescription(r.Description),
		ValidateDate(r.Date),
	)
}

// ToInput converts the request to the ledger input.
func (r CreateIncomeRequest) ToInput() income.AddIncomeInput {
	return income.AddIncomeInput{
		Amount:      r.Amount,
		Source:      strings.TrimSpace(r.Source),
		Description: strings.TrimSpace(r.Description),
		Date:        r.Date,
		IsRecurring: r.IsRecurring,
	}
}

// IncomeResponse represents a single income in API responses.
type IncomeResponse struct {
	ID          string `json:"id"`
	Amount      string `json:"amount"`
	Source      string `json:"source"`
	Description string `json:"description"`
	Date        string `json:"date"`
	IsRecurring bool   `json:"is_recurring"`
}

// IncomeListResponse represents the response for listing incomes.
type IncomeListResponse struct {
	Incomes []IncomeResponse `json:"incomes"`
}

// IncomeChangeResponse carries the new income and the collection after the write.
type IncomeChangeResponse struct {
	Income  IncomeResponse   `json:"income"`
	Incomes []IncomeResponse `json:"incomes"`
}

// ToIncomeResponse converts a domain Income entity to an IncomeResponse DTO.
func ToIncomeResponse(i entity.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID,
		Amount:      amountString(i.Amount),
		Source:      i.Source,
		Description: i.Description,
		Date:        i.Date,
		IsRecurring: i.IsRecurring,
	}
}

// ToIncomeListResponse converts incomes to an IncomeListResponse DTO.
func ToIncomeListResponse(incomes []entity.Income) IncomeListResponse {
	return IncomeListResponse{Incomes: toIncomeResponses(incomes)}
}

// ToIncomeChangeResponse converts a facade change to its DTO.
func ToIncomeChangeResponse(change *budget.IncomeChange) IncomeChangeResponse {
	return IncomeChangeResponse{
		Income:  ToIncomeResponse(*change.Income),
		Incomes: toIncomeResponses(change.Incomes),
	}
}

func toIncomeResponses(incomes []entity.Income) []IncomeResponse {
	responses := make([]IncomeResponse, len(incomes))
	for i, in := range incomes {
		responses[i] = ToIncomeResponse(in)
	}
	return responses
}
