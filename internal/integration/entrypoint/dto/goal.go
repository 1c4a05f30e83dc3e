package dto

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/application/usecase/budget"
	"github.com/finance-tracker/budget/internal/application/usecase/goal"
	"github.com/finance-tracker/budget/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation.
// There is no current amount: new goals always start at zero.
type CreateGoalRequest struct {
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount"`
	EndDate  string          `json:"end_date" binding:"required"`
}

// Validate checks the request fields.
func (r CreateGoalRequest) Validate() error {
	return firstError(
		ValidateLabel(r.Category),
		ValidateAmount(r.Amount),
		ValidateDate(r.EndDate),
	)
}

// ToInput converts the request to the tracker input.
func (r CreateGoalRequest) ToInput() goal.AddGoalInput {
	return goal.AddGoalInput{
		Category: strings.TrimSpace(r.Category),
		Amount:   r.Amount,
		EndDate:  r.EndDate,
	}
}

// UpdateProgressRequest represents a signed change to a goal's saved amount.
// A zero delta must be sent explicitly.
type UpdateProgressRequest struct {
	Delta *decimal.Decimal `json:"delta" binding:"required"`
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	Amount          string `json:"amount"`
	CurrentAmount   string `json:"current_amount"`
	EndDate         string `json:"end_date"`
	ProgressPercent int    `json:"progress_percent"`
	Remaining       string `json:"remaining"`
	Completed       bool   `json:"completed"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// GoalChangeResponse carries the affected goal and the collection after the write.
type GoalChangeResponse struct {
	Goal  GoalResponse   `json:"goal"`
	Goals []GoalResponse `json:"goals"`
}

// GoalStatusResponse is a goal in the overview.
type GoalStatusResponse struct {
	GoalResponse
	Overdue bool `json:"overdue"`
}

// GoalOverviewResponse splits goals into active and completed ones.
type GoalOverviewResponse struct {
	Active    []GoalStatusResponse `json:"active"`
	Completed []GoalStatusResponse `json:"completed"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g entity.Goal) GoalResponse {
	return GoalResponse{
		ID:              g.ID,
		Category:        g.Category,
		Amount:          amountString(g.Amount),
		CurrentAmount:   amountString(g.CurrentAmount),
		EndDate:         g.EndDate,
		ProgressPercent: g.ProgressPercent(),
		Remaining:       amountString(g.Remaining()),
		Completed:       g.IsCompleted(),
	}
}

// ToGoalListResponse converts goals to a GoalListResponse DTO.
func ToGoalListResponse(goals []entity.Goal) GoalListResponse {
	return GoalListResponse{Goals: toGoalResponses(goals)}
}

// ToGoalChangeResponse converts a facade change to its DTO.
func ToGoalChangeResponse(change *budget.GoalChange) GoalChangeResponse {
	return GoalChangeResponse{
		Goal:  ToGoalResponse(*change.Goal),
		Goals: toGoalResponses(change.Goals),
	}
}

// ToGoalOverviewResponse converts the facade overview to its DTO.
func ToGoalOverviewResponse(overview budget.GoalOverview) GoalOverviewResponse {
	convert := func(statuses []budget.GoalStatus) []GoalStatusResponse {
		responses := make([]GoalStatusResponse, len(statuses))
		for i, s := range statuses {
			responses[i] = GoalStatusResponse{
				GoalResponse: ToGoalResponse(s.Goal),
				Overdue:      s.Overdue,
			}
		}
		return responses
	}

	return GoalOverviewResponse{
		Active:    convert(overview.Active),
		Completed: convert(overview.Completed),
	}
}

func toGoalResponses(goals []entity.Goal) []GoalResponse {
	responses := make([]GoalResponse, len(goals))
	for i, g := range goals {
		responses[i] = ToGoalResponse(g)
	}
	return responses
}
