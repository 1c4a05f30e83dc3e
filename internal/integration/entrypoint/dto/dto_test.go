package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/domain/entity"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
)

func TestCreateExpenseRequest_Validate(t *testing.T) {
	valid := CreateExpenseRequest{
		Amount:   decimal.RequireFromString("12.50"),
		Category: "Groceries",
		Date:     "2024-03-01",
	}

	tests := []struct {
		name     string
		mutate   func(r *CreateExpenseRequest)
		wantCode domainerror.BudgetErrorCode
	}{
		{name: "valid", mutate: func(*CreateExpenseRequest) {}},
		{name: "zero amount", mutate: func(r *CreateExpenseRequest) { r.Amount = decimal.Zero }, wantCode: domainerror.ErrCodeInvalidAmount},
		{name: "negative amount", mutate: func(r *CreateExpenseRequest) { r.Amount = decimal.NewFromInt(-3) }, wantCode: domainerror.ErrCodeInvalidAmount},
		{name: "blank category", mutate: func(r *CreateExpenseRequest) { r.Category = "  " }, wantCode: domainerror.ErrCodeEmptyLabel},
		{name: "impossible date", mutate: func(r *CreateExpenseRequest) { r.Date = "2024-02-30" }, wantCode: domainerror.ErrCodeInvalidDate},
		{name: "slash date", mutate: func(r *CreateExpenseRequest) { r.Date = "2024/03/01" }, wantCode: domainerror.ErrCodeInvalidDate},
		{name: "long description", mutate: func(r *CreateExpenseRequest) { r.Description = strings.Repeat("a", MaxDescriptionLength+1) }, wantCode: domainerror.ErrCodeDescriptionTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Fatalf("expected a BudgetError, got %v", err)
			}
			if budgetErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, budgetErr.Code)
			}
		})
	}
}

func TestCreateIncomeRequest_AcceptsNumericAndStringAmounts(t *testing.T) {
	for _, body := range []string{
		`{"amount": 1500.25, "source": "Salary", "date": "2024-01-31", "is_recurring": true}`,
		`{"amount": "1500.25", "source": "Salary", "date": "2024-01-31", "is_recurring": true}`,
	} {
		var req CreateIncomeRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatalf("unexpected error for %s: %v", body, err)
		}
		if err := req.Validate(); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}
		input := req.ToInput()
		if !input.Amount.Equal(decimal.RequireFromString("1500.25")) {
			t.Errorf("expected 1500.25, got %s", input.Amount)
		}
		if !input.IsRecurring {
			t.Error("expected recurring income")
		}
	}
}

func TestToGoalResponse(t *testing.T) {
	g := entity.Goal{
		ID:            "g1",
		Category:      "Vacation",
		Amount:        decimal.NewFromInt(2000),
		CurrentAmount: decimal.NewFromInt(1500),
		EndDate:       "2024-12-31",
	}

	resp := ToGoalResponse(g)

	if resp.CurrentAmount != "1500" {
		t.Errorf("expected current amount 1500, got %s", resp.CurrentAmount)
	}
	if resp.ProgressPercent != 75 {
		t.Errorf("expected 75%%, got %d", resp.ProgressPercent)
	}
	if resp.Remaining != "500" {
		t.Errorf("expected remaining 500, got %s", resp.Remaining)
	}
	if resp.Completed {
		t.Error("expected goal not completed")
	}
}

func TestToCategoryBreakdownResponse(t *testing.T) {
	resp := ToCategoryBreakdownResponse("2024-03", map[string]decimal.Decimal{
		"Food":      decimal.NewFromInt(300),
		"Transport": decimal.NewFromInt(300),
	})

	if resp.Total != "600" {
		t.Errorf("expected total 600, got %s", resp.Total)
	}
	if len(resp.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(resp.Categories))
	}
	if resp.Categories[0].Category != "Food" || resp.Categories[0].Percentage != 50 {
		t.Errorf("unexpected first category: %+v", resp.Categories[0])
	}
}
