package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewGoal_StartsAtZero(t *testing.T) {
	goal := NewGoal("g-1", "Vacation", decimal.NewFromInt(5000), "2024-12-31")

	if !goal.CurrentAmount.IsZero() {
		t.Errorf("expected current amount 0, got %s", goal.CurrentAmount)
	}
	if goal.IsCompleted() {
		t.Error("expected new goal not to be completed")
	}
	if !goal.Remaining().Equal(decimal.NewFromInt(5000)) {
		t.Errorf("expected remaining 5000, got %s", goal.Remaining())
	}
}

func TestGoal_WithProgress(t *testing.T) {
	goal := *NewGoal("g-1", "Vacation", decimal.NewFromInt(5000), "2024-12-31")

	t.Run("accumulates deltas", func(t *testing.T) {
		updated := goal.WithProgress(decimal.NewFromInt(1000)).WithProgress(decimal.NewFromInt(500))
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected 1500, got %s", updated.CurrentAmount)
		}
		if updated.ProgressPercent() != 30 {
			t.Errorf("expected 30%%, got %d", updated.ProgressPercent())
		}
		if !goal.CurrentAmount.IsZero() {
			t.Error("expected original goal to be unchanged")
		}
	})

	t.Run("does not clamp above target", func(t *testing.T) {
		updated := goal.WithProgress(decimal.NewFromInt(6000))
		if !updated.IsCompleted() {
			t.Error("expected goal to be completed")
		}
		if !updated.Remaining().IsZero() {
			t.Errorf("expected remaining 0, got %s", updated.Remaining())
		}
		if updated.ProgressPercent() != 120 {
			t.Errorf("expected 120%%, got %d", updated.ProgressPercent())
		}
	})

	t.Run("does not clamp below zero", func(t *testing.T) {
		updated := goal.WithProgress(decimal.NewFromInt(-200))
		if !updated.CurrentAmount.Equal(decimal.NewFromInt(-200)) {
			t.Errorf("expected -200, got %s", updated.CurrentAmount)
		}
	})
}

func TestGoal_IsActiveOn(t *testing.T) {
	goal := NewGoal("g-1", "Vacation", decimal.NewFromInt(5000), "2024-12-31")

	if !goal.IsActiveOn("2024-12-31") {
		t.Error("expected goal to be active on its end date")
	}
	if !goal.IsActiveOn("2024-06-01") {
		t.Error("expected goal to be active before its end date")
	}
	if goal.IsActiveOn("2025-01-01") {
		t.Error("expected goal to be inactive after its end date")
	}
}

func TestIsKnownLabel(t *testing.T) {
	if !IsKnownLabel(CategoryTypeExpense, "Groceries") {
		t.Error("expected Groceries to be a known expense category")
	}
	if IsKnownLabel(CategoryTypeExpense, "Salary") {
		t.Error("expected Salary not to be an expense category")
	}
	if !IsKnownLabel(CategoryTypeIncome, OtherLabel) {
		t.Error("expected Other to be a known income source")
	}
}
