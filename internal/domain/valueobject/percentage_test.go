package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		total    string
		expected int
	}{
		{name: "zero total", value: "10", total: "0", expected: 0},
		{name: "half", value: "50", total: "100", expected: 50},
		{name: "rounds up at half", value: "1", total: "8", expected: 13},
		{name: "rounds down", value: "1", total: "3", expected: 33},
		{name: "exceeds total", value: "7500", total: "5000", expected: 150},
		{name: "negative value", value: "-250", total: "1000", expected: -25},
		{name: "positive half rounds away from zero", value: "25", total: "1000", expected: 3},
		{name: "negative half rounds away from zero", value: "-25", total: "1000", expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentage(decimal.RequireFromString(tt.value), decimal.RequireFromString(tt.total))
			if got != tt.expected {
				t.Errorf("Percentage(%s, %s) = %d, expected %d", tt.value, tt.total, got, tt.expected)
			}
		})
	}
}

func TestBreakdown(t *testing.T) {
	items, total := Breakdown(map[string]decimal.Decimal{
		"Food":      decimal.NewFromInt(300),
		"Transport": decimal.NewFromInt(300),
		"Health":    decimal.NewFromInt(400),
	})

	if !total.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected total 1000, got %s", total)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	expectedOrder := []string{"Health", "Food", "Transport"}
	for i, category := range expectedOrder {
		if items[i].Category != category {
			t.Errorf("item %d: expected %s, got %s", i, category, items[i].Category)
		}
	}
	if items[0].Percentage != 40 || items[1].Percentage != 30 {
		t.Errorf("unexpected percentages: %d, %d", items[0].Percentage, items[1].Percentage)
	}
}

func TestNewSummary(t *testing.T) {
	t.Run("positive balance", func(t *testing.T) {
		s := NewSummary("2024-03", decimal.NewFromInt(2000), decimal.NewFromInt(1500), nil)
		if !s.Balance.Equal(decimal.NewFromInt(500)) {
			t.Errorf("expected balance 500, got %s", s.Balance)
		}
		if s.SavingsRate != 25 {
			t.Errorf("expected savings rate 25, got %d", s.SavingsRate)
		}
		if len(s.Categories) != 0 {
			t.Errorf("expected no categories, got %d", len(s.Categories))
		}
	})

	t.Run("no income", func(t *testing.T) {
		s := NewSummary("2024-03", decimal.Zero, decimal.NewFromInt(100), nil)
		if !s.Balance.Equal(decimal.NewFromInt(-100)) {
			t.Errorf("expected balance -100, got %s", s.Balance)
		}
		if s.SavingsRate != 0 {
			t.Errorf("expected savings rate 0 without income, got %d", s.SavingsRate)
		}
	})
}
