package valueobject

import (
	"sort"

	"github.com/shopspring/decimal"
)

// CategoryTotal is one slice of a category breakdown.
type CategoryTotal struct {
	Category   string
	Amount     decimal.Decimal
	Percentage int // share of the breakdown total
}

// Breakdown converts per-category sums into slices sorted by amount descending,
// then by category name, each with its share of the overall total.
func Breakdown(byCategory map[string]decimal.Decimal) ([]CategoryTotal, decimal.Decimal) {
	total := decimal.Zero
	for _, amount := range byCategory {
		total = total.Add(amount)
	}

	items := make([]CategoryTotal, 0, len(byCategory))
	for category, amount := range byCategory {
		items = append(items, CategoryTotal{
			Category:   category,
			Amount:     amount,
			Percentage: Percentage(amount, total),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if cmp := items[i].Amount.Cmp(items[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return items[i].Category < items[j].Category
	})

	return items, total
}

// Summary aggregates a period's income and spending.
type Summary struct {
	Period        string
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Balance       decimal.Decimal
	SavingsRate   int // balance as a percentage of income, 0 without income
	Categories    []CategoryTotal
}

// NewSummary derives balance and savings rate from the period totals.
func NewSummary(period string, income, expenses decimal.Decimal, byCategory map[string]decimal.Decimal) Summary {
	balance := income.Sub(expenses)
	savingsRate := 0
	if income.IsPositive() {
		savingsRate = Percentage(balance, income)
	}
	categories, _ := Breakdown(byCategory)

	return Summary{
		Period:        period,
		TotalIncome:   income,
		TotalExpenses: expenses,
		Balance:       balance,
		SavingsRate:   savingsRate,
		Categories:    categories,
	}
}
