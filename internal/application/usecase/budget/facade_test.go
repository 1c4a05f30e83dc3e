package budget

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finance-tracker/budget/internal/application/adapter"
	"github.com/finance-tracker/budget/internal/application/usecase/expense"
	"github.com/finance-tracker/budget/internal/application/usecase/goal"
	"github.com/finance-tracker/budget/internal/application/usecase/income"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/integration/adapters"
	"github.com/finance-tracker/budget/internal/integration/persistence"
)

func newFacade(t *testing.T, gateway adapter.StorageGateway) *Facade {
	t.Helper()
	ctx := context.Background()
	ids := adapters.NewUUIDGenerator()

	expenses, err := expense.NewLedger(ctx, gateway, ids)
	require.NoError(t, err)
	incomes, err := income.NewLedger(ctx, gateway, ids)
	require.NoError(t, err)
	goals, err := goal.NewTracker(ctx, gateway, ids)
	require.NoError(t, err)

	return NewFacade(expenses, incomes, goals)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFacade_ExpenseScenario(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	for _, in := range []expense.AddExpenseInput{
		{Amount: dec("100"), Category: "Food", Description: "market", Date: "2024-03-02"},
		{Amount: dec("200"), Category: "Food", Description: "dinner", Date: "2024-03-09"},
		{Amount: dec("300"), Category: "Transport", Description: "train", Date: "2024-03-20"},
	} {
		_, err := facade.AddExpense(ctx, in)
		require.NoError(t, err)
	}

	assert.True(t, dec("600").Equal(facade.GetTotalExpenses("2024-03")))

	byCategory := facade.GetExpensesByCategory("2024-03")
	require.Len(t, byCategory, 2)
	assert.True(t, dec("300").Equal(byCategory["Food"]))
	assert.True(t, dec("300").Equal(byCategory["Transport"]))
}

func TestFacade_MutationsReturnSnapshots(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	first, err := facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("10"), Category: "Food", Date: "2024-01-01"})
	require.NoError(t, err)
	assert.Len(t, first.Expenses, 1)

	second, err := facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("20"), Category: "Food", Date: "2024-01-02"})
	require.NoError(t, err)
	assert.Len(t, second.Expenses, 2)
	assert.Len(t, first.Expenses, 1, "earlier snapshots must not change")

	remaining, err := facade.RemoveExpense(ctx, first.Expense.ID)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, second.Expense.ID, remaining[0].ID)

	remaining, err = facade.RemoveExpense(ctx, "unknown")
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	inc, err := facade.AddIncome(ctx, income.AddIncomeInput{Amount: dec("50"), Source: "Gifts", Date: "2024-01-05"})
	require.NoError(t, err)
	assert.Len(t, inc.Incomes, 1)

	incomes, err := facade.RemoveIncome(ctx, inc.Income.ID)
	require.NoError(t, err)
	assert.Empty(t, incomes)
}

func TestFacade_GoalScenario(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	created, err := facade.AddGoal(ctx, goal.AddGoalInput{Category: "Vacation", Amount: dec("2000"), EndDate: "2024-12-31"})
	require.NoError(t, err)
	assert.True(t, created.Goal.CurrentAmount.IsZero())

	_, found, err := facade.UpdateGoalProgress(ctx, created.Goal.ID, dec("1000"))
	require.NoError(t, err)
	require.True(t, found)

	change, found, err := facade.UpdateGoalProgress(ctx, created.Goal.ID, dec("500"))
	require.NoError(t, err)
	require.True(t, found)
	assert.True(t, dec("1500").Equal(change.Goal.CurrentAmount))
	require.Len(t, change.Goals, 1)
	assert.True(t, dec("1500").Equal(change.Goals[0].CurrentAmount))

	change, found, err = facade.UpdateGoalProgress(ctx, "missing", dec("1"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, change)

	goals, err := facade.RemoveGoal(ctx, created.Goal.ID)
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestFacade_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	gateway := persistence.NewMemoryStorage()

	facade := newFacade(t, gateway)
	_, err := facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("12.30"), Category: "Health", Date: "2024-02-11"})
	require.NoError(t, err)
	_, err = facade.AddIncome(ctx, income.AddIncomeInput{Amount: dec("900"), Source: "Salary", Date: "2024-02-01", IsRecurring: true})
	require.NoError(t, err)
	_, err = facade.AddGoal(ctx, goal.AddGoalInput{Category: "Bike", Amount: dec("400"), EndDate: "2024-08-01"})
	require.NoError(t, err)

	reopened := newFacade(t, gateway)
	assert.Len(t, reopened.Expenses(), 1)
	assert.Len(t, reopened.Incomes(), 1)
	assert.Len(t, reopened.Goals(), 1)
	assert.True(t, dec("900").Equal(reopened.GetTotalIncome(entity.AllTime)))
}

func TestFacade_GetSummary(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	_, err := facade.AddIncome(ctx, income.AddIncomeInput{Amount: dec("2000"), Source: "Salary", Date: "2024-05-01"})
	require.NoError(t, err)
	_, err = facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("500"), Category: "Housing", Date: "2024-05-03"})
	require.NoError(t, err)
	_, err = facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("300"), Category: "Groceries", Date: "2024-05-10"})
	require.NoError(t, err)
	_, err = facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("999"), Category: "Travel", Date: "2024-06-10"})
	require.NoError(t, err)

	summary := facade.GetSummary("2024-05")

	assert.Equal(t, "2024-05", summary.Period)
	assert.True(t, dec("2000").Equal(summary.TotalIncome))
	assert.True(t, dec("800").Equal(summary.TotalExpenses))
	assert.True(t, dec("1200").Equal(summary.Balance))
	assert.Equal(t, 60, summary.SavingsRate)
	require.Len(t, summary.Categories, 2)
	assert.Equal(t, "Housing", summary.Categories[0].Category)
	assert.Equal(t, 63, summary.Categories[0].Percentage)
	assert.Equal(t, "Groceries", summary.Categories[1].Category)
	assert.Equal(t, 38, summary.Categories[1].Percentage)

	empty := facade.GetSummary("2023-01")
	assert.Equal(t, 0, empty.SavingsRate)
	assert.Empty(t, empty.Categories)
}

func TestFacade_RecentTransactions(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	dates := []string{"2024-07-03", "2024-07-28", "2024-07-10", "2024-07-15", "2024-07-01", "2024-06-30"}
	for _, d := range dates {
		_, err := facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("1"), Category: "Other", Date: d})
		require.NoError(t, err)
	}
	_, err := facade.AddIncome(ctx, income.AddIncomeInput{Amount: dec("100"), Source: "Salary", Date: "2024-07-20"})
	require.NoError(t, err)

	recent := facade.RecentTransactions("2024-07", 0)
	require.Len(t, recent, DefaultRecentLimit)

	gotDates := make([]string, 0, len(recent))
	for _, tx := range recent {
		gotDates = append(gotDates, tx.Date)
	}
	assert.Equal(t, []string{"2024-07-28", "2024-07-20", "2024-07-15", "2024-07-10", "2024-07-03"}, gotDates)
	assert.Equal(t, entity.TransactionTypeIncome, recent[1].Type)
	assert.Equal(t, "Salary", recent[1].Label)

	assert.Len(t, facade.RecentTransactions(entity.AllTime, 10), 7)
	assert.Len(t, facade.RecentTransactions("2024-07", 2), 2)
}

func TestFacade_GoalOverview(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	add := func(category, amount, endDate, progress string) {
		t.Helper()
		change, err := facade.AddGoal(ctx, goal.AddGoalInput{Category: category, Amount: dec(amount), EndDate: endDate})
		require.NoError(t, err)
		if progress != "" {
			_, _, err = facade.UpdateGoalProgress(ctx, change.Goal.ID, dec(progress))
			require.NoError(t, err)
		}
	}

	add("Laptop", "1000", "2024-12-01", "250")
	add("Phone", "500", "2024-03-01", "")
	add("Course", "300", "2024-06-01", "300")
	add("Trip", "800", "2024-01-15", "900")

	overview := facade.GoalOverview("2024-05-01")

	require.Len(t, overview.Active, 2)
	assert.Equal(t, "Phone", overview.Active[0].Goal.Category)
	assert.True(t, overview.Active[0].Overdue)
	assert.Equal(t, "Laptop", overview.Active[1].Goal.Category)
	assert.False(t, overview.Active[1].Overdue)
	assert.Equal(t, 25, overview.Active[1].ProgressPercent)
	assert.True(t, dec("750").Equal(overview.Active[1].Remaining))

	require.Len(t, overview.Completed, 2)
	assert.Equal(t, "Trip", overview.Completed[0].Goal.Category)
	assert.Equal(t, "Course", overview.Completed[1].Goal.Category)
	assert.True(t, overview.Completed[0].Remaining.IsZero())
}

func TestFacade_Filters(t *testing.T) {
	ctx := context.Background()
	facade := newFacade(t, persistence.NewMemoryStorage())

	_, err := facade.AddExpense(ctx, expense.AddExpenseInput{Amount: dec("5"), Category: "Restaurants", Description: "Pizza night", Date: "2024-09-01"})
	require.NoError(t, err)
	_, err = facade.AddIncome(ctx, income.AddIncomeInput{Amount: dec("70"), Source: "Sales", Description: "Old bike", Date: "2024-09-02"})
	require.NoError(t, err)

	assert.Len(t, facade.FilterExpenses(expense.Filter{Search: "pizza"}), 1)
	assert.Empty(t, facade.FilterExpenses(expense.Filter{Category: "Travel"}))
	assert.Len(t, facade.FilterIncomes(income.Filter{Period: "2024-09", Search: "BIKE"}), 1)
}
