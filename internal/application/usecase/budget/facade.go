// Package budget contains the budget facade, the single entry point the HTTP
// API and the CLI use to reach the ledgers.
package budget

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/application/usecase/expense"
	"github.com/finance-tracker/budget/internal/application/usecase/goal"
	"github.com/finance-tracker/budget/internal/application/usecase/income"
	"github.com/finance-tracker/budget/internal/domain/entity"
	"github.com/finance-tracker/budget/internal/domain/valueobject"
)

// DefaultRecentLimit is the number of transactions RecentTransactions returns
// when no positive limit is given.
const DefaultRecentLimit = 5

// ExpenseLedger is the part of expense.Ledger the facade relies on.
type ExpenseLedger interface {
	All() []entity.Expense
	ByID(id string) (entity.Expense, bool)
	Add(ctx context.Context, input expense.AddExpenseInput) (*entity.Expense, error)
	Remove(ctx context.Context, id string) error
	TotalByPeriod(period entity.Period) decimal.Decimal
	ByCategory(period entity.Period) map[string]decimal.Decimal
	ByPeriod(period entity.Period) []entity.Expense
	Filter(f expense.Filter) []entity.Expense
}

// IncomeLedger is the part of income.Ledger the facade relies on.
type IncomeLedger interface {
	All() []entity.Income
	ByID(id string) (entity.Income, bool)
	Add(ctx context.Context, input income.AddIncomeInput) (*entity.Income, error)
	Remove(ctx context.Context, id string) error
	TotalByPeriod(period entity.Period) decimal.Decimal
	ByPeriod(period entity.Period) []entity.Income
	Filter(f income.Filter) []entity.Income
}

// GoalTracker is the part of goal.Tracker the facade relies on.
type GoalTracker interface {
	All() []entity.Goal
	ByID(id string) (entity.Goal, bool)
	Add(ctx context.Context, input goal.AddGoalInput) (*entity.Goal, error)
	UpdateProgress(ctx context.Context, id string, delta decimal.Decimal) (*entity.Goal, bool, error)
	Remove(ctx context.Context, id string) error
}

// ExpenseChange is the result of adding an expense: the new record and the
// full expense collection right after the write.
type ExpenseChange struct {
	Expense  *entity.Expense
	Expenses []entity.Expense
}

// IncomeChange is the result of adding an income.
type IncomeChange struct {
	Income  *entity.Income
	Incomes []entity.Income
}

// GoalChange is the result of adding a goal or recording progress.
type GoalChange struct {
	Goal  *entity.Goal
	Goals []entity.Goal
}

// GoalStatus is a goal together with its derived progress figures.
type GoalStatus struct {
	Goal            entity.Goal
	ProgressPercent int
	Remaining       decimal.Decimal
	Overdue         bool // end date already passed and target not reached
}

// GoalOverview splits goals by completion, each group ordered by end date.
type GoalOverview struct {
	Active    []GoalStatus
	Completed []GoalStatus
}

// Facade aggregates the expense ledger, income ledger and goal tracker.
type Facade struct {
	expenses ExpenseLedger
	incomes  IncomeLedger
	goals    GoalTracker
}

// NewFacade creates a facade over already constructed components.
func NewFacade(expenses ExpenseLedger, incomes IncomeLedger, goals GoalTracker) *Facade {
	return &Facade{
		expenses: expenses,
		incomes:  incomes,
		goals:    goals,
	}
}

// AddExpense records an expense.
func (f *Facade) AddExpense(ctx context.Context, input expense.AddExpenseInput) (*ExpenseChange, error) {
	created, err := f.expenses.Add(ctx, input)
	if err != nil {
		return nil, err
	}
	return &ExpenseChange{Expense: created, Expenses: f.expenses.All()}, nil
}

// AddIncome records an income.
func (f *Facade) AddIncome(ctx context.Context, input income.AddIncomeInput) (*IncomeChange, error) {
	created, err := f.incomes.Add(ctx, input)
	if err != nil {
		return nil, err
	}
	return &IncomeChange{Income: created, Incomes: f.incomes.All()}, nil
}

// AddGoal creates a savings goal with zero progress.
func (f *Facade) AddGoal(ctx context.Context, input goal.AddGoalInput) (*GoalChange, error) {
	created, err := f.goals.Add(ctx, input)
	if err != nil {
		return nil, err
	}
	return &GoalChange{Goal: created, Goals: f.goals.All()}, nil
}

// UpdateGoalProgress adds delta to a goal's accumulated amount. found is false
// for an unknown goal, in which case the change is nil.
func (f *Facade) UpdateGoalProgress(ctx context.Context, id string, delta decimal.Decimal) (*GoalChange, bool, error) {
	updated, found, err := f.goals.UpdateProgress(ctx, id, delta)
	if err != nil || !found {
		return nil, found, err
	}
	return &GoalChange{Goal: updated, Goals: f.goals.All()}, true, nil
}

// RemoveExpense deletes an expense and returns the remaining ones.
func (f *Facade) RemoveExpense(ctx context.Context, id string) ([]entity.Expense, error) {
	if err := f.expenses.Remove(ctx, id); err != nil {
		return nil, err
	}
	return f.expenses.All(), nil
}

// RemoveIncome deletes an income and returns the remaining ones.
func (f *Facade) RemoveIncome(ctx context.Context, id string) ([]entity.Income, error) {
	if err := f.incomes.Remove(ctx, id); err != nil {
		return nil, err
	}
	return f.incomes.All(), nil
}

// RemoveGoal deletes a goal and returns the remaining ones.
func (f *Facade) RemoveGoal(ctx context.Context, id string) ([]entity.Goal, error) {
	if err := f.goals.Remove(ctx, id); err != nil {
		return nil, err
	}
	return f.goals.All(), nil
}

// GetTotalExpenses sums the expenses of period.
func (f *Facade) GetTotalExpenses(period entity.Period) decimal.Decimal {
	return f.expenses.TotalByPeriod(period)
}

// GetTotalIncome sums the incomes of period.
func (f *Facade) GetTotalIncome(period entity.Period) decimal.Decimal {
	return f.incomes.TotalByPeriod(period)
}

// GetExpensesByCategory sums the expenses of period per category.
func (f *Facade) GetExpensesByCategory(period entity.Period) map[string]decimal.Decimal {
	return f.expenses.ByCategory(period)
}

// Expenses returns every expense.
func (f *Facade) Expenses() []entity.Expense {
	return f.expenses.All()
}

// Incomes returns every income.
func (f *Facade) Incomes() []entity.Income {
	return f.incomes.All()
}

// Goals returns every goal.
func (f *Facade) Goals() []entity.Goal {
	return f.goals.All()
}

// Expense returns one expense.
func (f *Facade) Expense(id string) (entity.Expense, bool) {
	return f.expenses.ByID(id)
}

// Income returns one income.
func (f *Facade) Income(id string) (entity.Income, bool) {
	return f.incomes.ByID(id)
}

// Goal returns one goal.
func (f *Facade) Goal(id string) (entity.Goal, bool) {
	return f.goals.ByID(id)
}

// FilterExpenses lists the expenses matching filter.
func (f *Facade) FilterExpenses(filter expense.Filter) []entity.Expense {
	return f.expenses.Filter(filter)
}

// FilterIncomes lists the incomes matching filter.
func (f *Facade) FilterIncomes(filter income.Filter) []entity.Income {
	return f.incomes.Filter(filter)
}

// GetSummary computes totals, balance, savings rate and the category
// breakdown of period.
func (f *Facade) GetSummary(period entity.Period) valueobject.Summary {
	return valueobject.NewSummary(
		period.String(),
		f.incomes.TotalByPeriod(period),
		f.expenses.TotalByPeriod(period),
		f.expenses.ByCategory(period),
	)
}

// RecentTransactions merges the expenses and incomes of period, newest date
// first, and keeps at most limit of them. Records sharing a date keep their
// insertion order with expenses before incomes.
func (f *Facade) RecentTransactions(period entity.Period, limit int) []entity.Transaction {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	expenses := f.expenses.ByPeriod(period)
	incomes := f.incomes.ByPeriod(period)

	transactions := make([]entity.Transaction, 0, len(expenses)+len(incomes))
	for _, e := range expenses {
		transactions = append(transactions, entity.TransactionFromExpense(e))
	}
	for _, i := range incomes {
		transactions = append(transactions, entity.TransactionFromIncome(i))
	}

	sort.SliceStable(transactions, func(a, b int) bool {
		return transactions[a].Date > transactions[b].Date
	})

	if len(transactions) > limit {
		transactions = transactions[:limit]
	}
	return transactions
}

// GoalOverview splits the goals into active and completed ones. today is a
// YYYY-MM-DD date used to flag active goals whose end date has passed.
func (f *Facade) GoalOverview(today string) GoalOverview {
	overview := GoalOverview{
		Active:    []GoalStatus{},
		Completed: []GoalStatus{},
	}

	for _, g := range f.goals.All() {
		status := GoalStatus{
			Goal:            g,
			ProgressPercent: g.ProgressPercent(),
			Remaining:       g.Remaining(),
		}
		if g.IsCompleted() {
			overview.Completed = append(overview.Completed, status)
			continue
		}
		status.Overdue = !g.IsActiveOn(today)
		overview.Active = append(overview.Active, status)
	}

	byEndDate := func(statuses []GoalStatus) {
		sort.SliceStable(statuses, func(a, b int) bool {
			return statuses[a].Goal.EndDate < statuses[b].Goal.EndDate
		})
	}
	byEndDate(overview.Active)
	byEndDate(overview.Completed)

	return overview
}
