// Package expense contains the expense ledger.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/application/adapter"
	"github.com/finance-tracker/budget/internal/application/usecase/collection"
	"github.com/finance-tracker/budget/internal/domain/entity"
)

// StorageKey is the storage gateway key holding the expense collection.
const StorageKey = "expenses"

// AddExpenseInput represents the input for recording an expense.
// No field is validated here; callers validate before calling.
type AddExpenseInput struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        string
}

// Filter narrows a listing. Zero fields do not filter.
type Filter struct {
	Period   entity.Period
	Category string
	Search   string // case-insensitive, over description and category
}

// Ledger owns the expense records. It is safe for concurrent use.
type Ledger struct {
	mu    sync.RWMutex
	store *collection.Store[entity.Expense]
	ids   adapter.IDGenerator
}

// NewLedger creates a ledger initialized from the expenses key of gateway.
func NewLedger(ctx context.Context, gateway adapter.StorageGateway, ids adapter.IDGenerator) (*Ledger, error) {
	store, err := collection.Load[entity.Expense](ctx, gateway, StorageKey)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		store: store,
		ids:   ids,
	}, nil
}

// All returns a snapshot of every expense in insertion order.
func (l *Ledger) All() []entity.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.Snapshot()
}

// ByPeriod returns the expenses whose date starts with period.
func (l *Ledger) ByPeriod(period entity.Period) []entity.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.Filter(func(e entity.Expense) bool {
		return period.Matches(e.Date)
	})
}

// ByID returns the expense with the given identifier.
func (l *Ledger) ByID(id string) (entity.Expense, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, _, ok := l.store.Find(func(e entity.Expense) bool { return e.ID == id })
	return e, ok
}

// Add records a new expense under a fresh identifier and persists the ledger.
func (l *Ledger) Add(ctx context.Context, input AddExpenseInput) (*entity.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := collection.NewUniqueID(l.store, l.ids, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}

	expense := entity.NewExpense(id, input.Amount, input.Category, input.Description, input.Date)
	if err := l.store.Append(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}

	slog.DebugContext(ctx, "Expense added",
		"id", expense.ID,
		"category", expense.Category,
		"date", expense.Date,
	)

	return expense, nil
}

// Remove deletes the expense with the given identifier. An unknown identifier
// is not an error; the ledger is persisted either way.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.store.RemoveWhere(ctx, func(e entity.Expense) bool { return e.ID == id }); err != nil {
		return fmt.Errorf("failed to remove expense: %w", err)
	}
	return nil
}

// TotalByPeriod sums the amounts of the expenses in period, or of all expenses
// for entity.AllTime. An empty match sums to zero.
func (l *Ledger) TotalByPeriod(period entity.Period) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	l.store.Each(func(e entity.Expense) {
		if period.Matches(e.Date) {
			total = total.Add(e.Amount)
		}
	})
	return total
}

// ByCategory sums the amounts of the expenses in period per category.
// Categories without matching expenses are absent from the result.
func (l *Ledger) ByCategory(period entity.Period) map[string]decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	totals := make(map[string]decimal.Decimal)
	l.store.Each(func(e entity.Expense) {
		if !period.Matches(e.Date) {
			return
		}
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	})
	return totals
}

// Filter returns the expenses matching every non-zero field of f.
func (l *Ledger) Filter(f Filter) []entity.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	search := strings.ToLower(f.Search)
	return l.store.Filter(func(e entity.Expense) bool {
		if !f.Period.Matches(e.Date) {
			return false
		}
		if f.Category != "" && e.Category != f.Category {
			return false
		}
		if search == "" {
			return true
		}
		return strings.Contains(strings.ToLower(e.Description), search) ||
			strings.Contains(strings.ToLower(e.Category), search)
	})
}

func expenseID(e entity.Expense) string {
	return e.ID
}
