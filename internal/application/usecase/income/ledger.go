// Package income contains the income ledger.
package income

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

// StorageKey is the storage gateway key holding the income collection.
const StorageKey = "incomes"

// AddIncomeInput represents the input for recording an income.
type AddIncomeInput struct {
	Amount      decimal.Decimal
	Source      string
	Description string
	Date        string
	IsRecurring bool
}

// Filter narrows a listing. Zero fields do not filter.
type Filter struct {
	Period entity.Period
	Source string
	Search string // case-insensitive, over description and source
}

// Ledger owns the income records. It is safe for concurrent use.
type Ledger struct {
	mu    sync.RWMutex
	store *collection.Store[entity.Income]
	ids   adapter.IDGenerator
}

// NewLedger creates a ledger initialized from the incomes key of gateway.
func NewLedger(ctx context.Context, gateway adapter.StorageGateway, ids adapter.IDGenerator) (*Ledger, error) {
	store, err := collection.Load[entity.Income](ctx, gateway, StorageKey)
	if err != nil {
		return nil, err
	}

	return &Ledger{
		store: store,
		ids:   ids,
	}, nil
}

// All returns a snapshot of every income in insertion order.
func (l *Ledger) All() []entity.Income {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.Snapshot()
}

// ByPeriod returns the incomes whose date starts with period.
func (l *Ledger) ByPeriod(period entity.Period) []entity.Income {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.store.Filter(func(i entity.Income) bool {
		return period.Matches(i.Date)
	})
}

// ByID returns the income with the given identifier.
func (l *Ledger) ByID(id string) (entity.Income, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	i, _, ok := l.store.Find(func(i entity.Income) bool { return i.ID == id })
	return i, ok
}

// Add records a new income and persists the ledger.
func (l *Ledger) Add(ctx context.Context, input AddIncomeInput) (*entity.Income, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	id, err := collection.NewUniqueID(l.store, l.ids, func(i entity.Income) string { return i.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to add income: %w", err)
	}

	income := entity.NewIncome(id, input.Amount, input.Source, input.Description, input.Date, input.IsRecurring)
	if err := l.store.Append(ctx, *income); err != nil {
		return nil, fmt.Errorf("failed to add income: %w", err)
	}

	slog.DebugContext(ctx, "Income added",
		"id", income.ID,
		"source", income.Source,
		"recurring", income.IsRecurring,
	)

	return income, nil
}

// Remove deletes the income with the given identifier. Unknown identifiers
// are ignored.
func (l *Ledger) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.store.RemoveWhere(ctx, func(i entity.Income) bool { return i.ID == id }); err != nil {
		return fmt.Errorf("failed to remove income: %w", err)
	}
	return nil
}

// TotalByPeriod sums the amounts of the incomes in period.
func (l *Ledger) TotalByPeriod(period entity.Period) decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := decimal.Zero
	l.store.Each(func(i entity.Income) {
		if period.Matches(i.Date) {
			total = total.Add(i.Amount)
		}
	})
	return total
}

// Filter returns the incomes matching every non-zero field of f.
func (l *Ledger) Filter(f Filter) []entity.Income {
	l.mu.RLock()
	defer l.mu.RUnlock()

	search := strings.ToLower(f.Search)
	return l.store.Filter(func(i entity.Income) bool {
		switch {
		case !f.Period.Matches(i.Date):
			return false
		case f.Source != "" && i.Source != f.Source:
			return false
		case search == "":
			return true
		}
		return strings.Contains(strings.ToLower(i.Description), search) ||
			strings.Contains(strings.ToLower(i.Source), search)
	})
}
