// Package goal contains the savings goal tracker.
package goal

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/budget/internal/application/adapter"
	"github.com/finance-tracker/budget/internal/application/usecase/collection"
	"github.com/finance-tracker/budget/internal/domain/entity"
)

// StorageKey is the storage gateway key holding the goal collection.
const StorageKey = "goals"

// AddGoalInput represents the input for goal creation. Progress always
// starts at zero, so there is no current amount to supply.
type AddGoalInput struct {
	Category string
	Amount   decimal.Decimal
	EndDate  string
}

// Tracker owns the savings goals. It is safe for concurrent use.
type Tracker struct {
	mu    sync.RWMutex
	store *collection.Store[entity.Goal]
	ids   adapter.IDGenerator
}

// NewTracker creates a tracker initialized from the goals key of gateway.
func NewTracker(ctx context.Context, gateway adapter.StorageGateway, ids adapter.IDGenerator) (*Tracker, error) {
	store, err := collection.Load[entity.Goal](ctx, gateway, StorageKey)
	if err != nil {
		return nil, err
	}

	return &Tracker{
		store: store,
		ids:   ids,
	}, nil
}

// All returns a snapshot of every goal in insertion order.
func (t *Tracker) All() []entity.Goal {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.store.Snapshot()
}

// ByID returns the goal with the given identifier.
func (t *Tracker) ByID(id string) (entity.Goal, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	g, _, ok := t.store.Find(func(g entity.Goal) bool { return g.ID == id })
	return g, ok
}

// Add creates a goal with zero progress and persists the tracker.
func (t *Tracker) Add(ctx context.Context, input AddGoalInput) (*entity.Goal, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	id, err := collection.NewUniqueID(t.store, t.ids, func(g entity.Goal) string { return g.ID })
	if err != nil {
		return nil, fmt.Errorf("failed to add goal: %w", err)
	}

	goal := entity.NewGoal(id, input.Category, input.Amount, input.EndDate)
	if err := t.store.Append(ctx, *goal); err != nil {
		return nil, fmt.Errorf("failed to add goal: %w", err)
	}

	slog.DebugContext(ctx, "Goal added",
		"id", goal.ID,
		"category", goal.Category,
		"end_date", goal.EndDate,
	)

	return goal, nil
}

// UpdateProgress adds delta, which may be negative, to the goal's accumulated
// amount. The result is stored as is, even when it leaves [0, Amount].
//
// found is false for an unknown identifier; nothing is written in that case.
func (t *Tracker) UpdateProgress(ctx context.Context, id string, delta decimal.Decimal) (*entity.Goal, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	current, idx, ok := t.store.Find(func(g entity.Goal) bool { return g.ID == id })
	if !ok {
		return nil, false, nil
	}

	updated := current.WithProgress(delta)
	if err := t.store.ReplaceAt(ctx, idx, updated); err != nil {
		return nil, true, fmt.Errorf("failed to update goal progress: %w", err)
	}

	if updated.CurrentAmount.IsNegative() || updated.CurrentAmount.GreaterThan(updated.Amount) {
		slog.InfoContext(ctx, "Goal progress outside target range",
			"id", updated.ID,
			"current_amount", updated.CurrentAmount.String(),
			"amount", updated.Amount.String(),
		)
	}

	return &updated, true, nil
}

// Remove deletes the goal with the given identifier. Unknown identifiers are
// ignored.
func (t *Tracker) Remove(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := t.store.RemoveWhere(ctx, func(g entity.Goal) bool { return g.ID == id }); err != nil {
		return fmt.Errorf("failed to remove goal: %w", err)
	}
	return nil
}
