// Package collection keeps a named, JSON-serialized collection of records in
// memory and writes it through a storage gateway as a whole on every change.
package collection

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/finance-tracker/budget/internal/application/adapter"
)

// Store holds the in-memory copy of one collection. It is not safe for
// concurrent use; callers serialize access.
type Store[T any] struct {
	gateway adapter.StorageGateway
	key     string
	items   []T
}

// Load reads key from the gateway. A key that was never written, or whose data
// cannot be decoded, yields an empty collection. Only gateway failures are returned.
func Load[T any](ctx context.Context, gateway adapter.StorageGateway, key string) (*Store[T], error) {
	s := &Store[T]{
		gateway: gateway,
		key:     key,
		items:   []T{},
	}

	data, found, err := gateway.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if !found {
		return s, nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.WarnContext(ctx, "Stored collection is malformed, starting empty",
			"key", key,
			"error", err,
		)
		return s, nil
	}
	if items != nil {
		s.items = items
	}

	return s, nil
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Snapshot returns a copy of the records in insertion order.
func (s *Store[T]) Snapshot() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Each calls fn for every record in insertion order.
func (s *Store[T]) Each(fn func(item T)) {
	for _, item := range s.items {
		fn(item)
	}
}

// Find returns the first record matching pred and its index.
func (s *Store[T]) Find(pred func(item T) bool) (T, int, bool) {
	for i, item := range s.items {
		if pred(item) {
			return item, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// Filter returns a new slice with the records matching pred.
func (s *Store[T]) Filter(pred func(item T) bool) []T {
	out := make([]T, 0)
	for _, item := range s.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// Append adds item and persists the full collection.
func (s *Store[T]) Append(ctx context.Context, item T) error {
	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	next = append(next, item)
	return s.replace(ctx, next)
}

// ReplaceAt swaps the record at index i and persists the full collection.
func (s *Store[T]) ReplaceAt(ctx context.Context, i int, item T) error {
	next := s.Snapshot()
	next[i] = item
	return s.replace(ctx, next)
}

// RemoveWhere drops every record matching pred and persists the full
// collection, even when nothing matched. It returns the number removed.
func (s *Store[T]) RemoveWhere(ctx context.Context, pred func(item T) bool) (int, error) {
	next := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if !pred(item) {
			next = append(next, item)
		}
	}
	removed := len(s.items) - len(next)
	if err := s.replace(ctx, next); err != nil {
		return 0, err
	}
	return removed, nil
}

// replace persists next and only then makes it the in-memory state, so a
// failed write leaves the previous records untouched.
func (s *Store[T]) replace(ctx context.Context, next []T) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", s.key, err)
	}

	if err := s.gateway.Set(ctx, s.key, data); err != nil {
		slog.ErrorContext(ctx, "Failed to persist collection",
			"key", s.key,
			"records", len(next),
			"error", err,
		)
		return fmt.Errorf("failed to persist %s: %w", s.key, err)
	}

	s.items = next
	return nil
}
