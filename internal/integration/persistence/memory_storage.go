// Package persistence implements the storage gateway over the supported backends.
package persistence

import (
	"context"
	"sync"

	"github.com/finance-tracker/budget/internal/application/adapter"
)

// memoryStorage keeps collections in process memory. Nothing survives a restart.
type memoryStorage struct {
	mu    sync.RWMutex
	items map[string][]byte
}

// NewMemoryStorage creates an empty in-memory storage gateway.
func NewMemoryStorage() adapter.StorageGateway {
	return &memoryStorage{
		items: make(map[string][]byte),
	}
}

// Get returns a copy of the bytes stored under key.
func (s *memoryStorage) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.items[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// Set stores a copy of data under key.
func (s *memoryStorage) Set(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = append([]byte(nil), data...)
	return nil
}

// Remove deletes key.
func (s *memoryStorage) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
	return nil
}

// Ping always succeeds.
func (s *memoryStorage) Ping(context.Context) error {
	return nil
}
