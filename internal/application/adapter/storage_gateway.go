// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

//go:generate mockgen -destination=mock/storage_gateway_mock.go -package=mock . StorageGateway

// StorageGateway persists whole serialized collections under string keys.
// It carries no business logic and performs no concurrency control.
type StorageGateway interface {
	// Get returns the stored bytes for key. found is false when key was never
	// written or has been removed; that is not an error.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Set replaces the whole value stored under key.
	Set(ctx context.Context, key string, data []byte) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// HealthChecker reports whether a storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
