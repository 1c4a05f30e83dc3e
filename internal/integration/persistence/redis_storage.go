package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/budget/internal/application/adapter"
	domainerror "github.com/finance-tracker/budget/internal/domain/error"
)

// redisStorage stores each collection as a plain Redis string value.
type redisStorage struct {
	client *redis.Client
	prefix string
}

// NewRedisStorage creates a storage gateway backed by client. Every key is
// namespaced with prefix so several budgets can share one Redis database.
func NewRedisStorage(client *redis.Client, prefix string) adapter.StorageGateway {
	return &redisStorage{
		client: client,
		prefix: prefix,
	}
}

// Get retrieves the value stored under key.
func (s *redisStorage) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, domainerror.NewStorageError("get", key, err)
	}
	return data, true, nil
}

// Set replaces the value stored under key. Values never expire.
func (s *redisStorage) Set(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, data, 0).Err(); err != nil {
		return domainerror.NewStorageError("set", key, err)
	}
	return nil
}

// Remove deletes key.
func (s *redisStorage) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return domainerror.NewStorageError("remove", key, err)
	}
	return nil
}

// Ping checks the connection to Redis.
func (s *redisStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
