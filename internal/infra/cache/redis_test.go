package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/finance-tracker/budget/config"
)

func TestNewRedisClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + server.Addr() + "/0", DB: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer client.Close()

	if client.Options().DB != 2 {
		t.Errorf("expected db override 2, got %d", client.Options().DB)
	}
}

func TestNewRedisClient_Errors(t *testing.T) {
	if _, err := NewRedisClient(&config.RedisConfig{URL: "://bad"}); err == nil {
		t.Error("expected an error for an invalid url")
	}

	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()

	if _, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + addr}); err == nil {
		t.Error("expected an error for an unreachable server")
	}
}
