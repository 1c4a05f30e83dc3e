package mock

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// Redis is an in-process Redis server with a connected client.
type Redis struct {
	Server *miniredis.Miniredis
	Client *redis.Client
}

// NewRedis starts a fresh miniredis instance.
func NewRedis() (*Redis, error) {
	server, err := miniredis.Run()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(
		&redis.Options{
			Addr: server.Addr(),
		},
	)

	return &Redis{Server: server, Client: client}, nil
}

// Stop shuts the server down so the client sees connection errors.
func (r *Redis) Stop() {
	r.Server.Close()
}

// Close releases the client and the server.
func (r *Redis) Close() {
	_ = r.Client.Close()
	r.Server.Close()
}

func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
