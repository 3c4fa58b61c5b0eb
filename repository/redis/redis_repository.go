package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	redisclient "github.com/rakapradana/place-review/cmd/redis"
)

// Repository caches token → user id lookups in front of the auth_token
// table. Redis is an optimization only; every method degrades to a no-op
// (miss) when the client is unavailable.
type Repository interface {
	GetUserIDByToken(ctx context.Context, token string) (uint64, bool, error)
	SetUserIDByToken(ctx context.Context, token string, userID uint64) error
	DeleteToken(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

type redis struct{}

// NewRepository returns a Redis Repository implementation
func NewRepository() Repository {
	return &redis{}
}

const tokenKeyPrefix = "token:"

// GetUserIDByToken returns the cached user id for a token. The second return
// is false on a cache miss.
func (r *redis) GetUserIDByToken(ctx context.Context, token string) (uint64, bool, error) {
	client := redisclient.Get()
	if client == nil {
		return 0, false, nil
	}
	val, err := client.Get(ctx, tokenKeyPrefix+token).Uint64()
	if err == goredis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return val, true, nil
}

// SetUserIDByToken caches a token binding. Tokens never expire, so no TTL.
func (r *redis) SetUserIDByToken(ctx context.Context, token string, userID uint64) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, tokenKeyPrefix+token, userID, 0).Err()
}

// DeleteToken evicts a cached token binding.
func (r *redis) DeleteToken(ctx context.Context, token string) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Del(ctx, tokenKeyPrefix+token).Err()
}

// Ping reports Redis reachability for the health endpoint.
func (r *redis) Ping(ctx context.Context) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Ping(ctx).Err()
}
