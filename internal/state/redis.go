// internal/state/redis.go
package state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore persists last states in Redis so transitions survive
// monitor restarts and can be shared across monitor replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration // zero means no expiry
}

func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisStore) Get(ctx context.Context, key string) (State, bool, error) {
	val, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return Unknown, false, nil
	}
	if err != nil {
		return Unknown, false, fmt.Errorf("state: redis get %s: %w", key, err)
	}

	s, ok := Parse(val)
	if !ok {
		// A value outside the bounded set is treated as absent.
		return Unknown, false, nil
	}
	return s, true, nil
}

func (r *RedisStore) Set(ctx context.Context, key string, s State) error {
	if err := r.client.Set(ctx, r.prefix+key, s.String(), r.ttl).Err(); err != nil {
		return fmt.Errorf("state: redis set %s: %w", key, err)
	}
	return nil
}
