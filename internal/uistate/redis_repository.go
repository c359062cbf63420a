package uistate

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository keeps UI state in Redis so tab selection survives instance
// restarts when the dashboard runs behind a balancer. State is stored as
// JSON under "uistate:<clientID>" with a sliding TTL.
type RedisRepository struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisRepository creates a Redis-backed repository. Prefix may be empty;
// a non-positive ttl falls back to 24h.
func NewRedisRepository(client *redis.Client, prefix string, ttl time.Duration) *RedisRepository {
	if prefix == "" {
		prefix = "uistate:"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisRepository{client: client, prefix: prefix, ttl: ttl}
}

func (r *RedisRepository) key(clientID string) string {
	return r.prefix + clientID
}

func (r *RedisRepository) Get(ctx context.Context, clientID string) (*State, error) {
	b, err := r.client.Get(ctx, r.key(clientID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var st State
	if err := json.Unmarshal(b, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *RedisRepository) Put(ctx context.Context, clientID string, st *State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key(clientID), b, r.ttl).Err()
}

func (r *RedisRepository) Delete(ctx context.Context, clientID string) error {
	return r.client.Del(ctx, r.key(clientID)).Err()
}
