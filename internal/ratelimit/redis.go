package ratelimit

import (
	"context"
	"errors"
	"strconv"
	"time"

	"funnel-checkout/pkg/redis"
)

const keyPrefix = "ratelimit:"

// RedisStore keeps timestamps in Redis so the cooldown survives restarts and
// is shared between instances. The TTL matches the window, so stale entries
// expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, window time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: window}
}

func (s *RedisStore) Get(ctx context.Context, key string) (int64, bool, error) {
	data, err := s.client.Get(ctx, keyPrefix+key)
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	ts, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Unreadable entry, treat as absent so the attempt is recorded fresh.
		return 0, false, nil
	}
	return ts, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, ts int64) error {
	return s.client.Set(ctx, keyPrefix+key, []byte(strconv.FormatInt(ts, 10)), s.ttl)
}
