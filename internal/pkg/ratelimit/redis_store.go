package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps counters in redis so several API instances share limits.
// Windows are aligned to multiples of Window since the Unix epoch.
type RedisStore struct {
	client   *redis.Client
	settings Settings
	prefix   string
	now      func() time.Time
}

// NewRedisStore creates a RedisStore whose keys start with prefix
func NewRedisStore(client *redis.Client, settings Settings, prefix string) *RedisStore {
	return &RedisStore{
		client:   client,
		settings: settings,
		prefix:   prefix,
		now:      time.Now,
	}
}

// Take implements Store
func (s *RedisStore) Take(ctx context.Context, key string) (Decision, error) {
	now := s.now()
	blockKey := s.prefix + "block:" + key

	ttl, err := s.client.PTTL(ctx, blockKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read block of %s: %w", key, err)
	}
	if ttl > 0 {
		return blocked(s.settings, now, now.Add(ttl)), nil
	}

	windowStart := now.Truncate(s.settings.Window)
	resetAt := windowStart.Add(s.settings.Window)
	countKey := fmt.Sprintf("%scount:%s:%d", s.prefix, key, windowStart.UnixMilli())

	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, countKey)
	pipe.PExpire(ctx, countKey, s.settings.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return Decision{}, fmt.Errorf("failed to count request of %s: %w", key, err)
	}

	count := int(incr.Val())
	if count <= s.settings.Max {
		return allowed(s.settings, count, resetAt), nil
	}

	if s.settings.blocking() && count-s.settings.Max >= s.settings.BlockAfter {
		if err := s.client.Set(ctx, blockKey, 1, s.settings.BlockDuration).Err(); err != nil {
			return Decision{}, fmt.Errorf("failed to block %s: %w", key, err)
		}
		return blocked(s.settings, now, now.Add(s.settings.BlockDuration)), nil
	}
	return rejected(s.settings, now, resetAt), nil
}
