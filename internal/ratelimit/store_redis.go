package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cotejo:ratelimit:"

// RedisStore implements Store with a sorted-set sliding window so that limits
// hold across replicas. Each request is a member scored by its unix
// timestamp; expired members are trimmed in the same pipeline.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Allow(ctx context.Context, key string, limit int, window time.Duration) (*Result, error) {
	now := time.Now()
	redisKey := redisKeyPrefix + key
	windowStart := now.Add(-window).UnixNano()

	count, err := s.client.ZCount(ctx, redisKey,
		strconv.FormatInt(windowStart, 10),
		strconv.FormatInt(now.UnixNano(), 10),
	).Result()
	if err != nil {
		return nil, fmt.Errorf("count rate limit window: %w", err)
	}

	if count >= int64(limit) {
		resetAt := now.Add(window)
		if oldest, err := s.client.ZRangeWithScores(ctx, redisKey, 0, 0).Result(); err == nil && len(oldest) > 0 {
			resetAt = time.Unix(0, int64(oldest[0].Score)).Add(window)
		}
		return &Result{
			Allowed:    false,
			Limit:      limit,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfterSeconds(now, resetAt),
		}, nil
	}

	member := fmt.Sprintf("%d:%s", now.UnixNano(), uuid.NewString())
	pipe := s.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("record rate limit request: %w", err)
	}

	return &Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("reset rate limit key: %w", err)
	}
	return nil
}
