package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter counts requests per key in fixed one-minute windows shared by every instance.
type RedisLimiter struct {
	client    *redis.Client
	name      string
	perMinute int64
}

func NewRedisLimiter(client *redis.Client, name string, perMinute int) *RedisLimiter {
	return &RedisLimiter{
		client:    client,
		name:      name,
		perMinute: int64(perMinute),
	}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := time.Now()
	window := now.Truncate(time.Minute)
	redisKey := fmt.Sprintf("ratelimit:%s:%s:%d", rl.name, key, window.Unix())

	pipe := rl.client.TxPipeline()
	count := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, time.Minute+5*time.Second)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, fmt.Errorf("redis rate limit: %w", err)
	}

	if count.Val() > rl.perMinute {
		return false, window.Add(time.Minute).Sub(now), nil
	}
	return true, 0, nil
}
