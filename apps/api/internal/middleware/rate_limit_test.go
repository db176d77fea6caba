package middleware

import (
	"context"
	"testing"

	rediskey "BridgerServer/consts/redisKey"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisRateLimiter_LocalFallbackWithoutRedis(t *testing.T) {
	initMiddlewareTestLogger()

	// Redis 客户端未设置时走本地降级桶
	limiter := NewRedisRateLimiter(1, 10, 1, 2)

	key := rediskey.IPRateLimitKey("203.0.113.7")
	assert.True(t, limiter.Allow(context.Background(), key))
	assert.True(t, limiter.Allow(context.Background(), key))
	assert.False(t, limiter.Allow(context.Background(), key))
}

func TestRedisRateLimiter_TokenBucket(t *testing.T) {
	initMiddlewareTestLogger()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	limiter := NewRedisRateLimiter(1, 2, 100, 100)
	limiter.RedisSetClient(client)

	key := rediskey.UserRateLimitKey(42)

	// 容量 2：前两次放行，第三次令牌耗尽
	assert.True(t, limiter.Allow(context.Background(), key))
	assert.True(t, limiter.Allow(context.Background(), key))
	assert.False(t, limiter.Allow(context.Background(), key))

	// 不同 key 的桶互不影响
	assert.True(t, limiter.Allow(context.Background(), rediskey.UserRateLimitKey(7)))

	// 限流 key 带过期时间，避免冷 key 常驻
	require.True(t, mr.Exists(key))
	assert.Greater(t, mr.TTL(key).Seconds(), float64(0))
}

func TestRedisRateLimiter_FallsBackOnRedisError(t *testing.T) {
	initMiddlewareTestLogger()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	limiter := NewRedisRateLimiter(1, 1, 100, 100)
	limiter.RedisSetClient(client)

	// 关停 Redis 后退化为本地桶，不放大为全量拒绝
	mr.Close()

	key := rediskey.IPRateLimitKey("203.0.113.8")
	assert.True(t, limiter.Allow(context.Background(), key))
}
