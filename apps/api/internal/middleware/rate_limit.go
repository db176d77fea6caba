package middleware

import (
	"BridgerServer/config"
	"BridgerServer/consts"
	rediskey "BridgerServer/consts/redisKey"
	"BridgerServer/pkg/logger"
	pkgredis "BridgerServer/pkg/redis"
	"BridgerServer/pkg/result"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// ==================== Redis 令牌桶 Lua 脚本 ====================

// luaTokenBucket Redis 令牌桶 Lua 脚本
// 功能：原子性地更新令牌桶并判断是否允许通过
// 参数：
//
//	KEYS[1]: 限流 key (如: bridger:rate:limit:ip:{ip})
//	ARGV[1]: 当前时间戳 (毫秒)
//	ARGV[2]: 令牌桶容量
//	ARGV[3]: 每秒产生的令牌数
//	ARGV[4]: 每次请求消耗的令牌数
//
// 返回值：
//   - 1: 允许通过
//   - 0: 不允许通过 (令牌不足)
//
// 注意：时间戳使用毫秒级精度以提高计算准确性
const luaTokenBucket = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local rate = tonumber(ARGV[3]) -- 每秒产生的令牌数
local requested = tonumber(ARGV[4])

-- 获取当前状态
local info = redis.call('HMGET', key, 'tokens', 'last_time')
local current_tokens = tonumber(info[1])
local last_time = tonumber(info[2])

-- 初始化
if current_tokens == nil then
    current_tokens = capacity
end
if last_time == nil then
    last_time = now
end

-- 计算时间差 (毫秒)
local time_diff = math.max(0, now - last_time)

-- 计算补充令牌: (时间差ms * 速率) / 1000
local new_tokens = math.floor((time_diff * rate) / 1000)

-- 更新令牌数
if new_tokens > 0 then
    current_tokens = math.min(capacity, current_tokens + new_tokens)
    last_time = now -- 只有产生了新令牌才更新时间，防止精度丢失
end

-- 判断是否允许通过
local allowed = 0
if current_tokens >= requested then
    current_tokens = current_tokens - requested
    allowed = 1
end

-- 更新 Redis
redis.call('HMSET', key, 'tokens', current_tokens, 'last_time', last_time)

-- 设置过期时间：桶填满所需时间 * 2，至少 60 秒
local fill_time = math.ceil(capacity / rate)
local ttl = math.max(60, fill_time * 2)
redis.call('EXPIRE', key, ttl)

return allowed
`

// ==================== Redis 限流器 ====================

// RedisRateLimiter 基于 Redis 令牌桶的限流器
// Redis 不可用时退化为进程级的本地令牌桶，本地桶也拒绝时才真正限流，
// 保证单点 Redis 故障不会放大成全量 429。
type RedisRateLimiter struct {
	mu          sync.RWMutex
	redisClient *redis.Client
	rate        float64       // 每秒产生的令牌数
	burst       int           // 令牌桶容量
	local       *rate.Limiter // 本地降级桶（进程级共享）
}

// NewRedisRateLimiter 创建限流器
// rate: 每秒产生的令牌数; burst: 令牌桶容量
// localRate/localBurst: Redis 不可用时的本地降级桶参数
func NewRedisRateLimiter(refillRate float64, burst int, localRate float64, localBurst int) *RedisRateLimiter {
	return &RedisRateLimiter{
		rate:  refillRate,
		burst: burst,
		local: rate.NewLimiter(rate.Limit(localRate), localBurst),
	}
}

// RedisSetClient 设置 Redis 客户端
// 使用延迟初始化避免启动顺序依赖
func (r *RedisRateLimiter) RedisSetClient(redisClient *redis.Client) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redisClient = redisClient
}

// Allow 检查是否允许请求通过
// key: Redis 限流 key
func (r *RedisRateLimiter) Allow(ctx context.Context, key string) bool {
	r.mu.RLock()
	client := r.redisClient
	r.mu.RUnlock()

	if client == nil {
		// Redis 客户端未初始化，走本地降级桶
		return r.local.Allow()
	}

	// 给 Redis 操作加独立短超时（50ms），防止 Redis 响应慢拖死请求链路
	redisCtx, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	defer cancel()

	now := time.Now().UnixMilli()
	cmd := client.Eval(redisCtx, luaTokenBucket, []string{key}, now, r.burst, r.rate, 1)
	value, err := cmd.Result()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			logger.Warn(ctx, "Redis 限流检查超时，退化为本地限流",
				logger.String("key", key),
				logger.ErrorField("error", err),
			)
		} else {
			logger.Error(ctx, "Redis 限流检查失败，退化为本地限流",
				logger.String("key", key),
				logger.ErrorField("error", err),
			)
		}
		return r.local.Allow()
	}

	allowed, ok := value.(int64)
	if !ok {
		logger.Warn(ctx, "Redis 限流返回值类型错误，退化为本地限流",
			logger.String("key", key),
			logger.Any("result", value),
		)
		return r.local.Allow()
	}

	return allowed == 1
}

// ==================== 限流中间件 ====================

// IPRateLimitMiddleware 基于客户端 IP 的限流中间件
// 用在公开接口上，防止匿名刷注册/登录
func IPRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewRedisRateLimiter(cfg.IPRefillRate, cfg.IPCapacity, cfg.LocalRefillRate, cfg.LocalCapacity)
	var once sync.Once

	return func(c *gin.Context) {
		// 懒加载 Redis Client，只执行一次
		once.Do(func() {
			if client := pkgredis.Client(); client != nil {
				limiter.RedisSetClient(client)
			}
		})

		ctx := NewContextWithGin(c)

		ip, ok := GetClientIPSafe(c)
		if !ok {
			// 无法获取 IP，放行请求（记录警告）
			logger.Warn(ctx, "无法获取客户端 IP，跳过限流检查",
				logger.String("path", c.Request.URL.Path),
			)
			c.Next()
			return
		}

		if !limiter.Allow(ctx, rediskey.IPRateLimitKey(ip)) {
			logger.Warn(ctx, "IP 请求被限流",
				logger.String("ip", ip),
				logger.String("path", c.Request.URL.Path),
				logger.String("method", c.Request.Method),
			)
			result.Fail(c, consts.CodeTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}

// UserRateLimitMiddleware 基于用户ID的限流中间件
// 需要在 JWTAuthMiddleware 之后使用
func UserRateLimitMiddleware(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := NewRedisRateLimiter(cfg.UserRefillRate, cfg.UserCapacity, cfg.LocalRefillRate, cfg.LocalCapacity)
	var once sync.Once

	return func(c *gin.Context) {
		once.Do(func() {
			if client := pkgredis.Client(); client != nil {
				limiter.RedisSetClient(client)
			}
		})

		ctx := NewContextWithGin(c)

		userID, ok := GetUserID(c)
		if !ok || userID <= 0 {
			// 拿不到用户ID说明中间件顺序配置错误，放行并告警
			logger.Warn(ctx, "无法获取用户ID，跳过用户限流检查",
				logger.String("path", c.Request.URL.Path),
			)
			c.Next()
			return
		}

		if !limiter.Allow(ctx, rediskey.UserRateLimitKey(userID)) {
			logger.Warn(ctx, "用户请求被限流",
				logger.Int64("user_id", userID),
				logger.String("path", c.Request.URL.Path),
				logger.String("method", c.Request.Method),
			)
			result.Fail(c, consts.CodeTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}
