package config

// RateLimitConfig 限流配置。
// 优先走 Redis 令牌桶（多实例共享），Redis 不可用时退化为本地令牌桶。
type RateLimitConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"` // 是否启用限流

	UserCapacity   int     `json:"userCapacity" yaml:"userCapacity"`     // 单用户桶容量
	UserRefillRate float64 `json:"userRefillRate" yaml:"userRefillRate"` // 单用户每秒补充令牌数
	IPCapacity     int     `json:"ipCapacity" yaml:"ipCapacity"`         // 单 IP 桶容量
	IPRefillRate   float64 `json:"ipRefillRate" yaml:"ipRefillRate"`     // 单 IP 每秒补充令牌数

	LocalCapacity   int     `json:"localCapacity" yaml:"localCapacity"`     // 本地降级桶容量（进程级全局）
	LocalRefillRate float64 `json:"localRefillRate" yaml:"localRefillRate"` // 本地降级桶每秒补充令牌数
}

// DefaultRateLimitConfig 返回默认配置。
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:         true,
		UserCapacity:    30,
		UserRefillRate:  10,
		IPCapacity:      60,
		IPRefillRate:    20,
		LocalCapacity:   500,
		LocalRefillRate: 200,
	}
}
