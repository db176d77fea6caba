package config

import "time"

// RedisConfig Redis 连接配置。
// 读写超时默认偏短：缓存失败要快速失败降级到 MySQL，不能拖慢主链路。
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`         // 地址 host:port
	Password string `json:"password" yaml:"password"` // 密码（可为空）
	DB       int    `json:"db" yaml:"db"`             // 数据库编号

	PoolSize     int           `json:"poolSize" yaml:"poolSize"`         // 连接池大小
	MinIdleConns int           `json:"minIdleConns" yaml:"minIdleConns"` // 最小空闲连接数
	DialTimeout  time.Duration `json:"dialTimeout" yaml:"dialTimeout"`   // 连接超时
	ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`   // 读超时
	WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"` // 写超时
}

// DefaultRedisConfig 返回本地开发的默认配置。
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:         "127.0.0.1:6379",
		Password:     "",
		DB:           0,
		PoolSize:     64,
		MinIdleConns: 4,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  100 * time.Millisecond,
		WriteTimeout: 100 * time.Millisecond,
	}
}
