package config

import "time"

// GeoConfig IP 地理位置查询配置。
// 注册时根据客户端 IP 补全城市/邮编，属于尽力而为：失败不阻塞注册。
type GeoConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"` // 查询服务地址
	Timeout time.Duration `json:"timeout" yaml:"timeout"` // 单次查询超时

	// 熔断配置：连续失败达到阈值后直接跳过查询一段时间
	BreakerMaxFailures uint32        `json:"breakerMaxFailures" yaml:"breakerMaxFailures"` // 连续失败阈值
	BreakerOpenTimeout time.Duration `json:"breakerOpenTimeout" yaml:"breakerOpenTimeout"` // 熔断打开持续时间
}

// DefaultGeoConfig 返回默认配置。
func DefaultGeoConfig() GeoConfig {
	return GeoConfig{
		BaseURL:            "http://ip-api.com/json",
		Timeout:            2 * time.Second,
		BreakerMaxFailures: 5,
		BreakerOpenTimeout: 30 * time.Second,
	}
}
