package config

import "time"

// KafkaConsumerConfig Kafka 消费者配置。
type KafkaConsumerConfig struct {
	GroupID        string        `json:"groupId" yaml:"groupId"`               // 消费组 ID
	MinBytes       int           `json:"minBytes" yaml:"minBytes"`             // 单次拉取最小字节数
	MaxBytes       int           `json:"maxBytes" yaml:"maxBytes"`             // 单次拉取最大字节数
	CommitInterval time.Duration `json:"commitInterval" yaml:"commitInterval"` // 位点提交间隔
}

// KafkaConfig Kafka 配置。
// 目前只承载 Redis 写失败的重试队列，不做业务消息。
type KafkaConfig struct {
	Brokers         []string            `json:"brokers" yaml:"brokers"`                 // Broker 地址列表
	RedisRetryTopic string              `json:"redisRetryTopic" yaml:"redisRetryTopic"` // Redis 重试队列 Topic
	ConsumerConfig  KafkaConsumerConfig `json:"consumer" yaml:"consumer"`               // 消费者配置
}

// DefaultKafkaConfig 返回本地开发的默认配置。
func DefaultKafkaConfig() KafkaConfig {
	return KafkaConfig{
		Brokers:         []string{"127.0.0.1:9092"},
		RedisRetryTopic: "bridger.redis.retry",
		ConsumerConfig: KafkaConsumerConfig{
			GroupID:        "bridger-redis-retry",
			MinBytes:       1,
			MaxBytes:       10 * 1024 * 1024,
			CommitInterval: time.Second,
		},
	}
}
