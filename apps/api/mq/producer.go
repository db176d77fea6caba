package mq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"BridgerServer/pkg/kafka"
)

// 全局生产者：仓储层通过 SendRedisTask 投递重试任务，不直接依赖 kafka 包。
var globalProducer *kafka.Producer

// ErrProducerNotReady 生产者未初始化（Kafka 不可用时的正常状态）。
var ErrProducerNotReady = errors.New("mq: kafka producer not initialized")

// SetGlobalProducer 设置全局 Kafka 生产者（main 初始化时调用）。
func SetGlobalProducer(p *kafka.Producer) {
	globalProducer = p
}

// SendRedisTask 将 Redis 重试任务序列化后发送到 Kafka。
// 以 trace_id 作为消息 key，同一请求产生的任务落在同一分区、保持顺序。
func SendRedisTask(ctx context.Context, task RedisTask) error {
	if globalProducer == nil {
		return ErrProducerNotReady
	}

	value, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshal redis task: %w", err)
	}

	return globalProducer.SendMessage(ctx, []byte(task.TraceID), value)
}
