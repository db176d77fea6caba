package mq

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"BridgerServer/config"
	"BridgerServer/pkg/kafka"
	"BridgerServer/pkg/logger"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/redis/go-redis/v9"
)

// RedisRetryConsumer 消费重试队列，把失败的 Redis 写操作补偿执行。
// 补偿仍失败且未达最大重试次数时，任务加 1 次重试计数后重新入队；
// 达到上限后丢弃并记录错误日志（缓存有 TTL 兜底，最终一致）。
type RedisRetryConsumer struct {
	reader      *kafkago.Reader
	redisClient *redis.Client
	producer    *kafka.Producer
}

// NewRedisRetryConsumer 创建重试消费者。
func NewRedisRetryConsumer(cfg config.KafkaConfig, redisClient *redis.Client, producer *kafka.Producer) *RedisRetryConsumer {
	return &RedisRetryConsumer{
		reader: kafka.NewReader(
			cfg.Brokers,
			cfg.RedisRetryTopic,
			cfg.ConsumerConfig.GroupID,
			cfg.ConsumerConfig.MinBytes,
			cfg.ConsumerConfig.MaxBytes,
			cfg.ConsumerConfig.CommitInterval,
		),
		redisClient: redisClient,
		producer:    producer,
	}
}

// Start 启动消费循环（阻塞，ctx 取消后退出）。
func (c *RedisRetryConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}

		var task RedisTask
		if err := json.Unmarshal(msg.Value, &task); err != nil {
			// 消息体损坏，丢弃
			logger.Error(ctx, "重试任务反序列化失败，丢弃",
				logger.ErrorField("error", err),
			)
			continue
		}

		c.handleTask(ctx, task)
	}
}

// Close 关闭消费者。
func (c *RedisRetryConsumer) Close() error {
	return c.reader.Close()
}

func (c *RedisRetryConsumer) handleTask(ctx context.Context, task RedisTask) {
	execCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	err := c.execute(execCtx, task)
	if err == nil {
		return
	}

	task.RetryCount++
	if task.RetryCount >= task.MaxRetries {
		logger.Error(ctx, "Redis 重试任务达到最大重试次数，放弃",
			logger.String("command", task.Command),
			logger.String("trace_id", task.TraceID),
			logger.Int("retry_count", task.RetryCount),
			logger.ErrorField("error", err),
		)
		return
	}

	// 重新入队，等下一轮消费
	if sendErr := SendRedisTask(ctx, task); sendErr != nil {
		logger.Error(ctx, "Redis 重试任务重新入队失败，放弃",
			logger.String("command", task.Command),
			logger.ErrorField("error", sendErr),
		)
	}
}

// execute 按任务类型执行 Redis 操作。
func (c *RedisRetryConsumer) execute(ctx context.Context, task RedisTask) error {
	switch task.Type {
	case CmdSimple:
		args := make([]interface{}, 0, len(task.Args)+1)
		args = append(args, task.Command)
		args = append(args, task.Args...)
		return c.redisClient.Do(ctx, args...).Err()

	case CmdPipeline:
		pipe := c.redisClient.Pipeline()
		for _, cmd := range task.PipelineCmds {
			args := make([]interface{}, 0, len(cmd.Args)+1)
			args = append(args, cmd.Command)
			args = append(args, cmd.Args...)
			pipe.Do(ctx, args...)
		}
		_, err := pipe.Exec(ctx)
		return err

	case CmdLua:
		return c.redisClient.Eval(ctx, task.LuaScript, task.LuaKeys, task.LuaArgs...).Err()

	default:
		return errors.New("unknown redis task type")
	}
}
