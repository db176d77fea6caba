package kafka

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Producer Kafka 生产者的薄封装。
// 约定：一个 Producer 只写一个 topic，按 key 做分区哈希。
type Producer struct {
	writer *kafka.Writer
}

// NewProducer 创建生产者。
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 10 * time.Millisecond,
		},
	}
}

// SendMessage 发送一条消息。
func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

// Close 关闭生产者。
func (p *Producer) Close() error {
	return p.writer.Close()
}

// NewReader 创建消费者 Reader（调用方负责 Close）。
func NewReader(brokers []string, topic, groupID string, minBytes, maxBytes int, commitInterval time.Duration) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       minBytes,
		MaxBytes:       maxBytes,
		CommitInterval: commitInterval,
	})
}

// ZapLoggerAdapter 把 zap 适配成 kafka-go 的 Logger 接口。
type ZapLoggerAdapter struct {
	l *zap.SugaredLogger
}

// NewZapLoggerAdapter 创建适配器。
func NewZapLoggerAdapter(l *zap.Logger) *ZapLoggerAdapter {
	return &ZapLoggerAdapter{l: l.Sugar()}
}

func (a *ZapLoggerAdapter) Printf(format string, args ...interface{}) {
	a.l.Infof(format, args...)
}
