package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"ramp-gateway/config"
	"ramp-gateway/internal/core/domain"
	"ramp-gateway/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes status events to a topic keyed by transaction id,
// so one transaction's events stay ordered within a partition.
type KafkaPublisher struct {
	writer MessageWriter
}

var _ ports.Notifier = (*KafkaPublisher)(nil)

// NewKafkaPublisher creates a publisher for cfg.Topic.
func NewKafkaPublisher(cfg config.KafkaConfig) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(cfg.Brokers...),
			Topic:                  cfg.Topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	}
}

func newKafkaPublisherWithWriter(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}

// Publish writes event as JSON keyed by its transaction id.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.StatusEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode status event: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TransactionID.String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "status", Value: []byte(event.Status)},
		},
	})
	if err != nil {
		return fmt.Errorf("kafka write: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
