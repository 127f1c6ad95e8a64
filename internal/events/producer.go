package events

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"example.com/signup/internal/domain"
)

// KafkaPublisher writes roster changes to a single Kafka topic. Messages
// are keyed by activity name so per-activity ordering is preserved.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a KafkaPublisher for the given brokers and topic.
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

// PublishRosterChanged implements domain.ChangePublisher.
func (p *KafkaPublisher) PublishRosterChanged(ctx context.Context, change domain.RosterChange) error {
	payload := RosterChanged{
		EventID:    uuid.NewString(),
		Activity:   change.Activity,
		Email:      change.Email,
		Action:     change.Action,
		OccurredAt: change.OccurredAt,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(change.Activity),
		Value: body,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(EventTypeRosterChanged)},
		},
	})
}

// Close releases the underlying writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
