package repository

import (
	"context"

	"github.com/Navin-kumar0007/Git-Alpha-Engine/internal/domain/models"
	pkgkafka "github.com/Navin-kumar0007/Git-Alpha-Engine/pkg/kafka"
)

// KafkaSignalPublisher emits analytics reports to a Kafka topic, keyed
// by symbol so per-symbol ordering is preserved downstream.
type KafkaSignalPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaSignalPublisher(producer *pkgkafka.Producer, topic string) *KafkaSignalPublisher {
	return &KafkaSignalPublisher{producer: producer, topic: topic}
}

func (p *KafkaSignalPublisher) Publish(ctx context.Context, report *models.AnalyticsReport) error {
	return p.producer.Publish(ctx, p.topic, []byte(report.Symbol), report)
}

func (p *KafkaSignalPublisher) Close() error {
	return p.producer.Close()
}

// NoopSignalPublisher discards reports. Used when no broker is
// configured, e.g. in local development.
type NoopSignalPublisher struct{}

func (NoopSignalPublisher) Publish(context.Context, *models.AnalyticsReport) error { return nil }
func (NoopSignalPublisher) Close() error                                           { return nil }
