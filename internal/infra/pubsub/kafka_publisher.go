package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// KafkaConfig holds the settings of the Kafka publisher
type KafkaConfig struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// kafkaPublisher implements EventPublisher on a Kafka topic. Events are keyed by
// user id so one user's notifications stay ordered within a partition.
type kafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher creates an idempotent synchronous Kafka producer
func NewKafkaPublisher(cfg KafkaConfig, logger *slog.Logger) (service.EventPublisher, error) {
	producer, err := sarama.NewSyncProducer(cfg.Brokers, newProducerConfig(cfg.ClientID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka producer")
	}

	return newKafkaPublisher(producer, cfg.Topic, logger), nil
}

func newProducerConfig(clientID string) *sarama.Config {
	sc := sarama.NewConfig()
	sc.Version = sarama.V2_8_0_0
	sc.Producer.Return.Successes = true
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Retry.Max = 10
	sc.Producer.Retry.Backoff = 100 * time.Millisecond
	sc.Producer.Idempotent = true
	sc.Net.MaxOpenRequests = 1
	sc.Producer.Partitioner = sarama.NewHashPartitioner
	sc.ClientID = strings.TrimSpace(clientID)

	return sc
}

func newKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *kafkaPublisher {
	return &kafkaPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
	}
}

// PublishNotificationEvent sends the event and waits for the broker acknowledgement
func (p *kafkaPublisher) PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error {
	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	default:
	}

	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.UserID.String()),
		Value: sarama.ByteEncoder(data),
	}
	for key, value := range event.Attributes() {
		msg.Headers = append(msg.Headers, sarama.RecordHeader{Key: []byte(key), Value: []byte(value)})
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return errors.Wrap(err, "failed to publish notification event to kafka")
	}

	p.logger.Debug("[KafkaPubSub] Event published",
		slog.String("notification_id", event.NotificationID.String()),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset),
	)

	return nil
}

// Close flushes and closes the producer
func (p *kafkaPublisher) Close() error {
	if p == nil || p.producer == nil {
		return nil
	}

	return errors.WithStack(p.producer.Close())
}
