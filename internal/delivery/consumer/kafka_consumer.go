// Package consumer delivers notification events read from a Kafka topic.
package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"wastetrack/config"
	"wastetrack/internal/delivery"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/constants"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/pubsub"
	"wastetrack/internal/usecase"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultConsumerGroup = "wastetrack-pushworker"

type kafkaConsumer struct {
	group   sarama.ConsumerGroup
	topics  []string
	handler *eventHandler
	logger  *slog.Logger
}

// Params holds dependencies for the Kafka consumer, injected by Fx
type Params struct {
	fx.In

	Lc          fx.Lifecycle
	Config      *config.Config
	Logger      *slog.Logger
	PushUsecase usecase.PushUsecase
}

// New creates the Kafka consumer delivery. When the kafka provider is not configured the
// returned delivery exits immediately.
func New(params Params) (delivery.Delivery, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider != constants.PubSubProviderKafka {
		return idle{}, nil
	}

	brokers := pubsub.SplitBrokers(cfg.KafkaBrokers)
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required for kafka provider")
	}
	groupID := strings.TrimSpace(cfg.ConsumerGroup)
	if groupID == "" {
		groupID = defaultConsumerGroup
	}

	sc := sarama.NewConfig()
	sc.Version = sarama.V2_8_0_0
	sc.Consumer.Offsets.Initial = sarama.OffsetNewest
	sc.Consumer.Group.Rebalance.Timeout = 30 * time.Second
	sc.Consumer.Group.Session.Timeout = 30 * time.Second
	sc.ClientID = params.Config.Env.ServiceName

	group, err := sarama.NewConsumerGroup(brokers, groupID, sc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create kafka consumer group")
	}

	c := &kafkaConsumer{
		group:   group,
		topics:  []string{cfg.TopicID},
		handler: &eventHandler{push: params.PushUsecase, retryBackoff: time.Second, logger: params.Logger},
		logger:  params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Kafka consumer group")

			return errors.WithStack(c.group.Close())
		},
	})

	return c, nil
}

// Serve consumes until the group is closed or ctx is cancelled.
func (c *kafkaConsumer) Serve(ctx context.Context) error {
	c.logger.Info("Starting Kafka consumer", slog.Any("topics", c.topics))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := c.group.Consume(ctx, c.topics, c.handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return nil
			}

			return errors.WithStack(err)
		}
	}
}

type idle struct{}

func (idle) Serve(context.Context) error { return nil }

// eventHandler implements sarama.ConsumerGroupHandler.
type eventHandler struct {
	push         usecase.PushUsecase
	retryBackoff time.Duration
	logger       *slog.Logger
}

func (*eventHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (*eventHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

// ConsumeClaim delivers each message and marks it unless delivery failed with a
// retryable error, in which case the claim stops so the message is read again.
func (h *eventHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		if err := h.handle(sess.Context(), msg); err != nil {
			return err
		}
		sess.MarkMessage(msg, "")
	}

	return nil
}

// handle returns an error only when the message should be retried.
func (h *eventHandler) handle(ctx context.Context, msg *sarama.ConsumerMessage) error {
	var event entity.NotificationEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("[Consumer] Dropping undecodable event",
			slog.Int64("offset", msg.Offset),
			slog.Any("error", err),
		)

		return nil
	}

	requestID := event.RequestID
	for _, hdr := range msg.Headers {
		if hdr != nil && string(hdr.Key) == "request_id" && len(hdr.Value) > 0 {
			requestID = string(hdr.Value)
		}
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	err := h.push.Deliver(ctx, &event)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrPushRejected):
		reqLogger.Warn("[Consumer] Push rejected, dropping event",
			slog.String("notification_id", event.NotificationID.String()),
			slog.Any("error", err),
		)

		return nil
	default:
		// Back off before the session ends and the message is read again.
		select {
		case <-ctx.Done():
		case <-time.After(h.retryBackoff):
		}

		return errors.Wrap(err, "push delivery failed")
	}
}
