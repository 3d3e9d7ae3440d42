// Package pubsub publishes notification events for the push worker.
package pubsub

import (
	"context"
	"log/slog"
	"strings"

	"wastetrack/config"
	"wastetrack/internal/domain/constants"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noopPublisher drops events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishNotificationEvent(_ context.Context, event *entity.NotificationEvent) error {
	p.logger.Debug("[NoopPubSub] Event dropped", slog.String("notification_id", event.NotificationID.String()))

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type publisherBuilder func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error)

var builders = map[string]publisherBuilder{
	constants.PubSubProviderLocal:  buildLocal,
	constants.PubSubProviderGoogle: buildGoogle,
	constants.PubSubProviderKafka:  buildKafka,
}

// NewEventPublisher picks the publisher of the configured provider and closes it on stop.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, push fan-out disabled")

		return &noopPublisher{logger: params.Logger}, nil
	}

	build, ok := builders[cfg.Provider]
	if !ok {
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	publisher, err := build(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Event publisher ready",
		slog.String("provider", cfg.Provider),
		slog.String("topic", cfg.TopicID),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})

	return publisher, nil
}

func buildLocal(_ context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.PubSub.LocalEndpoint == "" {
		return nil, errors.New("local endpoint is required for local provider")
	}

	return NewLocalHTTPPublisher(cfg.PubSub.LocalEndpoint, logger), nil
}

func buildGoogle(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg.PubSub.ProjectID == "" || cfg.PubSub.TopicID == "" {
		return nil, errors.New("project ID and topic ID are required for google provider")
	}

	return NewGooglePubSubPublisher(ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
}

func buildKafka(_ context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	brokers := SplitBrokers(cfg.PubSub.KafkaBrokers)
	if len(brokers) == 0 || cfg.PubSub.TopicID == "" {
		return nil, errors.New("brokers and topic ID are required for kafka provider")
	}

	return NewKafkaPublisher(KafkaConfig{
		Brokers:  brokers,
		Topic:    cfg.PubSub.TopicID,
		ClientID: cfg.Env.ServiceName,
	}, logger)
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)

// SplitBrokers parses a comma separated broker list.
func SplitBrokers(raw string) []string {
	brokers := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if broker := strings.TrimSpace(part); broker != "" {
			brokers = append(brokers, broker)
		}
	}

	return brokers
}
