package pubsub

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/notification-push"

// localHTTPPublisher posts each event to the push worker the way a Pub/Sub push
// subscription would. Used in development.
type localHTTPPublisher struct {
	endpoint string
	client   *http.Client
	now      func() time.Time
	logger   *slog.Logger
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
		logger:   logger,
	}
}

func (p *localHTTPPublisher) PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	var envelope entity.PushEnvelope
	envelope.Subscription = localSubscription
	envelope.Message.Data = data
	envelope.Message.Attributes = event.Attributes()
	envelope.Message.MessageID = event.NotificationID.String()
	envelope.Message.PublishTime = p.now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(envelope)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if event.RequestID != "" {
		req.Header.Set(echo.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to post event to push endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	p.logger.Debug("[LocalPubSub] Event delivered",
		slog.String("endpoint", p.endpoint),
		slog.String("notification_id", event.NotificationID.String()),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
