package impl

import (
	"context"
	"log/slog"

	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/metrics"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
)

// pushService implements the PushUsecase interface.
type pushService struct {
	push   service.PushService
	logger *slog.Logger
}

// NewPushService is the constructor for pushService.
func NewPushService(push service.PushService, logger *slog.Logger) usecase.PushUsecase {
	return &pushService{push: push, logger: logger}
}

// Deliver sends the event to the FCM topic of its user. Malformed events are rejected
// with service.ErrPushRejected.
func (srv *pushService) Deliver(ctx context.Context, event *entity.NotificationEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event == nil || event.UserID == uuid.Nil || event.NotificationID == uuid.Nil {
		metrics.PushDeliveries.WithLabelValues("rejected").Inc()

		return errors.Wrap(service.ErrPushRejected, "event is missing notification or user id")
	}

	data := map[string]string{
		"notification_id": event.NotificationID.String(),
		"type":            string(event.Type),
	}
	if event.Link != "" {
		data["link"] = event.Link
	}

	messageID, err := srv.push.SendToTopic(ctx, entity.PushTopic(event.UserID), event.Title, event.Message, data)
	if err != nil {
		outcome := "failed"
		if errors.Is(err, service.ErrPushRejected) {
			outcome = "rejected"
		}
		metrics.PushDeliveries.WithLabelValues(outcome).Inc()

		return err
	}
	metrics.PushDeliveries.WithLabelValues("sent").Inc()

	logger.Info("Push delivered",
		slog.String("notification_id", event.NotificationID.String()),
		slog.String("message_id", messageID),
	)

	return nil
}
