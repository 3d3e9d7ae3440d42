package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	"wastetrack/internal/infra/metrics"

	"github.com/google/uuid"
)

// Notification kinds used as metric labels.
const (
	kindTruckNearby       = "truck_nearby"
	kindSchedule          = "schedule"
	kindReportStatus      = "report_status"
	kindCollectionStarted = "collection_started"
)

// notificationEmitter stores a notification and publishes it for push fan-out.
type notificationEmitter struct {
	repo      repository.NotificationRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

type notificationDraft struct {
	userID  uuid.UUID
	title   string
	message string
	typ     entity.NotificationType
	link    string
}

// emit writes the notification. Publishing is best effort: a failed publish is logged and
// the stored notification is still returned.
func (e *notificationEmitter) emit(ctx context.Context, kind string, draft notificationDraft) (*entity.Notification, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, e.logger)

	n := &entity.Notification{
		ID:        uuid.New(),
		UserID:    draft.userID,
		Title:     draft.title,
		Message:   draft.message,
		Type:      draft.typ,
		CreatedAt: e.now().UTC(),
	}
	if draft.link != "" {
		link := draft.link
		n.Link = &link
	}

	if err := e.repo.Create(ctx, n); err != nil {
		metrics.NotificationsFailed.WithLabelValues(kind).Inc()

		return nil, errors.Wrap(err, "failed to store notification")
	}
	metrics.NotificationsEmitted.WithLabelValues(kind).Inc()

	if e.publisher != nil {
		event := entity.NewNotificationEvent(n)
		event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
		if err := e.publisher.PublishNotificationEvent(ctx, event); err != nil {
			logger.Warn("Failed to publish notification event",
				slog.String("notification_id", n.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	logger.Debug("Notification emitted",
		slog.String("kind", kind),
		slog.String("user_id", draft.userID.String()),
		slog.String("notification_id", n.ID.String()),
	)

	return n, nil
}
