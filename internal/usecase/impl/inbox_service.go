package impl

import (
	"context"

	"wastetrack/internal/domain/entity"
	domainerrors "wastetrack/internal/domain/errors"
	"wastetrack/internal/domain/repository"
	"wastetrack/internal/errors"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultInboxLimit = 20
	maxInboxLimit     = 100
)

// inboxService implements the InboxUsecase interface.
type inboxService struct {
	notificationRepo repository.NotificationRepository
}

// NewInboxService is the constructor for inboxService.
func NewInboxService(notificationRepo repository.NotificationRepository) usecase.InboxUsecase {
	return &inboxService{notificationRepo: notificationRepo}
}

func (srv *inboxService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultInboxLimit
	}
	limit = min(limit, maxInboxLimit)
	offset = max(offset, 0)

	notifications, err := srv.notificationRepo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *inboxService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return mapNotificationErr(srv.notificationRepo.MarkRead(ctx, notificationID, userID))
}

func (srv *inboxService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := srv.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications read")
	}

	return updated, nil
}

func (srv *inboxService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	return mapNotificationErr(srv.notificationRepo.Delete(ctx, notificationID, userID))
}

func (srv *inboxService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func mapNotificationErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotificationNotFound):
		return domainerrors.ErrNotificationNotFound
	default:
		return errors.Wrap(err, "failed to update notification")
	}
}
