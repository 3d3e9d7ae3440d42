package usecase

import (
	"context"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// InboxUsecase defines the resident notification feed operations
type InboxUsecase interface {
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
