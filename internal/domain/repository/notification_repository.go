package repository

import (
	"context"
	"errors"

	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found or not owned by the caller.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for the per-user notification feed.
type NotificationRepository interface {
	// Create appends a notification. ID and CreatedAt are filled in on success.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByUser retrieves a user's notifications, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// MarkRead flips a single notification to read.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flips every unread notification of a user and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// Delete removes a notification owned by the user.
	Delete(ctx context.Context, id, userID uuid.UUID) error

	// CountUnread returns the number of unread notifications of a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
}
