package usecase

import (
	"context"

	"wastetrack/internal/domain/entity"
)

// PushUsecase delivers published notification events to the user's devices
type PushUsecase interface {
	// Deliver sends the event to the user's push topic
	Deliver(ctx context.Context, event *entity.NotificationEvent) error
}
