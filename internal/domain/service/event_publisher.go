// Package service defines the interfaces for outbound domain services.
package service

import (
	"context"

	"wastetrack/internal/domain/entity"
)

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a stored notification for push fan-out
	PublishNotificationEvent(ctx context.Context, event *entity.NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
