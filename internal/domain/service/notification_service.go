package service

import (
	"context"

	"wastetrack/internal/errors"
)

// ErrPushRejected marks a push that can never succeed (bad topic, invalid payload).
// Retrying such a message is pointless.
var ErrPushRejected = errors.New("push rejected")

// PushService defines the interface for device push delivery
type PushService interface {
	// SendToTopic sends a push message to every device subscribed to the topic
	SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (messageID string, err error)
}
