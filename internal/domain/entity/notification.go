package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType is the severity used by clients to style a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// IsValid checks if the type is one of the known values.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationInfo, NotificationSuccess, NotificationWarning, NotificationError:
		return true
	default:
		return false
	}
}

// Notification is one entry in a user's in-app notification feed.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID        `json:"user_id"`    // The recipient.
	Title     string           `json:"title"`      // Short headline.
	Message   string           `json:"message"`    // Body text.
	Type      NotificationType `json:"type"`       // Severity.
	Read      bool             `json:"read"`       // Flips false to true on mark-as-read; never back.
	Link      *string          `json:"link"`       // Optional deep link into the client.
	CreatedAt time.Time        `json:"created_at"` // Timestamp of when the notification was created.
}

// NotificationEvent is the payload published for push fan-out after a notification is stored.
type NotificationEvent struct {
	RequestID      string           `json:"request_id,omitempty"` // For distributed tracing
	NotificationID uuid.UUID        `json:"notification_id"`
	UserID         uuid.UUID        `json:"user_id"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	Link           string           `json:"link,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// NewNotificationEvent builds the fan-out payload for a stored notification.
func NewNotificationEvent(n *Notification) *NotificationEvent {
	event := &NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Title:          n.Title,
		Message:        n.Message,
		Type:           n.Type,
		CreatedAt:      n.CreatedAt,
	}
	if n.Link != nil {
		event.Link = *n.Link
	}

	return event
}

// PushTopic returns the FCM topic a user's devices subscribe to.
func PushTopic(userID uuid.UUID) string {
	return "user_" + userID.String()
}

// Attributes returns the routing metadata carried next to an encoded event.
func (e *NotificationEvent) Attributes() map[string]string {
	attrs := map[string]string{
		"notification_id": e.NotificationID.String(),
		"user_id":         e.UserID.String(),
	}
	if e.RequestID != "" {
		attrs["request_id"] = e.RequestID
	}

	return attrs
}

// PushEnvelope is the body of a Pub/Sub push request. Data holds the JSON encoded
// NotificationEvent and travels base64 encoded on the wire.
type PushEnvelope struct {
	Message struct {
		Data        []byte            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}
