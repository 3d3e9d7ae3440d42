package consumer

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"wastetrack/config"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/constants"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	mockUC "wastetrack/internal/mocks/usecase"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessage(t *testing.T, event *entity.NotificationEvent, headers ...*sarama.RecordHeader) *sarama.ConsumerMessage {
	t.Helper()

	value, err := json.Marshal(event)
	require.NoError(t, err)

	return &sarama.ConsumerMessage{Value: value, Offset: 42, Headers: headers}
}

func TestEventHandler_Handle(t *testing.T) {
	event := &entity.NotificationEvent{
		NotificationID: uuid.New(),
		UserID:         uuid.New(),
		Title:          "Collection Started",
		Type:           entity.NotificationSuccess,
	}

	tests := []struct {
		name      string
		value     []byte
		deliver   error
		wantRetry bool
	}{
		{name: "delivered", deliver: nil},
		{name: "rejected is dropped", deliver: errors.Wrap(service.ErrPushRejected, "bad token")},
		{name: "transient failure is retried", deliver: errors.New("fcm unavailable"), wantRetry: true},
		{name: "undecodable payload is dropped", value: []byte("{not json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			push := mockUC.NewMockPushUsecase(t)
			h := &eventHandler{push: push, logger: slog.New(slog.DiscardHandler)}

			msg := newMessage(t, event)
			if tt.value != nil {
				msg.Value = tt.value
			} else {
				push.EXPECT().Deliver(mock.Anything, mock.AnythingOfType("*entity.NotificationEvent")).
					Return(tt.deliver).Once()
			}

			err := h.handle(context.Background(), msg)

			if tt.wantRetry {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventHandler_HandlePropagatesRequestID(t *testing.T) {
	push := mockUC.NewMockPushUsecase(t)
	h := &eventHandler{push: push, logger: slog.New(slog.DiscardHandler)}
	event := &entity.NotificationEvent{NotificationID: uuid.New(), UserID: uuid.New(), RequestID: "from-event"}

	push.EXPECT().Deliver(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, got *entity.NotificationEvent) error {
			assert.Equal(t, "from-header", deliverycontext.GetRequestIDFromContext(ctx))
			assert.Equal(t, event.NotificationID, got.NotificationID)

			return nil
		}).Once()

	msg := newMessage(t, event, &sarama.RecordHeader{Key: []byte("request_id"), Value: []byte("from-header")})

	require.NoError(t, h.handle(context.Background(), msg))
}

func TestNew_IdleWithoutKafka(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}

	d, err := New(Params{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)

	assert.NoError(t, d.Serve(context.Background()))
}
