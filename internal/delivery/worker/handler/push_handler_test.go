package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wastetrack/config"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"
	mockUC "wastetrack/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pushBody(t *testing.T, event *entity.NotificationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg entity.PushEnvelope
	msg.Message.Data = data
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "1"
	msg.Subscription = "projects/local/subscriptions/push"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(t *testing.T, h *PushHandler, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(echo.New().NewContext(req, rec)))

	return rec
}

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockPushUsecase) {
	t.Helper()

	push := mockUC.NewMockPushUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config:      &config.Config{},
		Logger:      slog.New(slog.DiscardHandler),
		PushUsecase: push,
	})

	return h, push
}

func TestHandlePush_StatusCodes(t *testing.T) {
	event := &entity.NotificationEvent{NotificationID: uuid.New(), UserID: uuid.New(), Title: "Truck Nearby"}

	tests := []struct {
		name    string
		deliver error
		want    int
	}{
		{name: "delivered", want: http.StatusOK},
		{name: "rejected is acknowledged", deliver: errors.Wrap(service.ErrPushRejected, "unregistered"), want: http.StatusOK},
		{name: "transient failure asks for redelivery", deliver: errors.New("fcm unavailable"), want: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, push := newTestPushHandler(t)
			push.EXPECT().Deliver(mock.Anything, mock.AnythingOfType("*entity.NotificationEvent")).Return(tt.deliver).Once()

			rec := servePush(t, h, pushBody(t, event, nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandlePush_BadPayload(t *testing.T) {
	h, _ := newTestPushHandler(t)

	rec := servePush(t, h, `{"message":{"data":"%%%"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = servePush(t, h, `{"message":{"data":"`+base64.StdEncoding.EncodeToString([]byte("nope"))+`"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_RequestIDFromAttributes(t *testing.T) {
	h, push := newTestPushHandler(t)
	event := &entity.NotificationEvent{NotificationID: uuid.New(), UserID: uuid.New(), RequestID: "from-event"}

	push.EXPECT().Deliver(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ *entity.NotificationEvent) error {
			assert.Equal(t, "from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

			return nil
		}).Once()

	rec := servePush(t, h, pushBody(t, event, map[string]string{"request_id": "from-attributes"}))

	assert.Equal(t, http.StatusOK, rec.Code)
}
