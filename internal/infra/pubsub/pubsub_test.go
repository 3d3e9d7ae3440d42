package pubsub

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wastetrack/internal/domain/entity"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *entity.NotificationEvent {
	return &entity.NotificationEvent{
		RequestID:      "req-1",
		NotificationID: uuid.New(),
		UserID:         uuid.New(),
		Title:          "Truck Nearby",
		Message:        "TRUCK-01 is 44m away",
		Type:           entity.NotificationInfo,
		Link:           "/resident/track",
		CreatedAt:      time.Now().UTC(),
	}
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	event := newTestEvent()

	var received entity.PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &received)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, event.NotificationID.String(), received.Message.MessageID)
	assert.Equal(t, event.UserID.String(), received.Message.Attributes["user_id"])

	var decoded entity.NotificationEvent
	require.NoError(t, json.Unmarshal(received.Message.Data, &decoded))
	assert.Equal(t, event.NotificationID, decoded.NotificationID)
	assert.Equal(t, "/resident/track", decoded.Link)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishNotificationEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "503")
}

func TestKafkaPublisher_KeysByUser(t *testing.T) {
	event := newTestEvent()

	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		key, err := msg.Key.Encode()
		if err != nil {
			return err
		}
		assert.Equal(t, "notification-events", msg.Topic)
		assert.Equal(t, event.UserID.String(), string(key))
		assert.Len(t, msg.Headers, 3)

		return nil
	})

	publisher := newKafkaPublisher(producer, "notification-events", slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishNotificationEvent(context.Background(), event))
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_SendFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	publisher := newKafkaPublisher(producer, "notification-events", slog.New(slog.DiscardHandler))
	err := publisher.PublishNotificationEvent(context.Background(), newTestEvent())
	assert.ErrorIs(t, err, sarama.ErrOutOfBrokers)
	require.NoError(t, publisher.Close())
}

func TestKafkaPublisher_CancelledContext(t *testing.T) {
	producer := mocks.NewSyncProducer(t, mocks.NewTestConfig())
	publisher := newKafkaPublisher(producer, "notification-events", slog.New(slog.DiscardHandler))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := publisher.PublishNotificationEvent(ctx, newTestEvent())
	assert.ErrorIs(t, err, context.Canceled)
	require.NoError(t, publisher.Close())
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, SplitBrokers(" a:9092, ,b:9092 "))
	assert.Empty(t, SplitBrokers(""))
}
