// Package notification delivers push messages to resident devices.
package notification

import (
	"context"
	"log/slog"

	"wastetrack/config"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// topicSender is the subset of the FCM client used here.
type topicSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type firebaseService struct {
	client topicSender
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig) (service.PushService, error) {
	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseService{client: client}, nil
}

// SendToTopic sends a push notification to every device subscribed to the topic
func (s *firebaseService) SendToTopic(ctx context.Context, topic, title, body string, data map[string]string) (string, error) {
	message := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
	}

	messageID, err := s.client.Send(ctx, message)
	if err != nil {
		if isPermanentFailure(err) {
			return "", errors.Wrapf(service.ErrPushRejected, "fcm: %v", err)
		}

		return "", errors.Wrap(err, "failed to send notification")
	}

	return messageID, nil
}

// isPermanentFailure reports whether retrying the send cannot succeed.
func isPermanentFailure(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err) || messaging.IsSenderIDMismatch(err)
}

// logPushService stands in for FCM when no Firebase project is configured.
type logPushService struct {
	logger *slog.Logger
}

func (s *logPushService) SendToTopic(ctx context.Context, topic, title, body string, _ map[string]string) (string, error) {
	s.logger.InfoContext(ctx, "[LogPush] Firebase disabled, push not sent",
		slog.String("topic", topic),
		slog.String("title", title),
		slog.String("body", body),
	)

	return "", nil
}

// Params holds dependencies for the push service, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New selects FCM when Firebase is configured and a logging sender otherwise.
func New(params Params) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.CredentialsPath == "") {
		params.Logger.Info("Firebase not configured, push messages will only be logged")

		return &logPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg)
}
