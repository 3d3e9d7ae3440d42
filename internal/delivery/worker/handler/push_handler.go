package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"wastetrack/config"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/domain/constants"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// PushHandler receives Pub/Sub push deliveries and hands each event to the push usecase.
//
// The status code tells Pub/Sub what to do with the message: 200 acknowledges it,
// 503 asks for redelivery. Malformed or rejected events are acknowledged.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	pushUsecase    usecase.PushUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	PushUsecase usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler. Push tokens are verified for the
// google provider outside development.
func NewPushHandler(params PushHandlerParams) *PushHandler {
	pubsubCfg := params.Config.PubSub

	return &PushHandler{
		verifyPushAuth: pubsubCfg != nil &&
			pubsubCfg.Provider == constants.PubSubProviderGoogle &&
			params.Config.Env.Env != constants.EnvDevelop,
		logger:      params.Logger,
		pushUsecase: params.PushUsecase,
	}
}

func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPushToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var envelope entity.PushEnvelope
	if err := c.Bind(&envelope); err != nil {
		h.logger.Error("[Worker] Failed to parse push envelope", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event entity.NotificationEvent
	if err := json.Unmarshal(envelope.Message.Data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, envelope.Message.Attributes, &event)
	reqLogger := h.logger.With(
		slog.String("request_id", requestID),
		slog.String("notification_id", event.NotificationID.String()),
	)
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	err := h.pushUsecase.Deliver(ctx, &event)
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, service.ErrPushRejected):
		reqLogger.Warn("[Worker] Push rejected, acknowledging", slog.Any("error", err))

		return c.NoContent(http.StatusOK)
	default:
		reqLogger.Error("[Worker] Push failed, asking for redelivery", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}
}

// extractRequestID prefers the message attribute, then the event field, then the id the
// request middleware assigned.
func (h *PushHandler) extractRequestID(ctx context.Context, attributes map[string]string, event *entity.NotificationEvent) string {
	for _, candidate := range []string{attributes["request_id"], event.RequestID, deliverycontext.GetRequestIDFromContext(ctx)} {
		if candidate != "" {
			return candidate
		}
	}

	return uuid.New().String()
}

// verifyPushToken checks the Google-signed OIDC token of an authenticated push
// subscription. The audience is the URL of this endpoint.
func verifyPushToken(req *http.Request) error {
	token, found := strings.CutPrefix(req.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !found || token == "" {
		return errors.New("missing bearer token")
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := scheme + "://" + req.Host + req.URL.Path

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}
	if !googleIssuers[payload.Issuer] {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok && !verified {
		return errors.New("email not verified")
	}

	return nil
}
