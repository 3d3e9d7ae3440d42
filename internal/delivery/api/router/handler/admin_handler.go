package handler

import (
	"log/slog"
	"net/http"

	"wastetrack/internal/delivery/api/response"
	"wastetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	NotifierUC usecase.NotifierUsecase
	RouteUC    usecase.RouteUsecase
	Logger     *slog.Logger
}

// AdminHandler exposes manual triggers for broadcast and sweep jobs.
type AdminHandler struct {
	notifierUC usecase.NotifierUsecase
	routeUC    usecase.RouteUsecase
	logger     *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		notifierUC: params.NotifierUC,
		routeUC:    params.RouteUC,
		logger:     params.Logger,
	}
}

// SweepRequest selects the day to sweep; empty means today.
type SweepRequest struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// BroadcastResponse reports a broadcast outcome. Partial failures still return 200.
type BroadcastResponse struct {
	Notified int    `json:"notified"`
	Error    string `json:"error,omitempty"`
}

// BroadcastCollectionStarted tells every resident that collection has started.
func (h *AdminHandler) BroadcastCollectionStarted(c echo.Context) error {
	notified, err := h.notifierUC.NotifyAllResidentsCollectionStarted(c.Request().Context())
	resp := BroadcastResponse{Notified: notified}
	if err != nil {
		if notified == 0 {
			return response.HandleAppError(c, err)
		}
		resp.Error = err.Error()
	}

	return response.Success(c, http.StatusOK, resp)
}

// Sweep escalates unresolved stops of a day to missed.
func (h *AdminHandler) Sweep(c echo.Context) error {
	var req SweepRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid sweep input")
		}
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	result, err := h.routeUC.SweepDay(c.Request().Context(), req.Date)
	if err != nil && result == nil {
		return response.HandleAppError(c, err)
	}
	if err != nil {
		h.logger.Warn("Sweep finished with failures", slog.Int("failed", result.Failed), slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, result)
}
