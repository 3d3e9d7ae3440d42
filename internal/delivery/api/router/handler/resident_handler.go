package handler

import (
	"context"
	"log/slog"
	"net/http"

	"wastetrack/internal/delivery/api/middleware"
	"wastetrack/internal/delivery/api/response"
	deliverycontext "wastetrack/internal/delivery/context"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ResidentHandlerParams holds dependencies for ResidentHandler, injected by Fx.
type ResidentHandlerParams struct {
	fx.In

	NotifierUC usecase.NotifierUsecase
	Logger     *slog.Logger
}

// ResidentHandler serves the polls a resident client runs in the background.
// Notifier failures are logged and answered with an empty result so the poll loop keeps going.
type ResidentHandler struct {
	notifierUC usecase.NotifierUsecase
	logger     *slog.Logger
}

// NewResidentHandler is the constructor for ResidentHandler
func NewResidentHandler(params ResidentHandlerParams) *ResidentHandler {
	return &ResidentHandler{
		notifierUC: params.NotifierUC,
		logger:     params.Logger,
	}
}

// ProximityRequest is the resident's current location.
type ProximityRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// ProximityResponse lists the collecting trucks with their distance to the resident.
type ProximityResponse struct {
	Trucks []*usecase.NearbyTruck `json:"trucks"`
}

// CheckProximity runs the proximity check against every collecting truck.
func (h *ResidentHandler) CheckProximity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ProximityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	ctx := c.Request().Context()
	resident := usecase.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	trucks, err := h.notifierUC.CheckNearbyTrucks(ctx, userID, resident)
	if err != nil {
		h.log(c).Error("Proximity check failed", slog.String("user_id", userID.String()), slog.Any("error", err))
	}
	if trucks == nil {
		trucks = []*usecase.NearbyTruck{}
	}

	return response.Success(c, http.StatusOK, ProximityResponse{Trucks: trucks})
}

// CheckSchedule sends today's schedule reminder when one is due.
func (h *ResidentHandler) CheckSchedule(c echo.Context) error {
	return h.poll(c, "Schedule check failed", h.notifierUC.NotifyTodaySchedule)
}

// CheckReports notifies the resident about report status changes.
func (h *ResidentHandler) CheckReports(c echo.Context) error {
	return h.poll(c, "Report status check failed", h.notifierUC.CheckReportStatusChanges)
}

// Initialize runs the first schedule check and seeds the report baseline.
func (h *ResidentHandler) Initialize(c echo.Context) error {
	return h.poll(c, "Resident initialization failed", h.notifierUC.InitializeResidentNotifications)
}

func (h *ResidentHandler) poll(c echo.Context, failure string, run func(ctx context.Context, userID uuid.UUID) error) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	checked := true
	if err := run(c.Request().Context(), userID); err != nil {
		checked = false
		h.log(c).Error(failure, slog.String("user_id", userID.String()), slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, map[string]bool{"checked": checked})
}

func (h *ResidentHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}
