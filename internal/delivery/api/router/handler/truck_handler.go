package handler

import (
	"log/slog"
	"net/http"

	"wastetrack/internal/delivery/api/middleware"
	"wastetrack/internal/delivery/api/response"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TruckHandlerParams holds dependencies for TruckHandler, injected by Fx.
type TruckHandlerParams struct {
	fx.In

	TruckUC usecase.TruckUsecase
	Logger  *slog.Logger
}

// TruckHandler handles the live truck endpoints.
type TruckHandler struct {
	truckUC usecase.TruckUsecase
	logger  *slog.Logger
}

// NewTruckHandler is the constructor for TruckHandler
func NewTruckHandler(params TruckHandlerParams) *TruckHandler {
	return &TruckHandler{
		truckUC: params.TruckUC,
		logger:  params.Logger,
	}
}

// PositionRequest is a GPS fix reported by a collector client.
type PositionRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
}

// StopCollectingRequest is the optional body of the stop endpoint.
type StopCollectingRequest struct {
	ClearPosition bool `json:"clear_position"`
}

// MarkFullResponse reports the truck and how many stops were recorded as skipped.
type MarkFullResponse struct {
	Truck        *entity.TruckStatus `json:"truck"`
	SkippedStops int                 `json:"skipped_stops"`
}

// ListActive returns the trucks currently collecting.
func (h *TruckHandler) ListActive(c echo.Context) error {
	trucks, err := h.truckUC.ListActive(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, trucks)
}

// GetStatus returns one truck's live record.
func (h *TruckHandler) GetStatus(c echo.Context) error {
	truck, err := h.truckUC.GetStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, truck)
}

// UpdatePosition stores the truck's latest GPS fix.
func (h *TruckHandler) UpdatePosition(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req PositionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	position := usecase.Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	truck, err := h.truckUC.UpdatePosition(c.Request().Context(), collectorID, c.Param("id"), position)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, truck)
}

// StartCollecting puts the truck on the road.
func (h *TruckHandler) StartCollecting(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	truck, err := h.truckUC.StartCollecting(c.Request().Context(), collectorID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, truck)
}

// StopCollecting takes the truck off the road.
func (h *TruckHandler) StopCollecting(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StopCollectingRequest
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid stop input")
		}
	}

	truck, err := h.truckUC.StopCollecting(c.Request().Context(), collectorID, c.Param("id"), req.ClearPosition)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, truck)
}

// MarkFull reports the truck full and records the rest of today's route as skipped.
func (h *TruckHandler) MarkFull(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	truck, skipped, err := h.truckUC.MarkFull(c.Request().Context(), collectorID, c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, MarkFullResponse{Truck: truck, SkippedStops: skipped})
}
