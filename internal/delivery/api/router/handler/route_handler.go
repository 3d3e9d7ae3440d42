package handler

import (
	"context"
	"log/slog"
	"net/http"

	"wastetrack/internal/delivery/api/middleware"
	"wastetrack/internal/delivery/api/response"
	"wastetrack/internal/domain/entity"
	"wastetrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler handles a collector's daily route.
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// StopRequest identifies a stop by schedule id, or by street and barangay when the id is stale.
type StopRequest struct {
	ScheduleID string `json:"schedule_id" query:"schedule_id" validate:"omitempty,uuid"`
	StreetName string `json:"street_name" query:"street_name" validate:"required_without=ScheduleID"`
	Barangay   string `json:"barangay" query:"barangay"`
}

func (r StopRequest) toStop() entity.Stop {
	stop := entity.Stop{StreetName: r.StreetName, Barangay: r.Barangay}
	if id, err := uuid.Parse(r.ScheduleID); err == nil {
		stop.ScheduleID = id
	}

	return stop
}

// RouteStatusResponse is the resolved status of one stop.
type RouteStatusResponse struct {
	Status entity.CollectionStatus `json:"status"`
	Found  bool                    `json:"found"`
}

// GetTodayRoute lists the collector's stops for today.
func (h *RouteHandler) GetTodayRoute(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	route, err := h.routeUC.GetTodayRoute(c.Request().Context(), collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route)
}

// GetTodayRouteGeoJSON returns the remaining route lines as a bare GeoJSON FeatureCollection.
func (h *RouteHandler) GetTodayRouteGeoJSON(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	fc, err := h.routeUC.TodayRouteGeoJSON(c.Request().Context(), collectorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/geo+json")

	return c.JSON(http.StatusOK, fc)
}

// GetRouteStatus returns today's status of a stop.
func (h *RouteHandler) GetRouteStatus(c echo.Context) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stop query")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	status, found, err := h.routeUC.GetRouteStatus(c.Request().Context(), collectorID, req.toStop())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RouteStatusResponse{Status: status, Found: found})
}

// CompleteStop marks a stop collected.
func (h *RouteHandler) CompleteStop(c echo.Context) error {
	return h.markStop(c, h.routeUC.CompleteStop)
}

// SkipStop marks a stop skipped.
func (h *RouteHandler) SkipStop(c echo.Context) error {
	return h.markStop(c, h.routeUC.SkipStop)
}

type markFunc func(ctx context.Context, collectorID uuid.UUID, stop entity.Stop) (*entity.CollectionStatusRecord, error)

func (h *RouteHandler) markStop(c echo.Context, mark markFunc) error {
	collectorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req StopRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stop input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	record, err := mark(c.Request().Context(), collectorID, req.toStop())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, record)
}
