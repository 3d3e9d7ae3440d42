package handler

import (
	"net/http"

	"wastetrack/internal/delivery/api/middleware"
	"wastetrack/internal/delivery/api/response"
	"wastetrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionResponse describes the caller as seen by the API.
type SessionResponse struct {
	UserID uuid.UUID    `json:"user_id"`
	Roles  entity.Roles `json:"roles"`
}

// Me returns the user id and roles carried by the access token. Clients use it to pick
// the resident or collector screens.
func Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	roles, _ := middleware.GetRoles(c)
	if roles == nil {
		roles = entity.Roles{}
	}

	return response.Success(c, http.StatusOK, SessionResponse{UserID: userID, Roles: roles})
}
