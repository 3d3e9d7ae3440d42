package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wastetrack/internal/domain/entity"
	"wastetrack/internal/domain/service"
	"wastetrack/internal/errors"
	mockSvc "wastetrack/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveAuth(t *testing.T, m *AuthMiddleware, authHeader string, roles ...entity.Role) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	next := func(c echo.Context) error {
		userID, ok := GetUserID(c)
		require.True(t, ok)

		return c.String(http.StatusOK, userID.String())
	}

	var h echo.HandlerFunc = next
	if len(roles) > 0 {
		h = m.RequireRole(roles...)(h)
	}
	require.NoError(t, m.Authenticate(h)(c))

	return rec
}

func TestAuthenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
	}{
		{name: "missing header", wantStatus: http.StatusUnauthorized},
		{name: "not a bearer token", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token expired")).Once()
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").
					Return(&service.Claims{UserID: userID, Roles: []string{"resident"}}, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}

			rec := serveAuth(t, NewAuthMiddleware(tokens), tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		tokenRoles []string
		required   []entity.Role
		wantStatus int
	}{
		{name: "matching role", tokenRoles: []string{"collector"}, required: []entity.Role{entity.RoleCollector}, wantStatus: http.StatusOK},
		{name: "admin passes everything", tokenRoles: []string{"admin"}, required: []entity.Role{entity.RoleResident}, wantStatus: http.StatusOK},
		{name: "wrong role", tokenRoles: []string{"resident"}, required: []entity.Role{entity.RoleCollector}, wantStatus: http.StatusForbidden},
		{name: "unknown role strings are dropped", tokenRoles: []string{"superuser"}, required: []entity.Role{entity.RoleCollector}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			tokens.EXPECT().ValidateToken("token").
				Return(&service.Claims{UserID: uuid.New(), Roles: tt.tokenRoles}, nil).Once()

			rec := serveAuth(t, NewAuthMiddleware(tokens), "Bearer token", tt.required...)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
