package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	UserID uuid.UUID
	Roles  []string
	jwt.RegisteredClaims
}

// TokenService validates bearer tokens issued by the account service.
type TokenService interface {
	// GenerateAccessToken signs an access token for the user. Issuance belongs to the
	// account service; this is used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID, roles []string) (string, error)

	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
