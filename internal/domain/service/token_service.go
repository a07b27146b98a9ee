package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin may trigger maintenance operations such as reseeding.
const RoleAdmin = "admin"

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for subject.
	GenerateToken(subject string, roles []string) (string, error)

	// ValidateToken checks the signature, expiry and type of an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
