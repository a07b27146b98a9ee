package auth

import (
	"testing"
	"time"

	"prepmap/config"
	"prepmap/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{SecretKey: config.SecretKeyConfig{
		Access: "test_access_secret_key_very_long_for_testing",
	}}
	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	svc := newTestService(t)

	token, err := svc.GenerateToken("ops@prepmap", []string{service.RoleAdmin})
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops@prepmap", claims.Subject)
	assert.Equal(t, []string{service.RoleAdmin}, claims.Roles)
	assert.Equal(t, tokenTypeAccess, claims.Type)
	assert.Equal(t, defaultTTL, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestService(t)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestService(t)
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateToken("ops", nil)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_WrongSecretOrType(t *testing.T) {
	svc := newTestService(t)

	other := &jwtService{secret: []byte("another-secret"), ttl: time.Minute, now: time.Now}
	foreign, err := other.GenerateToken("ops", []string{service.RoleAdmin})
	require.NoError(t, err)
	_, err = svc.ValidateToken(foreign)
	assert.Error(t, err)

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "ops",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	signed, err := refresh.SignedString(svc.secret)
	require.NoError(t, err)
	_, err = svc.ValidateToken(signed)
	assert.ErrorContains(t, err, "unexpected token type")
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)

	_, err = newTestService(t).GenerateToken("", nil)
	assert.Error(t, err)
}
