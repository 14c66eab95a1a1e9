package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxdesk/internal/config"
	"taxdesk/internal/domain"
	"taxdesk/internal/service"
)

var jwtCfg = config.JWTConfig{Secret: "test-secret", Issuer: "taxdesk"}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := service.NewTokenService(jwtCfg)

	token, err := svc.Issue(admin, time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin, claims.Actor())
}

func TestTokenService_Expired(t *testing.T) {
	svc := service.NewTokenService(jwtCfg)

	token, err := svc.Issue(staff, -time.Minute)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := service.NewTokenService(config.JWTConfig{Secret: "other", Issuer: "taxdesk"}).Issue(staff, time.Hour)
	require.NoError(t, err)

	_, err = service.NewTokenService(jwtCfg).ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_WrongIssuer(t *testing.T) {
	token, err := service.NewTokenService(config.JWTConfig{Secret: "test-secret", Issuer: "someone-else"}).Issue(staff, time.Hour)
	require.NoError(t, err)

	_, err = service.NewTokenService(jwtCfg).ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_UnknownRole(t *testing.T) {
	claims := &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "taxdesk",
			Audience:  jwt.ClaimStrings{"access"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		TenantID: uuid.New(),
		UserID:   uuid.New(),
		Role:     "owner",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = service.NewTokenService(jwtCfg).ValidateToken(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_Garbage(t *testing.T) {
	_, err := service.NewTokenService(jwtCfg).ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
