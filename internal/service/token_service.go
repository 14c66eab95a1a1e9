package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taxdesk/internal/config"
	"taxdesk/internal/domain"
)

const accessAudience = "access"

// Claims represents the JWT claims with tenant context.
type Claims struct {
	jwt.RegisteredClaims
	TenantID uuid.UUID       `json:"tenant_id"`
	UserID   uuid.UUID       `json:"user_id"`
	Role     domain.UserRole `json:"role"`
}

// Actor converts the claims into the caller identity passed to services.
func (c *Claims) Actor() domain.Actor {
	return domain.Actor{TenantID: c.TenantID, UserID: c.UserID, Role: c.Role}
}

// TokenService verifies caller identity tokens. Issue exists for operators
// and tests; login flows live outside this service.
type TokenService interface {
	Issue(actor domain.Actor, ttl time.Duration) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type tokenService struct {
	cfg config.JWTConfig
}

// NewTokenService creates a new TokenService implementation.
func NewTokenService(cfg config.JWTConfig) TokenService {
	return &tokenService{cfg: cfg}
}

func (s *tokenService) Issue(actor domain.Actor, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.UserID.String(),
			Issuer:    s.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			Audience:  jwt.ClaimStrings{accessAudience},
		},
		TenantID: actor.TenantID,
		UserID:   actor.UserID,
		Role:     actor.Role,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

func (s *tokenService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Secret), nil
	},
		jwt.WithAudience(accessAudience),
		jwt.WithIssuer(s.cfg.Issuer),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	if !token.Valid {
		return nil, domain.ErrUnauthorized
	}
	switch claims.Role {
	case domain.RoleAdmin, domain.RoleStaff:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrUnauthorized, claims.Role)
	}
	if claims.TenantID == uuid.Nil || claims.UserID == uuid.Nil {
		return nil, fmt.Errorf("%w: missing tenant or user", domain.ErrUnauthorized)
	}
	return claims, nil
}
