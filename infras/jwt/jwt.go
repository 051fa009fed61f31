package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims are the fields the backend puts in its access tokens. The subject is the user's email.
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Inspector reads claims from backend issued tokens. The backend owns the signing key,
// so signatures are not verified here; the backend rejects forged tokens with a 401.
type Inspector interface {
	Inspect(token string, now time.Time) (*Claims, error)
	TTL(token string, now time.Time, fallback time.Duration) time.Duration
}

type inspector struct {
	parser *jwt.Parser
}

func New() Inspector {
	return &inspector{
		parser: jwt.NewParser(),
	}
}

// Inspect parses token and reports ErrExpiredToken once exp has passed.
func (i *inspector) Inspect(token string, now time.Time) (*Claims, error) {
	token = strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
	if token == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	if claims.ExpiresAt != nil && !now.Before(claims.ExpiresAt.Time) {
		return claims, ErrExpiredToken
	}

	return claims, nil
}

// TTL is the time left before the token expires, or fallback when the token carries no exp.
// Unreadable or expired tokens yield zero.
func (i *inspector) TTL(token string, now time.Time, fallback time.Duration) time.Duration {
	claims, err := i.Inspect(token, now)
	if err != nil {
		return 0
	}

	if claims.ExpiresAt == nil {
		return fallback
	}

	return claims.ExpiresAt.Sub(now)
}

// ExtractTokenFromHeader extracts the token from an Authorization header.
func ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is required")
	}

	const prefix = "Bearer "
	if len(authHeader) < len(prefix) || authHeader[:len(prefix)] != prefix {
		return "", errors.New("authorization header must start with 'Bearer '")
	}

	return authHeader[len(prefix):], nil
}
