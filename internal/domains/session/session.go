// Package session keeps the backend token and profile of each console session in Redis.
package session

//go:generate go run go.uber.org/mock/mockgen -source=./session.go -destination=./mocks/session_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/jwt"
	"hotelmanager/infras/otel"
	userModel "hotelmanager/internal/domains/user/model"
	"hotelmanager/shared"
	"hotelmanager/shared/cache"
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	keySegment   = "session"
	keyToken     = "token"
	keyUser      = "user"
	otelIDAttrib = "session.id"
)

// Session is the per-caller state. The session id travels in the context.
type Session interface {
	Open(ctx context.Context) (string, error)
	Token(ctx context.Context) (string, error)
	User(ctx context.Context) (userModel.User, error)
	SetToken(ctx context.Context, token string) error
	SetUser(ctx context.Context, user userModel.User) error
	Clear(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	Role(ctx context.Context) string
}

type storeImpl struct {
	cache     cache.RedisCache
	inspector jwt.Inspector
	otel      otel.Otel
	prefix    string
	fallback  time.Duration
}

func New(redisCache cache.RedisCache, inspector jwt.Inspector, cfg *config.Config, ot otel.Otel) Session {
	return &storeImpl{
		cache:     redisCache,
		inspector: inspector,
		otel:      ot,
		prefix:    cfg.Session.KeyPrefix,
		fallback:  time.Duration(cfg.Session.TTLSeconds) * time.Second,
	}
}

// WithID returns a context carrying the session id.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, constant.ContextKeySessionID, id)
}

// IDFromContext returns the session id, or an empty string.
func IDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(constant.ContextKeySessionID).(string)

	return id
}

func (s *storeImpl) key(ctx context.Context, entry string) (string, error) {
	id := IDFromContext(ctx)
	if id == "" {
		return "", failure.LoginRequired
	}

	return shared.BuildCacheKey(s.prefix, keySegment, id, entry), nil
}

// Open issues a fresh session id. Nothing is stored until a token is set.
func (s *storeImpl) Open(ctx context.Context) (string, error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Open")
	defer scope.End()

	id := uuid.NewString()
	scope.SetAttribute(otelIDAttrib, id)

	return id, nil
}

// Token returns the stored bearer token. Missing or expired tokens read as logged out.
func (s *storeImpl) Token(ctx context.Context) (token string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Token")
	defer scope.End()

	key, err := s.key(ctx, keyToken)
	if err != nil {
		return "", err
	}

	if err = s.cache.Get(ctx, key, &token); err != nil {
		if errors.Is(err, cache.Nil) {
			return "", failure.LoginRequired
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read session token")

		return "", fmt.Errorf("failed to read session token: %w", err)
	}

	if _, err = s.inspector.Inspect(token, calendar.Now()); errors.Is(err, jwt.ErrExpiredToken) {
		log.Debug().Str("session", IDFromContext(ctx)).Msg("session token expired")

		if clearErr := s.Clear(ctx); clearErr != nil {
			log.Error().Err(clearErr).Msg("failed to clear expired session")
		}

		return "", failure.LoginRequired
	}

	return token, nil
}

func (s *storeImpl) User(ctx context.Context) (user userModel.User, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".User")
	defer scope.End()

	key, err := s.key(ctx, keyUser)
	if err != nil {
		return user, err
	}

	if err = s.cache.Get(ctx, key, &user); err != nil {
		if errors.Is(err, cache.Nil) {
			return user, failure.LoginRequired
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read session user")

		return user, fmt.Errorf("failed to read session user: %w", err)
	}

	return user, nil
}

// SetToken stores token until its exp claim, or for the configured TTL when it has none.
func (s *storeImpl) SetToken(ctx context.Context, token string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".SetToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	key, err := s.key(ctx, keyToken)
	if err != nil {
		return err
	}

	ttl := s.inspector.TTL(token, calendar.Now(), s.fallback)
	if ttl <= 0 {
		return failure.Unauthorized("received an expired or unreadable token")
	}

	if err = s.cache.Save(ctx, key, token, seconds(ttl)); err != nil {
		return fmt.Errorf("failed to save session token: %w", err)
	}

	return nil
}

// SetUser stores the profile for as long as the current token lives.
func (s *storeImpl) SetUser(ctx context.Context, user userModel.User) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".SetUser")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	token, err := s.Token(ctx)
	if err != nil {
		return err
	}

	key, err := s.key(ctx, keyUser)
	if err != nil {
		return err
	}

	// The profile is cached without its bookings; those are always fetched fresh.
	user.Bookings = nil

	ttl := s.inspector.TTL(token, calendar.Now(), s.fallback)
	if err = s.cache.Save(ctx, key, user, seconds(ttl)); err != nil {
		return fmt.Errorf("failed to save session user: %w", err)
	}

	return nil
}

func (s *storeImpl) Clear(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSessionScopeName, constant.OtelSessionScopeName+".Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	for _, entry := range []string{keyToken, keyUser} {
		key, err := s.key(ctx, entry)
		if err != nil {
			return err
		}

		if err = s.cache.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
	}

	return nil
}

func (s *storeImpl) IsLoggedIn(ctx context.Context) bool {
	_, err := s.Token(ctx)

	return err == nil
}

func (s *storeImpl) IsAdmin(ctx context.Context) bool {
	return s.Role(ctx) == constant.RoleAdmin
}

// Role prefers the stored profile and falls back to the token's role claim.
func (s *storeImpl) Role(ctx context.Context) string {
	token, err := s.Token(ctx)
	if err != nil {
		return ""
	}

	if user, err := s.User(ctx); err == nil && user.Role != "" {
		return user.Role
	}

	claims, err := s.inspector.Inspect(token, calendar.Now())
	if err != nil {
		return ""
	}

	return claims.Role
}

func seconds(d time.Duration) int {
	secs := int(d / time.Second)
	if secs < 1 {
		return 1
	}

	return secs
}
