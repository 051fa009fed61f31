package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/search"
	"hotelmanager/internal/domains/session"
	"hotelmanager/internal/domains/user/model"
	"hotelmanager/internal/domains/user/model/dto"
	"hotelmanager/shared"
	"hotelmanager/shared/cache"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/validator"

	"github.com/rs/zerolog/log"
)

const (
	cacheUser    = "user"
	cacheUserAll = "user:all"
)

type User interface {
	GetAll(ctx context.Context, criteria search.UserCriteria) (dto.GetUsersResponse, error)
	Profile(ctx context.Context) (dto.UserResponse, error)
	UpdateRole(ctx context.Context, id int64, req dto.UpdateRoleRequest) (dto.UserResponse, error)
}

type serviceImpl struct {
	api     gateway.UserAPI
	session session.Session
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(api gateway.UserAPI, session session.Session, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		api:     api,
		session: session,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, criteria search.UserCriteria) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	users, err := s.users(ctx)
	if err != nil {
		return res, err
	}

	result, err := search.FilterUsers(users, criteria)
	if errors.Is(err, search.ErrPageOutOfRange) {
		log.Debug().Int("page", criteria.Page).Msg("user page out of range, serving first page")
	}

	res.FromResult(result, s.cfg.App.PhoneRegions)

	return res, nil
}

func (s *serviceImpl) users(ctx context.Context) (users []model.User, err error) {
	if err = s.cache.Get(ctx, cacheUserAll, &users); err == nil {
		log.Debug().Str("cacheKey", cacheUserAll).Msg("cache hit for users")

		return users, nil
	}

	users, err = s.api.Users(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheUserAll, users, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save users to cache")
		}
	}()

	return users, nil
}

// Profile fetches the signed in user and refreshes the copy kept in the session.
func (s *serviceImpl) Profile(ctx context.Context) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Profile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.api.Profile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get profile")

		return res, fmt.Errorf("failed to get profile: %w", err)
	}

	if err := s.session.SetUser(ctx, user); err != nil {
		log.Warn().Err(err).Msg("failed to refresh session profile")
	}

	res.FromModel(user, s.cfg.App.PhoneRegions)

	return res, nil
}

func (s *serviceImpl) UpdateRole(ctx context.Context, id int64, req dto.UpdateRoleRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateRole")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	users, err := s.api.Users(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	var (
		user  model.User
		found bool
	)

	for _, u := range users {
		if u.ID == id {
			user, found = u, true

			break
		}
	}

	if !found {
		return res, failure.NotFound(fmt.Sprintf("user %d not found", id))
	}

	role := req.Role
	if role == "" {
		role = user.ToggledRole()
	}

	if err = s.api.UpdateRole(ctx, id, role); err != nil {
		log.Error().Err(err).Int64("user_id", id).Str("role", role).Msg("failed to update role")

		return res, fmt.Errorf("failed to update role: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheUser)
	}()

	user.Role = role
	res.FromModel(user, s.cfg.App.PhoneRegions)

	return res, nil
}
