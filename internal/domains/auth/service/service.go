package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/otel"
	"hotelmanager/internal/domains/auth/model/dto"
	"hotelmanager/internal/domains/session"
	userModel "hotelmanager/internal/domains/user/model"
	"hotelmanager/shared/constant"
	"hotelmanager/shared/failure"
	"hotelmanager/shared/validator"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.LoginResponse, error)
	Logout(ctx context.Context) error
}

type serviceImpl struct {
	auth    gateway.AuthAPI
	users   gateway.UserAPI
	session session.Session
	cfg     *config.Config
	otel    otel.Otel
}

func New(auth gateway.AuthAPI, users gateway.UserAPI, session session.Session, cfg *config.Config, otel otel.Otel) Auth {
	return &serviceImpl{
		auth:    auth,
		users:   users,
		session: session,
		cfg:     cfg,
		otel:    otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	return s.login(ctx, req.ToGateway(), userModel.User{Email: req.Email})
}

// login stores the token in the caller's session, opening one when the context
// has none, then caches the profile. fallback is kept when the profile cannot be read.
func (s *serviceImpl) login(ctx context.Context, req gateway.LoginRequest, fallback userModel.User) (res dto.LoginResponse, err error) {
	resp, err := s.auth.Login(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("login rejected")

		return res, fmt.Errorf("failed to login: %w", err)
	}

	if resp.Token == "" {
		return res, failure.BadGateway("login response carried no token")
	}

	sessionID := session.IDFromContext(ctx)
	if sessionID == "" {
		if sessionID, err = s.session.Open(ctx); err != nil {
			return res, fmt.Errorf("failed to open session: %w", err)
		}

		ctx = session.WithID(ctx, sessionID)
	}

	if err = s.session.SetToken(ctx, resp.Token); err != nil {
		log.Error().Err(err).Msg("failed to store session token")

		return res, fmt.Errorf("failed to store session token: %w", err)
	}

	user, err := s.users.Profile(ctx)
	if err != nil {
		log.Warn().Err(err).Str("email", req.Email).Msg("profile unavailable after login, using login response")

		user = fallback
	}

	if resp.Role != "" {
		user.Role = resp.Role
	}

	if err = s.session.SetUser(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to store session user")

		return res, fmt.Errorf("failed to store session user: %w", err)
	}

	res.FromLogin(sessionID, resp, user, s.cfg.App.PhoneRegions)

	return res, nil
}

// Register creates the account and signs the new user in.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err
	}

	register := req.ToGateway()

	if _, err = s.auth.Register(ctx, register); err != nil {
		log.Error().Err(err).Str("email", register.Email).Msg("failed to register user")

		return res, fmt.Errorf("failed to register user: %w", err)
	}

	fallback := userModel.User{
		Name:        register.Name,
		Email:       register.Email,
		PhoneNumber: register.PhoneNumber,
		Role:        constant.RoleUser,
	}

	return s.login(ctx, gateway.LoginRequest{Email: register.Email, Password: register.Password}, fallback)
}

func (s *serviceImpl) Logout(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Logout")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if session.IDFromContext(ctx) == "" {
		return nil
	}

	if err = s.session.Clear(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear session")

		return fmt.Errorf("failed to clear session: %w", err)
	}

	return nil
}
