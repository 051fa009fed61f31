//go:build wireinject
// +build wireinject

package di

import (
	"hotelmanager/config"
	"hotelmanager/infras/gateway"
	"hotelmanager/infras/jwt"
	"hotelmanager/infras/otel"
	"hotelmanager/infras/redis"
	"hotelmanager/internal/domains/session"
	"hotelmanager/permissions"
	"hotelmanager/shared/cache"
	"hotelmanager/transport/http"
	"hotelmanager/transport/http/middleware"
	"hotelmanager/transport/http/router"

	"github.com/google/wire"
	goRedis "github.com/redis/go-redis/v9"

	authService "hotelmanager/internal/domains/auth/service"
	bookingService "hotelmanager/internal/domains/booking/service"
	dashboardService "hotelmanager/internal/domains/dashboard/service"
	roomService "hotelmanager/internal/domains/room/service"
	userService "hotelmanager/internal/domains/user/service"
	authHandler "hotelmanager/internal/handlers/auth"
	bookingHandler "hotelmanager/internal/handlers/booking"
	dashboardHandler "hotelmanager/internal/handlers/dashboard"
	roomHandler "hotelmanager/internal/handlers/room"
	userHandler "hotelmanager/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	wire.Bind(new(goRedis.UniversalClient), new(*goRedis.Client)),
	jwt.New,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	session.New,
)

var backend = wire.NewSet(
	wire.Bind(new(gateway.Credentials), new(session.Session)),
	gateway.New,
	wire.Bind(new(gateway.AuthAPI), new(*gateway.Client)),
	wire.Bind(new(gateway.UserAPI), new(*gateway.Client)),
	wire.Bind(new(gateway.RoomAPI), new(*gateway.Client)),
	wire.Bind(new(gateway.BookingAPI), new(*gateway.Client)),
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAccessMiddleware,
)

var domains = wire.NewSet(
	authService.New,
	roomService.New,
	bookingService.New,
	userService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	userHandler.New,
	dashboardHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		sharedHelpers,
		backend,
		middlewares,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
