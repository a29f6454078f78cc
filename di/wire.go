//go:build wireinject
// +build wireinject

package di

import (
	"tripdesk/config"
	"tripdesk/infras/jwt"
	"tripdesk/infras/kafka"
	"tripdesk/infras/otel"
	"tripdesk/infras/postgres"
	"tripdesk/infras/redis"
	"tripdesk/infras/s3"
	"tripdesk/permissions"
	"tripdesk/shared/cache"
	"tripdesk/transport/http"
	"tripdesk/transport/http/middleware"
	"tripdesk/transport/http/router"

	"github.com/google/wire"

	authService "tripdesk/internal/domains/auth/service"
	carRepository "tripdesk/internal/domains/car/repository"
	carService "tripdesk/internal/domains/car/service"
	flightRepository "tripdesk/internal/domains/flight/repository"
	flightService "tripdesk/internal/domains/flight/service"
	hotelRepository "tripdesk/internal/domains/hotel/repository"
	hotelService "tripdesk/internal/domains/hotel/service"
	roomRepository "tripdesk/internal/domains/room/repository"
	roomService "tripdesk/internal/domains/room/service"
	tourRepository "tripdesk/internal/domains/tour/repository"
	tourService "tripdesk/internal/domains/tour/service"
	userRepository "tripdesk/internal/domains/user/repository"
	userService "tripdesk/internal/domains/user/service"

	authHandler "tripdesk/internal/handlers/auth"
	carHandler "tripdesk/internal/handlers/car"
	flightHandler "tripdesk/internal/handlers/flight"
	hotelHandler "tripdesk/internal/handlers/hotel"
	roomHandler "tripdesk/internal/handlers/room"
	tourHandler "tripdesk/internal/handlers/tour"
	userHandler "tripdesk/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var tourDomain = wire.NewSet(
	tourRepository.New,
	tourService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var carDomain = wire.NewSet(
	carRepository.New,
	carService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	flightDomain,
	tourDomain,
	hotelDomain,
	roomDomain,
	carDomain,
	userDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	flightHandler.New,
	tourHandler.New,
	hotelHandler.New,
	roomHandler.New,
	carHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
