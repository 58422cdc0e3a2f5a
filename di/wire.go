//go:build wireinject
// +build wireinject

package di

import (
	"flightbook/config"
	"flightbook/infras/jwt"
	"flightbook/infras/kafka"
	"flightbook/infras/metrics"
	"flightbook/infras/otel"
	"flightbook/infras/postgres"
	"flightbook/infras/redis"
	"flightbook/infras/s3"
	"flightbook/permissions"
	"flightbook/shared/cache"
	"flightbook/transport/http"
	"flightbook/transport/http/middleware"
	"flightbook/transport/http/router"

	"github.com/google/wire"

	authService "flightbook/internal/domains/auth/service"
	bookingRepository "flightbook/internal/domains/booking/repository"
	bookingService "flightbook/internal/domains/booking/service"
	flightRepository "flightbook/internal/domains/flight/repository"
	flightService "flightbook/internal/domains/flight/service"
	legacyRepository "flightbook/internal/domains/legacy/repository"
	legacyService "flightbook/internal/domains/legacy/service"
	ticketRepository "flightbook/internal/domains/ticket/repository"
	ticketService "flightbook/internal/domains/ticket/service"
	userRepository "flightbook/internal/domains/user/repository"
	userService "flightbook/internal/domains/user/service"
	adminHandler "flightbook/internal/handlers/admin"
	authHandler "flightbook/internal/handlers/auth"
	bookingHandler "flightbook/internal/handlers/booking"
	flightHandler "flightbook/internal/handlers/flight"
	healthHandler "flightbook/internal/handlers/health"
	ticketHandler "flightbook/internal/handlers/ticket"
	userHandler "flightbook/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	mongoConnection,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	metrics.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var userDomain = wire.NewSet(
	userRepository.NewUserTicket,
	userService.New,
)

var flightDomain = wire.NewSet(
	flightRepository.New,
	flightService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketRepository.NewSeatBooking,
	ticketService.New,
)

var legacyDomain = wire.NewSet(
	legacyRepository.New,
	legacyService.New,
)

var domains = wire.NewSet(
	authDomain,
	userDomain,
	flightDomain,
	bookingDomain,
	ticketDomain,
	legacyDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	flightHandler.New,
	bookingHandler.New,
	ticketHandler.New,
	adminHandler.New,
	healthChecks,
	healthHandler.New,
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

// InitializeLegacyJob wires the batch legacy migration used by cmd/legacy.
func InitializeLegacyJob() legacyService.Legacy {
	wire.Build(
		config.Get,
		mongoConnection,
		otel.New,
		redis.New,
		kafka.New,
		metrics.New,
		sharedHelpers,
		legacyRepository.New,
		legacyJob,
	)

	return nil
}
