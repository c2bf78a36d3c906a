//go:build wireinject
// +build wireinject

package di

import (
	"inn/config"
	"inn/infras/jwt"
	"inn/infras/kafka"
	"inn/infras/mail"
	"inn/infras/otel"
	"inn/infras/postgres"
	"inn/infras/redis"
	"inn/infras/s3"
	"inn/permissions"
	"inn/shared/cache"
	"inn/transport/http"
	"inn/transport/http/middleware"
	"inn/transport/http/router"
	"inn/transport/worker"

	"github.com/google/wire"

	authService "inn/internal/domains/auth/service"
	bookingRepository "inn/internal/domains/booking/repository"
	bookingService "inn/internal/domains/booking/service"
	hotelRepository "inn/internal/domains/hotel/repository"
	hotelService "inn/internal/domains/hotel/service"
	notificationRepository "inn/internal/domains/notification/repository"
	notificationService "inn/internal/domains/notification/service"
	planRepository "inn/internal/domains/plan/repository"
	planService "inn/internal/domains/plan/service"
	propertyRepository "inn/internal/domains/property/repository"
	propertyService "inn/internal/domains/property/service"
	roomRepository "inn/internal/domains/room/repository"
	roomService "inn/internal/domains/room/service"
	userRepository "inn/internal/domains/user/repository"
	userService "inn/internal/domains/user/service"

	authHandler "inn/internal/handlers/auth"
	bookingHandler "inn/internal/handlers/booking"
	healthHandler "inn/internal/handlers/health"
	hotelHandler "inn/internal/handlers/hotel"
	notificationHandler "inn/internal/handlers/notification"
	planHandler "inn/internal/handlers/plan"
	propertyHandler "inn/internal/handlers/property"
	roomHandler "inn/internal/handlers/room"
	userHandler "inn/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	mail.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	permissions.Get,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var propertyDomain = wire.NewSet(
	propertyRepository.New,
	propertyService.New,
)

var planDomain = wire.NewSet(
	planRepository.New,
	planService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	userDomain,
	authDomain,
	hotelDomain,
	roomDomain,
	bookingDomain,
	propertyDomain,
	planDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	authHandler.New,
	userHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	propertyHandler.New,
	planHandler.New,
	notificationHandler.New,
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

func InitializeWorker() *worker.Worker {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		kafka.New,
		mail.New,
		notificationDomain,
		worker.New,
	)

	return &worker.Worker{}
}
