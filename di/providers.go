package di

import (
	"context"
	"flightbook/config"
	"flightbook/infras/kafka"
	"flightbook/infras/metrics"
	"flightbook/infras/mongo"
	"flightbook/infras/otel"
	"flightbook/infras/postgres"
	bookingRepository "flightbook/internal/domains/booking/repository"
	flightRepository "flightbook/internal/domains/flight/repository"
	legacyRepository "flightbook/internal/domains/legacy/repository"
	legacyService "flightbook/internal/domains/legacy/service"
	ticketRepository "flightbook/internal/domains/ticket/repository"
	"flightbook/internal/handlers/health"
	"flightbook/shared/cache"

	goRedis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// mongoConnection connects and makes sure the collections carry their indexes.
func mongoConnection(cfg *config.Config) *mongo.Connection {
	conn := mongo.New(cfg)
	ctx := context.Background()

	mongo.EnsureIndexes(ctx, conn.DB.Collection(mongo.CollectionSimpleBookings), bookingRepository.Indexes()...)
	mongo.EnsureIndexes(ctx, conn.DB.Collection(mongo.CollectionFlights), flightRepository.Indexes()...)
	mongo.EnsureIndexes(ctx, conn.DB.Collection(mongo.CollectionTickets), ticketRepository.Indexes()...)

	return conn
}

func healthChecks(conn *mongo.Connection, redis *goRedis.Client, db *postgres.Connection) map[string]health.Check {
	return map[string]health.Check{
		"mongo": func(ctx context.Context) error {
			return conn.Client.Ping(ctx, readpref.Primary())
		},
		"redis": func(ctx context.Context) error {
			return redis.Ping(ctx).Err()
		},
		"postgres": func(ctx context.Context) error {
			return db.Write.PingContext(ctx)
		},
	}
}

// legacyJob builds the legacy service without a user repository; the batch job has no caller to authorize.
func legacyJob(repo legacyRepository.Legacy, publisher kafka.Publisher, metrics *metrics.Metrics,
	cfg *config.Config, cache cache.RedisCache, otel otel.Otel,
) legacyService.Legacy {
	return legacyService.New(repo, nil, publisher, metrics, cfg, cache, otel)
}
