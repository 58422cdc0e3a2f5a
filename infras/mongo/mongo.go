package mongo

import (
	"context"
	"flightbook/config"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	goMongo "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeoutSeconds = 10

// Collection names shared by the booking, flight and ticket repositories.
const (
	CollectionSimpleBookings = "simplebookings"
	CollectionFlights        = "flights"
	CollectionSeatBookings   = "bookings"
	CollectionTickets        = "tickets"
)

type Connection struct {
	Client *goMongo.Client
	DB     *goMongo.Database
}

func New(cfg *config.Config) *Connection {
	conn, err := Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	return conn
}

// Connect dials the cluster and pings it within the configured timeout.
func Connect(ctx context.Context, cfg *config.Config) (*Connection, error) {
	mongoCfg := cfg.DB.Mongo

	timeout := time.Duration(mongoCfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeoutSeconds * time.Second
	}

	clientOptions := options.Client().ApplyURI(mongoCfg.URI).SetAppName(cfg.App.Name)
	if mongoCfg.Username != "" && mongoCfg.Password != "" {
		clientOptions.SetAuth(options.Credential{
			Username: mongoCfg.Username,
			Password: mongoCfg.Password,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := goMongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.Info().Str("database", mongoCfg.Database).Msg("Connected to MongoDB")

	return &Connection{
		Client: client,
		DB:     client.Database(mongoCfg.Database),
	}, nil
}

func (c *Connection) Close(ctx context.Context) error {
	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongo: %w", err)
	}

	return nil
}

// EnsureIndexes creates the given indexes on a collection. Failures are logged, the service keeps running.
func EnsureIndexes(ctx context.Context, collection *goMongo.Collection, models ...goMongo.IndexModel) {
	if collection == nil || len(models) == 0 {
		return
	}

	if _, err := collection.Indexes().CreateMany(ctx, models); err != nil {
		log.Warn().Err(err).Str("collection", collection.Name()).Msg("Failed to create indexes")
	}
}

// Index is shorthand for a single or compound index in key order.
func Index(keys bson.D, unique bool) goMongo.IndexModel {
	model := goMongo.IndexModel{Keys: keys}
	if unique {
		model.Options = options.Index().SetUnique(true)
	}

	return model
}
