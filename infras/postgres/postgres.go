package postgres

//nolint:revive
import (
	"flightbook/config"
	"fmt"
	"net"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

// Connection splits reads and writes across two pools, which may point to the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	name, username, password, host, port, dbName, sslMode string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := endpoint{"write", pg.Write.Username, pg.Write.Password, pg.Write.Host, pg.Write.Port, dbName(cfg, pg.Write.Name), pg.Write.SSLMode}
	read := endpoint{"read", pg.Read.Username, pg.Read.Password, pg.Read.Host, pg.Read.Port, dbName(cfg, pg.Read.Name), pg.Read.SSLMode}

	return &Connection{
		Read:  mustConnect(read, pg.MaxRetry, pg.RetryWaitTime),
		Write: mustConnect(write, pg.MaxRetry, pg.RetryWaitTime),
	}
}

func (c *Connection) Close() error {
	if err := c.Read.Close(); err != nil {
		return fmt.Errorf("failed to close read pool: %w", err)
	}

	if err := c.Write.Close(); err != nil {
		return fmt.Errorf("failed to close write pool: %w", err)
	}

	return nil
}

func dbName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

// DSN builds the lib/pq connection URL.
func DSN(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s", username, password, net.JoinHostPort(host, port), dbName, sslMode)
}

func mustConnect(ep endpoint, maxRetry, waitTime int) *sqlx.DB {
	descriptor := DSN(ep.username, ep.password, ep.host, ep.port, ep.dbName, ep.sslMode)
	logger := log.With().Str("name", ep.name).Str("host", ep.host).Str("port", ep.port).Str("dbName", ep.dbName).Logger()

	for retry := range max(maxRetry, 1) {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", retry+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	logger.Fatal().Msg("Giving up connecting to database")

	return nil
}
