package helper

//nolint:revive
import (
	"errors"
	"flightbook/config"
	"fmt"
	"net"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

// Action is a migration command accepted by cmd/migrate.
type Action string

const (
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionStepUp  Action = "step-up"
	ActionDrop    Action = "drop"
	ActionVersion Action = "version"
)

// SchemaTables are the legacy ticket tables owned by the postgres migrations, in creation order.
var SchemaTables = []string{"users", "user_tickets"}

var errUnknownAction = errors.New("invalid action, use up, down, step-up, drop or version")

// ParseAction maps a command line argument to an Action.
func ParseAction(arg string) (Action, error) {
	switch action := Action(strings.ToLower(strings.TrimSpace(arg))); action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop, ActionVersion:
		return action, nil
	default:
		return "", fmt.Errorf("%w: %q", errUnknownAction, arg)
	}
}

func databaseName(cfg *config.Config) string {
	return cfg.DB.Postgres.Prefix + cfg.DB.Postgres.Write.Name
}

// ConnectionString builds the migrate DSN for the write node, recording applied versions in MigrationTable.
func ConnectionString(cfg *config.Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		cfg.DB.Postgres.Write.Username,
		cfg.DB.Postgres.Write.Password,
		net.JoinHostPort(cfg.DB.Postgres.Write.Host, cfg.DB.Postgres.Write.Port),
		databaseName(cfg),
		cfg.DB.Postgres.Write.SSLMode,
		cfg.DB.Postgres.MigrationTable,
	)
}

// Runner applies action to the legacy ticket schema and logs the resulting version.
func Runner(cfg *config.Config, action Action) error {
	mig, err := migrate.New(migrationSource, ConnectionString(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	case ActionVersion:
	default:
		return fmt.Errorf("%w: %q", errUnknownAction, action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().
		Str("action", string(action)).
		Str("database", databaseName(cfg)).
		Strs("tables", SchemaTables).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("legacy ticket schema migration done")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
