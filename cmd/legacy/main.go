package main

import (
	"context"
	"flightbook/config"
	"flightbook/di"
	"flightbook/internal/domains/legacy/model/dto"
	"flightbook/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const (
	argLength    = 2
	revertLength = 3
)

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Command is required: migrate [before], stats or revert <id>")
	}

	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	job := di.InitializeLegacyJob()
	ctx := context.Background()

	switch os.Args[1] {
	case "migrate":
		req := dto.MigrateRequest{}
		if len(os.Args) > argLength {
			req.Before = os.Args[2]
		}

		res, err := job.RunBatch(ctx, req)
		if err != nil {
			log.Fatal().Err(err).Msg("Legacy migration failed")
		}

		log.Info().Int64("migrated", res.Migrated).Msg(res.Message)
	case "stats":
		stats, err := job.BatchStats(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to read booking statistics")
		}

		log.Info().
			Int64("total", stats.Total).
			Int64("legacy", stats.Legacy).
			Int64("nonLegacy", stats.NonLegacy).
			Int64("unflagged", stats.Unflagged).
			Int64("cancelled", stats.Cancelled).
			Int64("activeNonLegacy", stats.ActiveNonLegacy).
			Msg("Booking statistics")
	case "revert":
		if len(os.Args) < revertLength {
			log.Fatal().Msg("Booking id is required: revert <id>")
		}

		booking, err := job.BatchRevert(ctx, os.Args[2])
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to revert legacy status")
		}

		log.Info().Str("booking_id", booking.ID).Msg(dto.MessageReverted)
	default:
		log.Fatal().Msg("Invalid command. Use 'migrate', 'stats' or 'revert'")
	}
}
