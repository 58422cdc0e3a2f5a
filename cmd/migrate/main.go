package main

import (
	"flightbook/config"
	"flightbook/helper"
	"flightbook/shared/logger"
	"os"

	"github.com/rs/zerolog/log"
)

const argLength = 2

func main() {
	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration action is required: up, down, step-up, drop or version")
	}

	cfg := config.Get()

	logger.InitLogger()
	logger.Configure(cfg)

	action, err := helper.ParseAction(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid migration action")
	}

	if err := helper.Runner(cfg, action); err != nil {
		log.Fatal().Err(err).Str("action", string(action)).Msg("Migration failed")
	}
}
