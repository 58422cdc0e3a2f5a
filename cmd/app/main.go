package main

import (
	_ "flightbook/docs"

	"flightbook/config"
	"flightbook/di"
	"flightbook/helper"
	"flightbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Flightbook API
// @version 1.0
// @description Flight booking backend with legacy ticket support.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate legacy ticket schema")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
