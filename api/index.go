package handler

import (
	"flightbook/config"
	"flightbook/di"
	"flightbook/shared/logger"
	"net/http"
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	cfg := config.Get()

	logger.InitLogger()

	logger.Configure(cfg)

	handler := di.InitializeService()
	handler.ServeHTTP(w, r)
}
