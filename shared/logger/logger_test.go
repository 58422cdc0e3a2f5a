package logger_test

import (
	"flightbook/config"
	"flightbook/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "configured level", level: "warn", expected: zerolog.WarnLevel},
		{name: "empty falls back to trace", level: "", expected: zerolog.TraceLevel},
		{name: "unknown falls back to trace", level: "loud", expected: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure(t *testing.T) {
	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "flightbook"

	logger.Configure(cfg)

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
