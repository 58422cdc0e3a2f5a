package health

import (
	"context"
	"flightbook/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const checkTimeout = 2 * time.Second

// Check reports whether one dependency is reachable.
type Check func(ctx context.Context) error

type Handler struct {
	checks map[string]Check
}

func New(checks map[string]Check) Handler {
	return Handler{checks: checks}
}

func (h *Handler) Router(r chi.Router) {
	r.Get("/health", h.Health)
}

// Health pings every dependency.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), checkTimeout)
	defer cancel()

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")

			response.WithUnhealthy(w)

			return
		}
	}

	response.WithHealthy(w)
}
