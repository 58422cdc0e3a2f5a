package admin

import (
	"bufio"
	"flightbook/infras/otel"
	bookingDto "flightbook/internal/domains/booking/model/dto"
	"flightbook/internal/domains/legacy/model/dto"
	"flightbook/internal/domains/legacy/service"
	"flightbook/shared/constant"
	"flightbook/shared/validator"
	"flightbook/transport/http/middleware"
	"flightbook/transport/http/response"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Legacy
	otel    otel.Otel
}

func New(service service.Legacy, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

type MigrateEnvelope struct {
	Success bool `json:"success"`
	dto.MigrateResponse
}

type StatsEnvelope struct {
	Success bool              `json:"success"`
	Stats   dto.StatsResponse `json:"stats"`
}

type RevertEnvelope struct {
	Success bool                       `json:"success"`
	Message string                     `json:"message"`
	Booking bookingDto.BookingResponse `json:"booking"`
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/migrate-legacy", handler.MigrateLegacy)
		routerGroup.Get("/booking-stats", handler.BookingStats)
		routerGroup.Post("/revert-legacy/{id}", handler.RevertLegacy)
	})
}

// MigrateLegacy flags every booking without a legacy flag as legacy.
// @Summary Migrate legacy bookings
// @Description Idempotent. An optional cutoff limits the batch to bookings created before it.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.MigrateRequest false "Optional cutoff"
// @Success 200 {object} MigrateEnvelope
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/migrate-legacy [post]
// @Security BearerAuth
func (handler *Handler) MigrateLegacy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MigrateLegacy")
	defer scope.End()

	req := dto.MigrateRequest{}

	if body, ok := optionalBody(r); ok {
		if err := validator.Validate(body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	res, err := handler.service.Migrate(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to migrate legacy bookings")

		response.WithErrorFallback(w, err, "Failed to migrate legacy bookings")

		return
	}

	scope.AddEvent(res.Message)

	response.WithBody(w, http.StatusOK, MigrateEnvelope{Success: true, MigrateResponse: res})
}

// BookingStats reports how bookings split between legacy and non-legacy.
// @Summary Booking statistics
// @Tags Admin
// @Produce json
// @Success 200 {object} StatsEnvelope
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/booking-stats [get]
// @Security BearerAuth
func (handler *Handler) BookingStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookingStats")
	defer scope.End()

	stats, err := handler.service.Stats(ctx, middleware.UserID(ctx))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fetch booking statistics")

		response.WithErrorFallback(w, err, "Failed to fetch booking statistics")

		return
	}

	response.WithBody(w, http.StatusOK, StatsEnvelope{Success: true, Stats: stats})
}

// RevertLegacy clears the legacy flag of one booking.
// @Summary Revert a legacy booking
// @Tags Admin
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} RevertEnvelope
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/admin/revert-legacy/{id} [post]
// @Security BearerAuth
func (handler *Handler) RevertLegacy(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RevertLegacy")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	booking, err := handler.service.Revert(ctx, middleware.UserID(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to revert legacy status")

		response.WithErrorFallback(w, err, "Failed to revert legacy status")

		return
	}

	response.WithBody(w, http.StatusOK, RevertEnvelope{Success: true, Message: dto.MessageReverted, Booking: booking})
}

// optionalBody returns the request body when it holds at least one byte.
func optionalBody(r *http.Request) (io.Reader, bool) {
	if r.Body == nil || r.ContentLength == 0 {
		return nil, false
	}

	body := bufio.NewReader(r.Body)
	if _, err := body.Peek(1); err != nil {
		return nil, false
	}

	return body, true
}
