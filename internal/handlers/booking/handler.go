package booking

import (
	"flightbook/infras/otel"
	"flightbook/internal/domains/booking/model/dto"
	"flightbook/internal/domains/booking/service"
	"flightbook/shared"
	"flightbook/shared/constant"
	"flightbook/shared/validator"
	"flightbook/transport/http/middleware"
	"flightbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	messageBooked    = "Flight booked successfully!"
	messageCancelled = "Booking cancelled successfully"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// BookingEnvelope is the body of the create and cancel endpoints.
type BookingEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Booking dto.BookingResponse `json:"booking"`
}

// ListEnvelope is the body of the listing endpoint.
type ListEnvelope struct {
	Success bool `json:"success"`
	dto.ListResponse
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/book-flight", handler.CreateBooking)
	router.Get("/my-flights", handler.GetMyFlights)
	router.Delete("/cancel-flight/{id}", handler.CancelFlight)
}

// CreateBooking handles the creation of a new booking.
// @Summary Book a flight
// @Description Create an active booking with a snapshot of the caller's profile.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} BookingEnvelope
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/book-flight [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	userID := middleware.UserID(ctx)

	booking, err := handler.service.Create(ctx, userID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithErrorFallback(writer, err, "Failed to book flight")

		return
	}

	scope.AddEvent("Booking created successfully by user " + userID)

	response.WithBody(writer, http.StatusCreated, BookingEnvelope{Success: true, Message: messageBooked, Booking: booking})
}

// GetMyFlights lists the caller's bookings, newest first.
// @Summary Get my bookings
// @Description Active bookings by default. showAll adds cancelled ones; includeLegacy (admins only) adds legacy records.
// @Tags Booking
// @Produce json
// @Param showAll query boolean false "Include cancelled bookings"
// @Param includeLegacy query boolean false "Include legacy bookings (admin only)"
// @Success 200 {object} ListEnvelope
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/my-flights [get]
// @Security BearerAuth
func (handler *Handler) GetMyFlights(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyFlights")
	defer scope.End()

	query := request.URL.Query()
	req := dto.ListRequest{
		ShowAll:       shared.BoolFromString(query.Get(constant.RequestParamShowAll), false),
		IncludeLegacy: shared.BoolFromString(query.Get(constant.RequestParamIncludeLegacy), false),
	}

	res, err := handler.service.ListMine(ctx, middleware.UserID(ctx), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithErrorFallback(writer, err, "Failed to fetch bookings")

		return
	}

	response.WithBody(writer, http.StatusOK, ListEnvelope{Success: true, ListResponse: res})
}

// CancelFlight cancels one of the caller's active bookings.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} BookingEnvelope
// @Failure 400 {object} response.Error "Booking already cancelled"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cancel-flight/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelFlight(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelFlight")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	booking, err := handler.service.Cancel(ctx, middleware.UserID(ctx), id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		response.WithErrorFallback(writer, err, "Failed to cancel booking")

		return
	}

	scope.AddEvent("Booking cancelled")

	response.WithBody(writer, http.StatusOK, BookingEnvelope{Success: true, Message: messageCancelled, Booking: booking})
}
