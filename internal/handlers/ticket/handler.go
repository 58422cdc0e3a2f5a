package ticket

import (
	"flightbook/infras/otel"
	"flightbook/internal/domains/ticket/model/dto"
	"flightbook/internal/domains/ticket/service"
	"flightbook/shared/constant"
	"flightbook/transport/http/middleware"
	"flightbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const messageCancelled = "Booking cancelled Successfully"

type Handler struct {
	service service.Ticket
	otel    otel.Otel
}

func New(service service.Ticket, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// CancelEnvelope is the body of a successful ticket cancellation.
type CancelEnvelope struct {
	Success bool                     `json:"success"`
	Message string                   `json:"message"`
	Ticket  dto.CancelTicketResponse `json:"ticket"`
}

func (handler *Handler) Router(router chi.Router) {
	router.Delete("/cancel/{ticketId}", handler.CancelTicket)
}

// CancelTicket cancels a legacy ticket and frees its seats.
// @Summary Cancel a legacy ticket
// @Description Releases the seats, deletes the seat bookings and the ticket, and unlinks it from the caller.
// @Tags Ticket
// @Produce json
// @Param ticketId path string true "Ticket UID"
// @Success 200 {object} CancelEnvelope
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /api/cancel/{ticketId} [delete]
// @Security BearerAuth
func (handler *Handler) CancelTicket(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelTicket")
	defer scope.End()

	ticketID := chi.URLParam(r, constant.RequestParamTicketID)

	res, err := handler.service.Cancel(ctx, middleware.UserID(ctx), ticketID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("ticket_uid", ticketID).Msg("failed to cancel ticket")

		response.WithErrorFallback(w, err, "Failed to cancel booking")

		return
	}

	scope.AddEvent("Ticket cancelled")

	response.WithBody(w, http.StatusOK, CancelEnvelope{Success: true, Message: messageCancelled, Ticket: res})
}
