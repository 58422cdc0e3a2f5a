package flight

import (
	"flightbook/infras/otel"
	"flightbook/internal/domains/flight/model/dto"
	"flightbook/internal/domains/flight/service"
	"flightbook/shared/constant"
	gDto "flightbook/shared/dto"
	"flightbook/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	queryFrom = "from"
	queryTo   = "to"
)

type Handler struct {
	service service.Flight
	otel    otel.Otel
}

func New(service service.Flight, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/flights", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetFlights)
		routerGroup.Get("/{id}", handler.GetFlightByID)
	})
}

// GetFlights lists flights, optionally narrowed to one route.
// @Summary Browse flights
// @Description List flights by departure, or by price with sort_by=price.
// @Tags Flight
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param from query string false "Departure city (case-insensitive)"
// @Param to query string false "Destination city (case-insensitive)"
// @Success 200 {object} response.Data[dto.GetFlightsResponse]
// @Failure 500 {object} response.Error
// @Router /api/flights [get]
func (handler *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlights")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req := dto.ListFlightsRequest{
		From: r.URL.Query().Get(queryFrom),
		To:   r.URL.Query().Get(queryTo),
	}

	flights, err := handler.service.GetAll(ctx, queryParams, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get flights")

		response.WithErrorFallback(w, err, "Failed to fetch flights")

		return
	}

	response.WithJSON(w, http.StatusOK, flights)
}

// GetFlightByID returns one flight with its seat availability.
// @Summary Get a flight
// @Tags Flight
// @Produce json
// @Param id path string true "Flight ID"
// @Success 200 {object} response.Data[dto.FlightResponse]
// @Failure 404 {object} response.Error
// @Router /api/flights/{id} [get]
func (handler *Handler) GetFlightByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetFlightByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	flight, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("flight_id", id).Msg("failed to get flight")

		response.WithErrorFallback(w, err, "Failed to fetch flight")

		return
	}

	response.WithJSON(w, http.StatusOK, flight)
}
