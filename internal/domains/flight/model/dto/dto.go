package dto

import (
	"flightbook/internal/domains/flight/model"
	"flightbook/shared"
	"flightbook/shared/constant"
	"flightbook/shared/timezone"
)

type ListFlightsRequest struct {
	From string
	To   string
}

type FlightResponse struct {
	ID             string   `json:"_id"`
	Airline        string   `json:"airline"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	Departure      string   `json:"departure"`
	Price          float64  `json:"price"`
	TotalSeats     int      `json:"totalSeats"`
	AvailableSeats int      `json:"availableSeats"`
	BookedSeats    []string `json:"bookedSeats"`
}

func (r *FlightResponse) FromModel(flight model.Flight) {
	r.ID = flight.ID.Hex()
	r.Airline = flight.Airline
	r.From = flight.From
	r.To = flight.To
	r.Departure = timezone.Format(flight.Departure, constant.DateFormat)
	r.Price = flight.Price
	r.TotalSeats = flight.TotalSeats
	r.AvailableSeats = flight.AvailableSeats()

	r.BookedSeats = flight.BookedSeats
	if r.BookedSeats == nil {
		r.BookedSeats = []string{}
	}
}

type GetFlightsResponse struct {
	Flights   []FlightResponse `json:"flights"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetFlightsResponse) FromModels(models []model.Flight, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Flights = make([]FlightResponse, len(models))
	for i, mod := range models {
		r.Flights[i].FromModel(mod)
	}
}
