package dto

import (
	"flightbook/internal/domains/ticket/model"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CancelTicketResponse struct {
	TicketID      string   `json:"ticketId"`
	ReleasedSeats []string `json:"releasedSeats"`
}

// Seats lists the seat ids held by the given bookings, in order.
func Seats(bookings []model.SeatBooking) []string {
	seats := make([]string, 0, len(bookings))
	for _, booking := range bookings {
		seats = append(seats, booking.Seat)
	}

	return seats
}

// IDs lists the ids of the given bookings.
func IDs(bookings []model.SeatBooking) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, 0, len(bookings))
	for _, booking := range bookings {
		ids = append(ids, booking.ID)
	}

	return ids
}
