package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TicketEntityName      = "ticket"
	SeatBookingEntityName = "seat_booking"

	FieldID   = "_id"
	FieldUID  = "uid"
	FieldUser = "user"
)

// SeatBooking is one reserved seat on a flight, grouped under a Ticket.
type SeatBooking struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Flight    primitive.ObjectID `bson:"flight"`
	User      string             `bson:"user"`
	Seat      string             `bson:"seat"`
	Ticket    string             `bson:"ticket,omitempty"`
	Price     float64            `bson:"price"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// Ticket groups the seat bookings bought together. UID is the identifier shown to the user.
type Ticket struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty"`
	UID       string               `bson:"uid"`
	User      string               `bson:"user"`
	Flight    primitive.ObjectID   `bson:"flight,omitempty"`
	Tickets   []primitive.ObjectID `bson:"tickets"`
	CreatedAt time.Time            `bson:"createdAt"`
}
