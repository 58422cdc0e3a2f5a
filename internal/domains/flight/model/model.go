package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EntityName = "flight"

	FieldID          = "_id"
	FieldAirline     = "airline"
	FieldFrom        = "from"
	FieldTo          = "to"
	FieldDeparture   = "departure"
	FieldPrice       = "price"
	FieldBookedSeats = "bookedSeats"
)

type Flight struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Airline     string             `bson:"airline"`
	From        string             `bson:"from"`
	To          string             `bson:"to"`
	Departure   time.Time          `bson:"departure"`
	Price       float64            `bson:"price"`
	TotalSeats  int                `bson:"totalSeats"`
	BookedSeats []string           `bson:"bookedSeats"`
}

func (f Flight) AvailableSeats() int {
	return max(f.TotalSeats-len(f.BookedSeats), 0)
}
