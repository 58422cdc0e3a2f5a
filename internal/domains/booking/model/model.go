package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	EntityName = "booking"

	FieldID              = "_id"
	FieldUserID          = "userId"
	FieldStatus          = "status"
	FieldLegacy          = "legacy"
	FieldUserSnapshot    = "userSnapshot"
	FieldCreatedAt       = "createdAt"
	FieldUpdatedAt       = "updatedAt"
	FieldPassengersCount = "passengersCount"
)

const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
)

const (
	ClassEconomy  = "Economy"
	ClassBusiness = "Business"
	ClassFirst    = "First Class"
)

// UserSnapshot is the owner's profile as it was when the booking was made. It is never rewritten.
type UserSnapshot struct {
	Name       string  `bson:"name"                 json:"name"`
	Email      string  `bson:"email"                json:"email"`
	Phone      string  `bson:"phone,omitempty"      json:"phone,omitempty"`
	Age        *int    `bson:"age,omitempty"        json:"age,omitempty"`
	ProfilePic *string `bson:"profilePic,omitempty" json:"profilePic,omitempty"`
}

type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"userId"`
	PassengerName   string             `bson:"passengerName"`
	Email           string             `bson:"email"`
	Phone           string             `bson:"phone"`
	DepartureCity   string             `bson:"departureCity"`
	DestinationCity string             `bson:"destinationCity"`
	TravelDate      time.Time          `bson:"travelDate"`
	PassengersCount int                `bson:"passengersCount"`
	ClassType       string             `bson:"classType"`
	Status          string             `bson:"status"`
	Legacy          *bool              `bson:"legacy,omitempty"`
	UserSnapshot    UserSnapshot       `bson:"userSnapshot"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (b Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsLegacy reports an explicit legacy=true. Unflagged records are not legacy.
func (b Booking) IsLegacy() bool {
	return b.Legacy != nil && *b.Legacy
}
