package dto

import (
	"flightbook/internal/domains/booking/model"
	userModel "flightbook/internal/domains/user/model"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"flightbook/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	PassengerName   string `json:"passengerName"       validate:"required,max=100"`
	Email           string `json:"email"               validate:"required,email"`
	Phone           string `json:"phone"               validate:"required,max=20"`
	DepartureCity   string `json:"departureCity"       validate:"required,max=100"`
	DestinationCity string `json:"destinationCity"     validate:"required,max=100"`
	TravelDate      string `json:"travelDate"          validate:"required"`
	PassengersCount int    `json:"passengersCount"     validate:"required,gte=1"`
	ClassType       string `json:"classType,omitempty" validate:"omitempty,oneof=Economy Business 'First Class'"`
}

// ToModel builds a new active, non-legacy booking carrying a snapshot of the owner's profile.
func (r *CreateBookingRequest) ToModel(user userModel.User, now time.Time) (model.Booking, error) {
	travelDate, err := timezone.ParseDate(constant.DateFormatTravel, r.TravelDate)
	if err != nil {
		return model.Booking{}, failure.BadRequestFromString("travelDate must be YYYY-MM-DD or RFC3339")
	}

	classType := r.ClassType
	if classType == constant.Empty {
		classType = model.ClassEconomy
	}

	legacy := false

	return model.Booking{
		UserID:          user.ID,
		PassengerName:   r.PassengerName,
		Email:           r.Email,
		Phone:           r.Phone,
		DepartureCity:   r.DepartureCity,
		DestinationCity: r.DestinationCity,
		TravelDate:      travelDate,
		PassengersCount: r.PassengersCount,
		ClassType:       classType,
		Status:          model.StatusActive,
		Legacy:          &legacy,
		UserSnapshot:    Snapshot(user, r.Phone),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// Snapshot copies the profile fields kept on a booking. The form phone fills in when the profile has none.
func Snapshot(user userModel.User, fallbackPhone string) model.UserSnapshot {
	phone := fallbackPhone
	if user.Phone != nil && *user.Phone != constant.Empty {
		phone = *user.Phone
	}

	return model.UserSnapshot{
		Name:       user.Name,
		Email:      user.Email,
		Phone:      phone,
		Age:        user.Age,
		ProfilePic: user.ProfilePic,
	}
}

type BookingResponse struct {
	ID              string             `json:"_id"`
	UserID          string             `json:"userId"`
	PassengerName   string             `json:"passengerName"`
	Email           string             `json:"email"`
	Phone           string             `json:"phone"`
	DepartureCity   string             `json:"departureCity"`
	DestinationCity string             `json:"destinationCity"`
	TravelDate      string             `json:"travelDate"`
	PassengersCount int                `json:"passengersCount"`
	ClassType       string             `json:"classType"`
	Status          string             `json:"status"`
	Legacy          *bool              `json:"legacy,omitempty"`
	UserSnapshot    model.UserSnapshot `json:"userSnapshot"`
	CreatedAt       string             `json:"createdAt"`
	UpdatedAt       string             `json:"updatedAt"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID.Hex()
	r.UserID = booking.UserID
	r.PassengerName = booking.PassengerName
	r.Email = booking.Email
	r.Phone = booking.Phone
	r.DepartureCity = booking.DepartureCity
	r.DestinationCity = booking.DestinationCity
	r.TravelDate = timezone.Format(booking.TravelDate, constant.DateFormat)
	r.PassengersCount = booking.PassengersCount
	r.ClassType = booking.ClassType
	r.Status = booking.Status
	r.Legacy = booking.Legacy
	r.UserSnapshot = booking.UserSnapshot
	r.CreatedAt = timezone.Format(booking.CreatedAt, constant.DateFormat)
	r.UpdatedAt = timezone.Format(booking.UpdatedAt, constant.DateFormat)
}

func FromModels(bookings []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		res[i].FromModel(booking)
	}

	return res
}

type ListRequest struct {
	ShowAll       bool
	IncludeLegacy bool
}

type ListResponse struct {
	Count    int               `json:"count"`
	Bookings []BookingResponse `json:"bookings"`
}
