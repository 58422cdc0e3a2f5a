package validator_test

import (
	"flightbook/shared/failure"
	"flightbook/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	PassengerName   string `json:"passengerName"   validate:"required"`
	Email           string `json:"email"           validate:"required,email"`
	PassengersCount int    `json:"passengersCount" validate:"required,gte=1"`
	ClassType       string `json:"classType"       validate:"omitempty,oneof=Economy Business 'First Class'"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name: "valid body",
			body: `{"passengerName":"Asha","email":"asha@example.com","passengersCount":2,"classType":"First Class"}`,
		},
		{
			name:    "missing name reports the json field",
			body:    `{"email":"asha@example.com","passengersCount":2}`,
			message: "passengerName is required",
		},
		{
			name:    "bad email",
			body:    `{"passengerName":"Asha","email":"asha","passengersCount":2}`,
			message: "email must be a valid email address",
		},
		{
			name:    "unknown class",
			body:    `{"passengerName":"Asha","email":"asha@example.com","passengersCount":2,"classType":"Premium"}`,
			message: "classType must be one of Economy Business 'First Class'",
		},
		{
			name:    "malformed json",
			body:    `{"passengerName":`,
			message: "failed to decode request body: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var form bookingForm

			err := validator.Validate(strings.NewReader(tt.body), &form)
			if tt.message == "" {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

type photoUpload struct {
	ContentType string `json:"contentType" validate:"required,oneof=image/png image/jpeg"`
	Size        int64  `json:"size"        validate:"gt=0,lte=1048576"`
}

func TestValidateStruct(t *testing.T) {
	assert.NoError(t, validator.ValidateStruct(&photoUpload{ContentType: "image/png", Size: 512}))

	err := validator.ValidateStruct(&photoUpload{ContentType: "application/pdf", Size: 512})
	require.Error(t, err)
	assert.Equal(t, "contentType must be one of image/png image/jpeg", err.Error())

	err = validator.ValidateStruct(&photoUpload{ContentType: "image/png", Size: 2 << 20})
	require.Error(t, err)
	assert.Equal(t, "size must be less than or equal to 1048576", err.Error())
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("665f1c2ab4d1a2b3c4d5e6f7", "mongodb"))

	err := validator.ValidateVar("not-an-id", "mongodb")
	require.Error(t, err)
	assert.Equal(t, "must be a valid id", strings.TrimSpace(err.Error()))
}
