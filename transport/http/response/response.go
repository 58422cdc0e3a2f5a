package response

import (
	"encoding/json"
	"flightbook/shared/constant"
	"flightbook/shared/failure"
	"flightbook/shared/logger"
	"net/http"
)

// Data wraps a payload under "data" for endpoints without a bespoke envelope.
type Data[T any] struct {
	Success bool `json:"success"`
	Data    *T   `json:"data,omitempty"`
}

// Error is the body of every failed request. Error carries the underlying cause
// only for unclassified (storage) failures.
type Error struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Error   *string `json:"error,omitempty"`
}

type Message struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Success: code < http.StatusBadRequest, Message: message})
}

// WithJSON sends a response containing a JSON object under "data"
func WithJSON(writer http.ResponseWriter, code int, jsonPayload interface{}) {
	response(writer, code, Data[any]{Success: true, Data: &jsonPayload})
}

// WithBody sends payload as is. Handlers use it for envelopes such as {success,count,bookings}.
func WithBody(writer http.ResponseWriter, code int, payload interface{}) {
	response(writer, code, payload)
}

// WithError sends a failure response, falling back to a generic message for unclassified errors.
func WithError(writer http.ResponseWriter, err error) {
	WithErrorFallback(writer, err, constant.ResponseErrorInternal)
}

// WithErrorFallback uses the Failure message when err carries one. Anything else is a 500 with
// fallback as the message and the error text as detail.
func WithErrorFallback(writer http.ResponseWriter, err error, fallback string) {
	if failure.IsFailure(err) {
		response(writer, failure.GetCode(err), Error{Message: err.Error()})

		return
	}

	detail := err.Error()

	response(writer, http.StatusInternalServerError, Error{Message: fallback, Error: &detail})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

// WithHealthy sends a default response for a passing health check
func WithHealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusOK, constant.ResponseHealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
