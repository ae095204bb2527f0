package api

import (
	"errors"
)

// GenericRecommendFailure is reported when a failed response carries no message.
const GenericRecommendFailure = "Could not fetch recommendations."

var (
	// ErrUnexpectedPayload is returned when a 2xx response does not have the expected shape.
	ErrUnexpectedPayload = errors.New("unexpected response payload")

	// ErrServiceUnavailable is returned while the circuit breaker refuses calls.
	ErrServiceUnavailable = errors.New("recommendation service unavailable")
)

// StatusError is a non-2xx response from the service.
type StatusError struct {
	StatusCode int
	// Message is the body's "message" field, empty when absent.
	Message string
}

// Error returns the service-provided message so it can be shown to the user as is.
func (e *StatusError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return GenericRecommendFailure
}

// IsClientError reports whether the status is in the 4xx range.
func (e *StatusError) IsClientError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}
