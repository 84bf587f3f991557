package api

import (
	"errors"
	"fmt"
)

// ErrSessionExpired is returned when a request came back unauthorized and the
// stored refresh token could not produce a new access token. The session has
// already been cleared by the time a caller sees this error.
var ErrSessionExpired = errors.New("session expired")

// APIError is a non-2xx response from the backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
}

// StatusOf extracts the HTTP status from an error chain, or 0 if the error
// did not originate from an API response.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}
