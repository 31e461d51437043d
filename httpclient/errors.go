package httpclient

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates invalid client configuration.
var ErrInvalidConfig = errors.New("invalid http client configuration")

// RequestError represents a failed API request after any retries have been
// exhausted. Body holds a truncated copy of the server response, if one was
// received.
type RequestError struct {
	Endpoint   string
	StatusCode int
	Body       string
	Err        error
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request to %s failed: status %d: %s", e.Endpoint, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
}

// Unwrap returns the underlying transport error, if any.
func (e *RequestError) Unwrap() error {
	return e.Err
}

// IsNotFound checks if the error indicates a not found response.
func (e *RequestError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure.
func (e *RequestError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}
