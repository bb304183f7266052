package errors

import "fmt"

// HTTPError is an error carrying an HTTP status code and a caller-visible
// message. Delivery layers map domain sentinels to HTTPErrors; anything else
// becomes a 500.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError creates a new HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
