package common

import (
	"net/http"
)

// ErrorResponse is the API error payload.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"` // only populated in debug mode
}

// CustomError carries an error code and HTTP status alongside the message.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError creates a new custom error.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// ValidationError marks a caller contract violation: malformed request shape,
// a recipe without a name, a missing ingredients field. Handlers translate it
// to HTTP 400.
type ValidationError struct {
	message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError creates a new validation error.
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	_, ok := err.(*ValidationError)
	return ok
}

// Predefined error codes.
const (
	// client errors (4xx)
	ErrCodeInvalidRequest   = "INVALID_REQUEST"    // 400
	ErrCodeNotFound         = "NOT_FOUND"          // 404
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED" // 405
	ErrCodeRequestTimeout   = "REQUEST_TIMEOUT"    // 408
	ErrCodeTooManyRequests  = "TOO_MANY_REQUESTS"  // 429

	// server errors (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
)

// Predefined errors.
var (
	ErrInvalidRequest   = NewError(ErrCodeInvalidRequest, "invalid request", http.StatusBadRequest, nil)
	ErrNotFound         = NewError(ErrCodeNotFound, "resource not found", http.StatusNotFound, nil)
	ErrMethodNotAllowed = NewError(ErrCodeMethodNotAllowed, "method not allowed", http.StatusMethodNotAllowed, nil)
	ErrRequestTimeout   = NewError(ErrCodeRequestTimeout, "request timeout", http.StatusRequestTimeout, nil)
	ErrTooManyRequests  = NewError(ErrCodeTooManyRequests, "too many requests", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "internal server error", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "service temporarily unavailable", http.StatusServiceUnavailable, nil)

	// domain errors
	ErrInvalidRecipePayload = NewError("INVALID_RECIPE_PAYLOAD", "invalid recipe payload", http.StatusBadRequest, nil)
	ErrCacheFull            = NewError("CACHE_FULL", "cache is full", http.StatusServiceUnavailable, nil)
	ErrCacheDisabled        = NewError("CACHE_DISABLED", "cache is disabled", http.StatusServiceUnavailable, nil)
	ErrExportFailed         = NewError("EXPORT_FAILED", "failed to export shopping list", http.StatusBadGateway, nil)
)
