package errors

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

var (
	// ErrInvalidCredentials is returned when no user matches the login email.
	ErrInvalidCredentials = &AuthError{Reason: "invalid credentials", Code: "INVALID_CREDENTIALS"}
	// ErrEmailInUse is returned when registering with an email that already exists.
	ErrEmailInUse = &AuthError{Reason: "email in use", Code: "EMAIL_IN_USE"}
	// ErrNoSession is returned when the caller's session has been cleared or never existed.
	ErrNoSession = &AuthError{Reason: "no active session", Code: "NO_SESSION"}
	// ErrInvalidRefreshToken is returned when a refresh token is invalid or its session is gone.
	ErrInvalidRefreshToken = &AuthError{Reason: "invalid or expired refresh token", Code: "INVALID_REFRESH_TOKEN"}

	// ErrForbidden is returned when the session user may not perform an action.
	ErrForbidden = errors.New("forbidden")

	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrRideNotFound is returned when a ride is not found.
	ErrRideNotFound = errors.New("ride not found")
	// ErrMessageNotFound is returned when a message is not found.
	ErrMessageNotFound = errors.New("message not found")

	// ErrOwnRide is returned when a driver requests a seat in their own ride.
	ErrOwnRide = errors.New("cannot request a seat in your own ride")
	// ErrRideNotActive is returned when a ride is completed or cancelled.
	ErrRideNotActive = errors.New("ride is not active")
	// ErrNoSeats is returned when a ride has no seat left.
	ErrNoSeats = errors.New("no seats available")
	// ErrAlreadyRequested is returned when the passenger already asked to join the ride.
	ErrAlreadyRequested = errors.New("ride already requested")
)

// AuthError is an authentication failure. It is never fatal: the caller may retry.
type AuthError struct {
	Reason string
	Code   string
}

func (e *AuthError) Error() string {
	return e.Reason
}

// ValidationError carries field-level input errors.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error:  e.Message,
		Code:   e.Code,
		Fields: e.Fields,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var authErr *AuthError
	if errors.As(err, &authErr) {
		status := http.StatusUnauthorized
		if authErr == ErrEmailInUse {
			status = http.StatusConflict
		}
		return NewHTTPError(status, authErr.Reason, authErr.Code)
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		httpErr := NewHTTPError(http.StatusBadRequest, "validation failed", "VALIDATION_ERROR")
		httpErr.Fields = validationErr.Fields
		return httpErr
	}

	switch {
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error(), "FORBIDDEN")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrRideNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "RIDE_NOT_FOUND")
	case errors.Is(err, ErrMessageNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MESSAGE_NOT_FOUND")
	case errors.Is(err, ErrOwnRide):
		return NewHTTPError(http.StatusConflict, err.Error(), "OWN_RIDE")
	case errors.Is(err, ErrRideNotActive):
		return NewHTTPError(http.StatusConflict, err.Error(), "RIDE_NOT_ACTIVE")
	case errors.Is(err, ErrNoSeats):
		return NewHTTPError(http.StatusConflict, err.Error(), "NO_SEATS")
	case errors.Is(err, ErrAlreadyRequested):
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_REQUESTED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
