package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"email in use", ErrEmailInUse, http.StatusConflict, "EMAIL_IN_USE"},
		{"no session", ErrNoSession, http.StatusUnauthorized, "NO_SESSION"},
		{"validation", NewValidationError("endLocation", "is required"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"wrapped not found", fmt.Errorf("get: %w", ErrRideNotFound), http.StatusNotFound, "RIDE_NOT_FOUND"},
		{"message not found", ErrMessageNotFound, http.StatusNotFound, "MESSAGE_NOT_FOUND"},
		{"own ride", ErrOwnRide, http.StatusConflict, "OWN_RIDE"},
		{"no seats", ErrNoSeats, http.StatusConflict, "NO_SEATS"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.expectedStatus, httpErr.StatusCode)
			assert.Equal(t, tt.expectedCode, httpErr.Code)
		})
	}
}

func TestMapErrorToHTTP_ValidationFields(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"time": "bad", "endLocation": "short"}}
	resp := MapErrorToHTTP(err).ToErrorResponse()
	assert.Equal(t, map[string]string{"time": "bad", "endLocation": "short"}, resp.Fields)
	assert.Equal(t, "validation failed: endLocation: short; time: bad", err.Error())
}

func TestMapErrorToHTTP_HidesInternalDetails(t *testing.T) {
	resp := MapErrorToHTTP(errors.New("dial tcp 10.0.0.1:3306: refused")).ToErrorResponse()
	assert.Equal(t, "internal server error", resp.Error)
	assert.Nil(t, resp.Fields)
}
