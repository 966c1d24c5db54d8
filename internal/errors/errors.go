package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrNewsNotFound is returned when a news article is not found.
	ErrNewsNotFound = errors.New("news not found")
	// ErrAdminNotFound is returned when an admin record is not found.
	ErrAdminNotFound = errors.New("admin not found")
	// ErrUnauthorized is returned when a mutating operation is attempted
	// without a resolvable session.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a field-level validation failure. No store
// mutation happens once one of these is raised.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MapToHTTP maps domain errors to an HTTP status and user-facing message.
// Store-layer failures and anything unrecognized collapse to a generic 500.
func MapToHTTP(err error) (int, string) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Message
	}
	switch {
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, ErrNewsNotFound):
		return http.StatusNotFound, "News not found"
	case errors.Is(err, ErrAdminNotFound):
		return http.StatusNotFound, "Admin not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
