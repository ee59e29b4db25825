// Package apperr holds the sentinel errors shared by DAOs, services and
// handlers. Callers classify with errors.Is and map to HTTP status via Status.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated: no usable credential was presented.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrInvalidCredential: a credential was presented but is expired,
	// malformed or carries a bad signature.
	ErrInvalidCredential = errors.New("invalid or expired credential")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrValidation        = errors.New("validation failed")
	ErrUnavailable       = errors.New("upstream unavailable")
)

// Status maps a sentinel (possibly wrapped) to its HTTP status code.
// Anything unclassified is a 500.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidCredential), errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
