package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
)

const (
	msgInvalidBody     = "Invalid request body."
	msgBodyTooLarge    = "Request body too large."
	msgInternalFailure = "Internal server error."
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *export.ValidationError
	var renderErr *rendering.RenderError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &renderErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to send to clients for err. Causes
// are never exposed.
func ClientMessage(err error) string {
	var validationErr *export.ValidationError
	var renderErr *rendering.RenderError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &maxBytesErr):
		return msgBodyTooLarge
	case errors.As(err, &renderErr):
		return renderErr.Message
	default:
		return msgInternalFailure
	}
}
