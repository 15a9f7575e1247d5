package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/chick-care/internal/app"
	"github.com/MKhiriev/chick-care/internal/service"
	"github.com/MKhiriev/chick-care/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:            http.StatusBadRequest,
	service.ErrInvalidCredentials:    http.StatusUnauthorized,
	service.ErrDuplicate:             http.StatusConflict,
	service.ErrUnavailable:           http.StatusServiceUnavailable,
	service.ErrInvalidOrExpiredToken: http.StatusBadRequest,
	service.ErrInvalidSession:        http.StatusUnauthorized,
	service.ErrUnknownCategory:       http.StatusBadRequest,

	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidForm:     http.StatusBadRequest,
	ErrInvalidLimit:    http.StatusBadRequest,
	ErrNoSession:       http.StatusUnauthorized,
	ErrNotAdmin:        http.StatusForbidden,
	ErrInvalidAPIKey:   http.StatusUnauthorized,
	ErrTooManyAttempts: http.StatusTooManyRequests,
	ErrBodyTooLarge:    http.StatusRequestEntityTooLarge,
	errNotFound:        http.StatusNotFound,
}

// bodyError classifies a failure to read or decode a request body. Reads
// cut short by the body size limit become [ErrBodyTooLarge].
func bodyError(kind, err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorMessage struct {
	target  error
	message string
}

// errorMessages is checked in order: specific validation failures come
// before the generic error they are wrapped in.
var errorMessages = []errorMessage{
	{validators.ErrInvalidEmail, app.MsgInvalidEmail},
	{validators.ErrInvalidUsername, app.MsgInvalidUsername},
	{validators.ErrUsernameLength, app.MsgInvalidUsername},
	{validators.ErrPasswordTooShort, app.MsgPasswordTooShort},
	{validators.ErrPasswordTooLong, app.MsgPasswordTooLong},
	{validators.ErrNoMessages, app.MsgNoMessagesProvided},
	{validators.ErrEmptyMessage, app.MsgEmptyMessage},
	{validators.ErrMissingField, app.MsgMissingFields},

	{service.ErrInvalidCredentials, app.MsgInvalidLoginPassword},
	{service.ErrDuplicate, app.MsgAccountAlreadyExists},
	{service.ErrUnavailable, app.MsgServiceUnavailable},
	{service.ErrInvalidOrExpiredToken, app.MsgResetTokenInvalid},
	{service.ErrInvalidSession, app.MsgLoginRequired},
	{service.ErrUnknownCategory, app.MsgUnknownCategory},
	{service.ErrValidation, app.MsgInvalidDataProvided},

	{ErrInvalidJSON, app.MsgInvalidDataProvided},
	{ErrInvalidForm, app.MsgInvalidDataProvided},
	{ErrInvalidLimit, app.MsgInvalidDataProvided},
	{ErrNoSession, app.MsgLoginRequired},
	{ErrNotAdmin, app.MsgAccessDenied},
	{ErrInvalidAPIKey, app.MsgInvalidAPIKey},
	{ErrTooManyAttempts, app.MsgTooManyLoginAttempts},
	{ErrBodyTooLarge, app.MsgRequestTooLarge},
	{errNotFound, app.MsgNotFound},
}

// messageFromError returns the catalog message shown to users for err.
// Unknown errors never leak: they become a generic message.
func messageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalServerError
}
