package service

import "errors"

// Service-level errors. Handlers map them to HTTP statuses; the storage and
// validation errors they wrap are kept for logging.
var (
	ErrValidation            = errors.New("invalid data provided")
	ErrInvalidCredentials    = errors.New("invalid username or password")
	ErrDuplicate             = errors.New("account already exists")
	ErrUnavailable           = errors.New("service temporarily unavailable")
	ErrInvalidOrExpiredToken = errors.New("reset token is invalid or expired")
	ErrInvalidSession        = errors.New("session is expired or invalid")
	ErrUnknownCategory       = errors.New("unknown sensor category")

	ErrSessionCreationFailed = errors.New("session creation failed")
)
