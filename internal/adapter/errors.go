package adapter

import "errors"

// Errors returned by [ServerAdapter] for the matching HTTP statuses.
var (
	ErrBadRequest          = errors.New("server rejected the request")
	ErrUnauthorized        = errors.New("missing or wrong api key")
	ErrNotFound            = errors.New("endpoint not found")
	ErrServiceUnavailable  = errors.New("server storage unavailable")
	ErrInternalServerError = errors.New("server error")
	ErrInvalidAddress      = errors.New("invalid server address")
)
