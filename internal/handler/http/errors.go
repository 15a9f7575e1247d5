// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when a JSON request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned when a form body cannot be parsed.
	ErrInvalidForm = errors.New("invalid form was passed")

	// ErrInvalidLimit is returned when the ?limit= query parameter is not an
	// integer.
	ErrInvalidLimit = errors.New("limit must be an integer")

	// ErrNoSession is returned when a protected route is requested without a
	// valid session cookie.
	ErrNoSession = errors.New("no valid session")

	// ErrNotAdmin is returned when a non-admin session requests an admin route.
	ErrNotAdmin = errors.New("admin role required")

	// ErrInvalidAPIKey is returned when the X-API-Key header is missing or
	// does not match the configured ingest key.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrTooManyAttempts is returned when an address exhausted its failed
	// login budget.
	ErrTooManyAttempts = errors.New("too many failed login attempts")

	// ErrBodyTooLarge is returned when a request body is over maxBodyBytes
	// after gzip decoding.
	ErrBodyTooLarge = errors.New("request body too large")

	errNotFound = errors.New("not found")
)
