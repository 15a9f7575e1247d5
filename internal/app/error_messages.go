// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// chick-care handlers and middleware.
//
// All Msg* constants are human-readable message strings that are shown on
// HTML pages (as flash messages) or written into JSON response bodies.
// Keeping them in one place ensures consistent wording throughout the UI and
// the API, and guarantees that raw driver errors never reach a user.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgMissingFields is shown when a required form field is empty.
	MsgMissingFields = "please fill in all fields"

	// MsgInvalidLoginPassword is shown when the username/password
	// combination does not match any account. Unknown users and wrong
	// passwords share it.
	MsgInvalidLoginPassword = "invalid username or password"

	// MsgTooManyLoginAttempts is returned once an address exceeds the
	// failed login budget.
	MsgTooManyLoginAttempts = "too many failed login attempts, please try again later"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is shown when the database cannot be reached.
	MsgServiceUnavailable = "service is temporarily unavailable, please try again later"

	// MsgLoginRequired is shown after a redirect caused by a missing or
	// expired session.
	MsgLoginRequired = "please log in to continue"

	// MsgAccessDenied is returned when a non-admin opens an admin page.
	MsgAccessDenied = "access denied"

	// MsgLoggedOut is shown on the login page after logout.
	MsgLoggedOut = "you have been logged out"

	// MsgRegistrationSucceeded is shown on the login page after sign-up.
	MsgRegistrationSucceeded = "registration successful, please log in"

	// MsgRegistrationFailed is returned when registration fails for a
	// reason the user cannot fix.
	MsgRegistrationFailed = "registration failed"

	// MsgAccountAlreadyExists is shown when the username or the email is
	// already registered.
	MsgAccountAlreadyExists = "username or email already exists"

	// MsgInvalidEmail is shown when the email does not parse as an address.
	MsgInvalidEmail = "please enter a valid email address"

	// MsgInvalidUsername is shown when the username breaks the username policy.
	MsgInvalidUsername = "username must be 3-32 letters, digits, '.', '_' or '-'"

	// MsgPasswordTooShort is shown when the password is under 8 characters.
	MsgPasswordTooShort = "password must be at least 8 characters long"

	// MsgPasswordTooLong is shown when the password exceeds 72 bytes.
	MsgPasswordTooLong = "password must be at most 72 bytes long"

	// MsgResetRequested is shown after every reset request, whether or not
	// the address belongs to an account.
	MsgResetRequested = "if an account with that email exists, a password reset link has been sent"

	// MsgResetTokenInvalid is shown when a reset link is unknown, already
	// used or expired.
	MsgResetTokenInvalid = "this password reset link is invalid or has expired"

	// MsgPasswordResetSucceeded is shown on the login page after a reset.
	MsgPasswordResetSucceeded = "your password has been reset, please log in"

	// MsgNoMessagesProvided is returned when an insert request carries no
	// notifications.
	MsgNoMessagesProvided = "no messages provided"

	// MsgEmptyMessage is returned when one of the notifications is blank.
	MsgEmptyMessage = "notification messages must not be empty"

	// MsgUnknownCategory is returned for an unknown sensor category.
	MsgUnknownCategory = "unknown sensor category"

	// MsgInvalidAPIKey is returned when the ingest key is missing or wrong.
	MsgInvalidAPIKey = "invalid api key"

	// MsgRequestTooLarge is returned when a request body exceeds the limit.
	MsgRequestTooLarge = "request body is too large"

	// MsgNotFound is returned for unknown routes and methods.
	MsgNotFound = "not found"
)
