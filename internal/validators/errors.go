package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMissingField is wrapped by every "field is required" error.
	ErrMissingField = errors.New("required field is missing")
)

var (
	ErrEmptyUsername = fmt.Errorf("username: %w", ErrMissingField)
	ErrEmptyEmail    = fmt.Errorf("email: %w", ErrMissingField)
	ErrEmptyPassword = fmt.Errorf("password: %w", ErrMissingField)
	ErrEmptyToken    = fmt.Errorf("token: %w", ErrMissingField)
	ErrNoMessages    = fmt.Errorf("messages: %w", ErrMissingField)

	ErrInvalidEmail     = errors.New("email address is not valid")
	ErrInvalidUsername  = errors.New("username may only contain letters, digits, '.', '_' and '-'")
	ErrUsernameLength   = errors.New("username must be between 3 and 32 characters")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must be at most 72 bytes")
	ErrEmptyMessage     = errors.New("notification message must not be blank")
	ErrMessageTooLong   = errors.New("notification message is too long")
	ErrTooManyMessages  = errors.New("too many notification messages in one request")
)
