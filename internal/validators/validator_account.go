package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/chick-care/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldUsername targets the login name.
	FieldUsername = "username"

	// FieldEmail targets the account email address.
	FieldEmail = "email"

	// FieldPassword targets the plaintext password. Only presence is checked.
	FieldPassword = "password"

	// FieldNewPassword applies the password policy on top of presence.
	FieldNewPassword = "new_password"

	// FieldToken targets the password reset token.
	FieldToken = "token"
)

// Password and username policy.
const (
	MinPasswordLength = 8
	// MaxPasswordBytes is the longest input bcrypt hashes without truncation.
	MaxPasswordBytes  = 72
	minUsernameLength = 3
	maxUsernameLength = 32
)

// AccountValidator validates the login, registration and password reset
// forms.
type AccountValidator struct{}

// NewAccountValidator constructs a new AccountValidator and returns it as
// the Validator interface.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate dispatches on the dynamic type of obj. Both value and pointer
// forms are accepted.
//
// Supported types:
//   - models.Credentials: presence of username and password only
//   - models.RegistrationRequest: username, email and password policy
//   - models.PasswordResetRequest: email presence
//   - models.NewPasswordRequest: token and password policy
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.RegistrationRequest:
		return v.validateRegistration(value, fields...)
	case *models.RegistrationRequest:
		return v.validateRegistration(*value, fields...)

	case models.PasswordResetRequest:
		return v.validateResetRequest(value, fields...)
	case *models.PasswordResetRequest:
		return v.validateResetRequest(*value, fields...)

	case models.NewPasswordRequest:
		return v.validateNewPassword(value, fields...)
	case *models.NewPasswordRequest:
		return v.validateNewPassword(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials deliberately skips the username and password policy:
// accounts created before a policy change must still be able to log in.
func (v *AccountValidator) validateCredentials(c models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(c.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if strings.TrimSpace(c.Password) == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateRegistration(r models.RegistrationRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldNewPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = validateUsername(r.Username)
		case FieldEmail:
			err = validateEmail(r.Email)
		case FieldPassword:
			if strings.TrimSpace(r.Password) == "" {
				err = ErrEmptyPassword
			}
		case FieldNewPassword:
			err = validatePassword(r.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *AccountValidator) validateResetRequest(r models.PasswordResetRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(r.Email) == "" {
				return ErrEmptyEmail
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateNewPassword(r models.NewPasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldToken, FieldNewPassword}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldToken:
			if strings.TrimSpace(r.Token) == "" {
				err = ErrEmptyToken
			}
		case FieldNewPassword:
			err = validatePassword(r.Password)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}

	if n := utf8.RuneCountInString(username); n < minUsernameLength || n > maxUsernameLength {
		return ErrUsernameLength
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '.' && r != '_' && r != '-' {
			return ErrInvalidUsername
		}
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmptyEmail
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordBytes {
		return ErrPasswordTooLong
	}

	return nil
}
