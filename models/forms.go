package models

// Credentials is the login form.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegistrationRequest is the sign-up form.
type RegistrationRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// PasswordResetRequest asks for a reset link to be mailed to Email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// NewPasswordRequest consumes a reset token and sets Password.
type NewPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
