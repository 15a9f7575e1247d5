package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Session is the server-recognized proof of a successful login. It is
// serialized into a signed token and stored in the session cookie.
type Session struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// IsAdmin reports whether the session was established for an admin account.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// NewSession builds the session payload for an authenticated user.
func NewSession(user User) Session {
	return Session{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}

// SessionToken is the JWT claim set stored in the session cookie.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, exp, iat,
// iss) and adds the [Session] fields so that handlers can render pages
// without hitting the database on every request.
type SessionToken struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	Session

	// SignedString is the compact JWS representation written into the cookie.
	SignedString string `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 int64.
func (t *SessionToken) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *SessionToken) String() string {
	return t.SignedString
}
