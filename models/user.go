// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Role is the authorization level attached to a user account and carried
// inside the session.
type Role string

const (
	// RoleUser is the default role assigned at registration.
	RoleUser Role = "user"

	// RoleAdmin unlocks the admin dashboard.
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique e-mail address of the account. Password reset
	// links are delivered to it.
	Email string `json:"email"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// Password carries the plaintext secret on its way in from the
	// transport layer. It is never persisted and never serialized.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `json:"-"`

	// Role is the authorization level of the account.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// IsAdmin reports whether the user carries the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
