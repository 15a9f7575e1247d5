//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/chick-care/models"
)

// UserRepository persists user accounts and their password reset state.
type UserRepository interface {
	// CreateUser inserts user with its already hashed password and returns
	// the stored row. Collisions return [ErrUsernameTaken] or [ErrEmailTaken].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns [ErrNoUserWasFound] when nothing matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByEmail returns [ErrNoUserWasFound] when nothing matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// ListUsers returns every account ordered by id.
	ListUsers(ctx context.Context) ([]models.User, error)
	// CountUsers returns the number of accounts.
	CountUsers(ctx context.Context) (int, error)
	// SetResetToken stores tokenHash as the only valid reset token of userID.
	SetResetToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	// ResetPassword replaces the password of the user holding tokenHash when
	// it has not expired at now, and clears the token in the same statement.
	ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) (int64, error)
}

// SensorRepository reads the newest rows of a sensor category.
type SensorRepository interface {
	// Latest returns up to n readings of category, newest first. A missing
	// or empty table yields an empty slice.
	Latest(ctx context.Context, category models.SensorCategory, n int) ([]models.SensorReading, error)
}

// NotificationRepository is the append-only notification log.
type NotificationRepository interface {
	// Append stores all messages in one transaction and returns how many were
	// written.
	Append(ctx context.Context, messages []string) (int, error)
	// Recent returns up to limit notifications, newest first.
	Recent(ctx context.Context, limit int) ([]models.Notification, error)
}

// HealthChecker reports whether a backend answers.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
