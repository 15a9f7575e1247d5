//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/chick-care/models"
)

// AuthService verifies credentials and manages accounts.
type AuthService interface {
	// Authenticate checks credentials and returns the session to establish.
	Authenticate(ctx context.Context, credentials models.Credentials) (models.Session, error)
	// Register creates a user with role "user".
	Register(ctx context.Context, request models.RegistrationRequest) (models.User, error)
	// SeedAdmin creates the "admin" account when it does not exist yet.
	SeedAdmin(ctx context.Context) error
}

// SessionService turns sessions into signed cookie values and back.
type SessionService interface {
	CreateSession(ctx context.Context, session models.Session) (models.SessionToken, error)
	ParseSession(ctx context.Context, raw string) (models.Session, error)
}

// SensorService reads sensor categories.
type SensorService interface {
	Latest(ctx context.Context, category models.SensorCategory, n int) ([]models.SensorReading, error)
}

// NotificationService appends to and reads the notification log.
type NotificationService interface {
	Append(ctx context.Context, request models.InsertNotificationsRequest) (int, error)
	Recent(ctx context.Context, limit int) ([]models.Notification, error)
}

// DashboardService assembles everything the dashboard pages render.
type DashboardService interface {
	// Assemble never fails: sub-fetch errors are logged and replaced with
	// empty values.
	Assemble(ctx context.Context, session models.Session) models.DashboardView
}

// PasswordResetService drives the emailed reset-link flow.
type PasswordResetService interface {
	// RequestReset mails a reset link when the address belongs to an
	// account. It only fails on invalid input so callers can answer every
	// request identically.
	RequestReset(ctx context.Context, request models.PasswordResetRequest) error
	// IssueToken creates a new reset token for userID, invalidating older ones.
	IssueToken(ctx context.Context, userID int64) (string, error)
	// ConsumeToken sets a new password if the token is known and unexpired.
	ConsumeToken(ctx context.Context, request models.NewPasswordRequest) error
}

// HealthService probes the storage backends.
type HealthService interface {
	Check(ctx context.Context) error
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// Mailer delivers password reset links.
type Mailer interface {
	SendPasswordReset(ctx context.Context, user models.User, link string) error
}
