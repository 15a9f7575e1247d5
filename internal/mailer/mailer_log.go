package mailer

import (
	"context"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
)

// LogMailer writes reset links to the log instead of sending them.
type LogMailer struct {
	logger *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{logger: log}
}

func (l *LogMailer) SendPasswordReset(ctx context.Context, user models.User, link string) error {
	if user.Email == "" {
		return ErrNoRecipient
	}

	l.logger.Warn().
		Int64("id", user.UserID).
		Str("email", user.Email).
		Str("link", link).
		Msg("smtp is not configured; password reset link logged instead of sent")
	return nil
}
