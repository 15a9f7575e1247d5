package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/models"
)

// sessionService signs sessions into JWT cookie values.
type sessionService struct {
	signKey  string
	issuer   string
	duration time.Duration

	logger *logger.Logger
}

// NewSessionService constructs a SessionService using the session settings
// of cfg.
func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

// CreateSession issues a signed token for session that expires after the
// configured session duration.
func (s *sessionService) CreateSession(ctx context.Context, session models.Session) (models.SessionToken, error) {
	token, err := utils.GenerateSessionToken(s.issuer, session, s.duration, s.signKey)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return token, nil
}

// ParseSession verifies raw and returns the session it carries. Any
// validation failure is normalised to ErrInvalidSession.
func (s *sessionService) ParseSession(ctx context.Context, raw string) (models.Session, error) {
	if raw == "" {
		return models.Session{}, ErrInvalidSession
	}

	token, err := utils.ValidateAndParseSessionToken(raw, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return models.Session{}, ErrInvalidSession
	}

	return token.Session, nil
}
