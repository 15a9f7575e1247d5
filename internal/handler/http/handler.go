package http

import (
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/service"
)

// Failed login budget per client address.
const (
	loginAttemptsLimit  = 10
	loginAttemptsWindow = 15 * time.Minute
)

type Handler struct {
	services *service.Services

	pages         pages
	loginAttempts *attemptLimiter

	shotsDir       string
	cookieSecure   bool
	ingestAPIKey   string
	requestTimeout time.Duration
	trustProxy     bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		pages:          mustParsePages(),
		loginAttempts:  newAttemptLimiter(loginAttemptsLimit, loginAttemptsWindow),
		shotsDir:       cfg.App.ShotsDir,
		cookieSecure:   cfg.App.CookieSecure,
		ingestAPIKey:   cfg.App.IngestAPIKey,
		requestTimeout: cfg.Server.RequestTimeout,
		trustProxy:     cfg.Server.TrustProxy,
		logger:         logger,
	}
}
