package mailer

import (
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/service"
)

// New returns an SMTP mailer when cfg names a relay and a LogMailer otherwise.
func New(cfg config.Mail, resetTTL time.Duration, log *logger.Logger) (service.Mailer, error) {
	if !cfg.Enabled() {
		log.Info().Msg("SMTP_HOST is not set; reset emails will only be logged")
		return NewLogMailer(log), nil
	}

	return NewSMTPMailer(cfg, resetTTL, log)
}
