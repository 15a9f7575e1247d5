package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
	"github.com/wneessen/go-mail"
)

const smtpsPort = 465

// sender is the part of *mail.Client the SMTP mailer needs.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

// SMTPMailer sends reset emails through an SMTP relay.
type SMTPMailer struct {
	client   sender
	from     string
	resetTTL time.Duration

	logger *logger.Logger
}

// NewSMTPMailer builds a client for the relay described by cfg. Submission
// ports use opportunistic STARTTLS, port 465 uses implicit TLS. SMTP auth is
// only enabled when a username is configured.
func NewSMTPMailer(cfg config.Mail, resetTTL time.Duration, log *logger.Logger) (*SMTPMailer, error) {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	if from == "" {
		return nil, fmt.Errorf("%w: sender address is empty", ErrInvalidConfig)
	}

	opts := []mail.Option{mail.WithPort(cfg.Port)}
	if cfg.Port == smtpsPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSOpportunistic))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &SMTPMailer{
		client:   client,
		from:     from,
		resetTTL: resetTTL,
		logger:   log,
	}, nil
}

// SendPasswordReset mails link to user.Email.
func (s *SMTPMailer) SendPasswordReset(ctx context.Context, user models.User, link string) error {
	msg, err := s.resetMessage(user, link)
	if err != nil {
		return err
	}

	if err = s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %w", ErrSendingEmail, err)
	}

	return nil
}

func (s *SMTPMailer) resetMessage(user models.User, link string) (*mail.Msg, error) {
	if user.Email == "" {
		return nil, ErrNoRecipient
	}

	text, html, err := renderReset(newResetEmailData(user.Username, link, s.resetTTL))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildMessage, err)
	}

	msg := mail.NewMsg()
	if err = msg.From(s.from); err != nil {
		return nil, fmt.Errorf("%w: sender: %w", ErrBuildMessage, err)
	}
	if err = msg.To(user.Email); err != nil {
		return nil, fmt.Errorf("%w: recipient: %w", ErrBuildMessage, err)
	}
	msg.Subject(ResetSubject)
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	return msg, nil
}
