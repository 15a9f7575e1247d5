package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/internal/validators"
	"github.com/MKhiriev/chick-care/models"
	"golang.org/x/crypto/bcrypt"
)

// ResetPathPrefix is the route prefix of reset links.
const ResetPathPrefix = "/reset_password/"

// resetDeliveryTimeout bounds the lookup, token and mail work of one reset
// request, which runs after the response has been sent.
const resetDeliveryTimeout = time.Minute

// passwordResetService issues single-use reset tokens and mails them.
// Only the SHA-256 hash of a token is ever stored.
type passwordResetService struct {
	userRepository store.UserRepository
	mailer         Mailer
	validator      validators.Validator

	baseURL    string
	tokenTTL   time.Duration
	bcryptCost int
	now        func() time.Time

	pending sync.WaitGroup
	logger  *logger.Logger
}

func NewPasswordResetService(userRepository store.UserRepository, mailer Mailer, cfg config.App, logger *logger.Logger) PasswordResetService {
	return &passwordResetService{
		userRepository: userRepository,
		mailer:         mailer,
		validator:      validators.NewAccountValidator(),
		baseURL:        cfg.BaseURL,
		tokenTTL:       cfg.ResetTokenTTL,
		bcryptCost:     bcrypt.DefaultCost,
		now:            time.Now,
		logger:         logger,
	}
}

// RequestReset validates the address and returns. The lookup, token and
// mail run in the background, so known and unknown addresses answer in the
// same time. Their failures are only logged.
func (p *passwordResetService) RequestReset(ctx context.Context, request models.PasswordResetRequest) error {
	request.Email = strings.TrimSpace(request.Email)
	if err := p.validator.Validate(ctx, request); err != nil {
		return validationError(err)
	}

	// the request context ends with the response; keep its logger only
	deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), resetDeliveryTimeout)
	p.pending.Go(func() {
		defer cancel()
		p.deliverReset(deliveryCtx, request.Email)
	})

	return nil
}

func (p *passwordResetService) deliverReset(ctx context.Context, email string) {
	log := logger.FromContext(ctx)

	user, err := p.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Info().Msg("password reset requested for unknown email")
		return
	}
	if err != nil {
		log.Err(err).Msg("password reset: user lookup failed")
		return
	}

	token, err := p.IssueToken(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password reset: token was not issued")
		return
	}

	if err = p.mailer.SendPasswordReset(ctx, user, p.resetLink(token)); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("password reset: email was not sent")
		return
	}

	log.Info().Int64("id", user.UserID).Msg("password reset email sent")
}

func (p *passwordResetService) IssueToken(ctx context.Context, userID int64) (string, error) {
	token, err := utils.RandomToken(utils.ResetTokenBytes)
	if err != nil {
		return "", err
	}

	expiresAt := p.now().Add(p.tokenTTL)
	if err = p.userRepository.SetResetToken(ctx, userID, utils.HashToken(token), expiresAt); err != nil {
		return "", fmt.Errorf("error storing reset token: %w", mapStoreError(err))
	}

	return token, nil
}

// ConsumeToken replaces the password of the token holder. The token is
// cleared in the same statement, so a second use fails with
// ErrInvalidOrExpiredToken.
func (p *passwordResetService) ConsumeToken(ctx context.Context, request models.NewPasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, request); err != nil {
		return validationError(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), p.bcryptCost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	userID, err := p.userRepository.ResetPassword(ctx, utils.HashToken(request.Token), string(hash), p.now())
	if err != nil {
		log.Err(err).Msg("password reset: token was not consumed")
		return mapStoreError(err)
	}

	log.Info().Int64("id", userID).Msg("password was reset")
	return nil
}

func (p *passwordResetService) resetLink(token string) string {
	return p.baseURL + ResetPathPrefix + url.PathEscape(token)
}
