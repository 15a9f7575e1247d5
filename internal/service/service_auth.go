package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/internal/validators"
	"github.com/MKhiriev/chick-care/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdminUsername is the login of the account created by SeedAdmin.
const SeedAdminUsername = "admin"

// seedPasswordBytes is the entropy of a generated seed admin password.
const seedPasswordBytes = 12

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	// dummyHash is compared against when the username is unknown so that
	// both failure paths cost one bcrypt comparison.
	dummyHash []byte

	seed seedAdmin

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

type seedAdmin struct {
	enabled  bool
	password string
	email    string
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository. Seed admin settings are taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return newAuthService(userRepository, cfg, bcrypt.DefaultCost, logger)
}

func newAuthService(userRepository store.UserRepository, cfg config.App, cost int, logger *logger.Logger) *authService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("chick-care-dummy-password"), cost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error generating dummy password hash")
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewAccountValidator(),
		bcryptCost:     cost,
		dummyHash:      dummyHash,
		seed: seedAdmin{
			enabled:  cfg.SeedAdmin,
			password: cfg.SeedAdminPassword,
			email:    cfg.SeedAdminEmail,
		},
		logger: logger,
	}
}

// Authenticate verifies username and password.
//
// Returns the session for the found user or:
//   - ErrValidation if either field is blank.
//   - ErrInvalidCredentials if the user is unknown or the password does not
//     match. Both cases are indistinguishable to the caller.
//   - ErrUnavailable if the database cannot be reached.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.Session, error) {
	log := logger.FromContext(ctx)

	credentials.Username = strings.TrimSpace(credentials.Username)
	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Session{}, validationError(err)
	}

	user, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(credentials.Password))
		log.Info().Str("username", credentials.Username).Msg("login attempt for unknown user")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.Session{}, mapStoreError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("wrong password")
		return models.Session{}, ErrInvalidCredentials
	}

	return models.NewSession(user), nil
}

// Register validates the request, hashes the password and stores a new user
// with role "user".
//
// Returns the persisted user or:
//   - ErrValidation wrapping the failed validators rule.
//   - ErrDuplicate wrapping store.ErrUsernameTaken or store.ErrEmailTaken.
//   - ErrUnavailable if the database cannot be reached.
func (a *authService) Register(ctx context.Context, request models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	request.Username = strings.TrimSpace(request.Username)
	request.Email = strings.TrimSpace(request.Email)
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, validationError(err)
	}

	user, err := a.createUser(ctx, models.User{
		Email:    request.Email,
		Username: request.Username,
		Password: request.Password,
		Role:     models.RoleUser,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, err
	}

	log.Info().Int64("id", user.UserID).Str("username", user.Username).Msg("user registered")
	return user, nil
}

// SeedAdmin creates the "admin" account with role admin when seeding is
// enabled and no such account exists. When no password is configured a
// random one is generated and written to the log once.
func (a *authService) SeedAdmin(ctx context.Context) error {
	if !a.seed.enabled {
		return nil
	}

	existing, err := a.userRepository.FindUserByUsername(ctx, SeedAdminUsername)
	if err == nil {
		if !existing.IsAdmin() {
			a.logger.Warn().Int64("id", existing.UserID).Msg("account named admin exists without admin role; seed skipped")
		}
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("error looking up seed admin: %w", mapStoreError(err))
	}

	password := a.seed.password
	generated := password == ""
	if generated {
		if password, err = utils.RandomToken(seedPasswordBytes); err != nil {
			return fmt.Errorf("error generating seed admin password: %w", err)
		}
	}

	user, err := a.createUser(ctx, models.User{
		Email:    a.seed.email,
		Username: SeedAdminUsername,
		Password: password,
		Role:     models.RoleAdmin,
	})
	if errors.Is(err, ErrDuplicate) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error creating seed admin: %w", err)
	}

	event := a.logger.Warn().Int64("id", user.UserID).Str("username", user.Username)
	if generated {
		event = event.Str("password", password)
	}
	event.Msg("seed admin account created")

	return nil
}

func (a *authService) createUser(ctx context.Context, user models.User) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, mapStoreError(err)
	}

	return created, nil
}
