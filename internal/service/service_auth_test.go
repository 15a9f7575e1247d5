package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/mock"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/internal/validators"
	"github.com/MKhiriev/chick-care/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T, cfg config.App) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return newAuthService(users, cfg, bcrypt.MinCost, logger.Nop()), users
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	stored := models.User{UserID: 7, Username: "farmer", Email: "f@example.com", Role: models.RoleUser, PasswordHash: hashed(t, "password1")}
	users.EXPECT().FindUserByUsername(ctx, "farmer").Return(stored, nil)

	session, err := svc.Authenticate(ctx, models.Credentials{Username: " farmer ", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: 7, Username: "farmer", Email: "f@example.com", Role: models.RoleUser}, session)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "farmer").
		Return(models.User{UserID: 7, Username: "farmer", PasswordHash: hashed(t, "password1")}, nil)

	_, err := svc.Authenticate(ctx, models.Credentials{Username: "farmer", Password: "password2"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authenticate_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Authenticate(ctx, models.Credentials{Username: "ghost", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NotErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestAuthService_Authenticate_BlankFields(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.Authenticate(context.Background(), models.Credentials{Username: "  ", Password: "x"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyUsername)

	_, err = svc.Authenticate(context.Background(), models.Credentials{Username: "farmer"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAuthService_Authenticate_StoreUnavailable(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, "farmer").
		Return(models.User{}, errors.Join(store.ErrUnavailable, errors.New("connection refused")))

	_, err := svc.Authenticate(ctx, models.Credentials{Username: "farmer", Password: "password1"})

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{})
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "farmer", u.Username)
			assert.Equal(t, "f@example.com", u.Email)
			assert.Equal(t, models.RoleUser, u.Role)
			assert.Empty(t, u.Password, "plaintext must not reach the store")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")))
			u.UserID = 3
			return u, nil
		},
	)

	user, err := svc.Register(ctx, models.RegistrationRequest{Email: " f@example.com", Username: "farmer ", Password: "password1"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	for _, storeErr := range []error{store.ErrUsernameTaken, store.ErrEmailTaken} {
		t.Run(storeErr.Error(), func(t *testing.T) {
			svc, users := newTestAuthSvc(t, config.App{})
			ctx := context.Background()

			users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, storeErr)

			_, err := svc.Register(ctx, models.RegistrationRequest{Email: "f@example.com", Username: "farmer", Password: "password1"})

			assert.ErrorIs(t, err, ErrDuplicate)
			assert.ErrorIs(t, err, storeErr)
		})
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{})

	_, err := svc.Register(context.Background(), models.RegistrationRequest{Email: "f@example.com", Username: "farmer", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrPasswordTooShort)

	_, err = svc.Register(context.Background(), models.RegistrationRequest{Username: "farmer", Password: "password1"})
	assert.ErrorIs(t, err, validators.ErrMissingField)
}

// ── SeedAdmin ────────────────────────────────────────────────────────────────

func TestAuthService_SeedAdmin_Disabled(t *testing.T) {
	svc, _ := newTestAuthSvc(t, config.App{SeedAdmin: false})
	require.NoError(t, svc.SeedAdmin(context.Background()))
}

func TestAuthService_SeedAdmin_AlreadyExists(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{SeedAdmin: true})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, SeedAdminUsername).Return(models.User{UserID: 1, Role: models.RoleAdmin}, nil)

	require.NoError(t, svc.SeedAdmin(ctx))
}

func TestAuthService_SeedAdmin_CreatesWithConfiguredPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{SeedAdmin: true, SeedAdminPassword: "farm-admin-pass", SeedAdminEmail: "admin@farm.test"})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, SeedAdminUsername).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, SeedAdminUsername, u.Username)
			assert.Equal(t, "admin@farm.test", u.Email)
			assert.Equal(t, models.RoleAdmin, u.Role)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("farm-admin-pass")))
			u.UserID = 1
			return u, nil
		},
	)

	require.NoError(t, svc.SeedAdmin(ctx))
}

func TestAuthService_SeedAdmin_GeneratesPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{SeedAdmin: true})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, SeedAdminUsername).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.NotEmpty(t, u.PasswordHash)
			return u, nil
		},
	)

	require.NoError(t, svc.SeedAdmin(ctx))
}

func TestAuthService_SeedAdmin_LostRaceIsNotAnError(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{SeedAdmin: true, SeedAdminPassword: "farm-admin-pass"})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, SeedAdminUsername).Return(models.User{}, store.ErrNoUserWasFound)
	users.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrUsernameTaken)

	require.NoError(t, svc.SeedAdmin(ctx))
}

func TestAuthService_SeedAdmin_LookupFails(t *testing.T) {
	svc, users := newTestAuthSvc(t, config.App{SeedAdmin: true})
	ctx := context.Background()

	users.EXPECT().FindUserByUsername(ctx, SeedAdminUsername).Return(models.User{}, store.ErrUnavailable)

	err := svc.SeedAdmin(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
}
