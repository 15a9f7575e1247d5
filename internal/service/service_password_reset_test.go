package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/internal/mock"
	"github.com/MKhiriev/chick-care/internal/store"
	"github.com/MKhiriev/chick-care/internal/utils"
	"github.com/MKhiriev/chick-care/internal/validators"
	"github.com/MKhiriev/chick-care/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestResetSvc(t *testing.T) (*passwordResetService, *mock.MockUserRepository, *mock.MockMailer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	mailer := mock.NewMockMailer(ctrl)

	cfg := config.App{BaseURL: "https://farm.test", ResetTokenTTL: time.Hour}
	svc := NewPasswordResetService(users, mailer, cfg, logger.Nop()).(*passwordResetService)
	svc.bcryptCost = bcrypt.MinCost
	svc.now = func() time.Time { return fixedNow }

	return svc, users, mailer
}

func TestPasswordResetService_RequestReset_KnownEmail(t *testing.T) {
	svc, users, mailer := newTestResetSvc(t)
	ctx := context.Background()
	user := models.User{UserID: 5, Email: "f@example.com", Username: "farmer"}

	var storedHash string
	users.EXPECT().FindUserByEmail(gomock.Any(), "f@example.com").Return(user, nil)
	users.EXPECT().SetResetToken(gomock.Any(), int64(5), gomock.Any(), fixedNow.Add(time.Hour)).DoAndReturn(
		func(_ context.Context, _ int64, hash string, _ time.Time) error {
			storedHash = hash
			return nil
		},
	)
	mailer.EXPECT().SendPasswordReset(gomock.Any(), user, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ models.User, link string) error {
			require.True(t, strings.HasPrefix(link, "https://farm.test/reset_password/"))
			token := strings.TrimPrefix(link, "https://farm.test/reset_password/")
			assert.Equal(t, utils.HashToken(token), storedHash, "only the hash of the mailed token is stored")
			assert.NotEqual(t, token, storedHash)
			return nil
		},
	)

	require.NoError(t, svc.RequestReset(ctx, models.PasswordResetRequest{Email: " f@example.com "}))
	svc.pending.Wait()
}

func TestPasswordResetService_RequestReset_DoesNotWaitForMail(t *testing.T) {
	svc, users, mailer := newTestResetSvc(t)
	user := models.User{UserID: 5, Email: "f@example.com"}
	release := make(chan struct{})

	users.EXPECT().FindUserByEmail(gomock.Any(), "f@example.com").Return(user, nil)
	users.EXPECT().SetResetToken(gomock.Any(), int64(5), gomock.Any(), gomock.Any()).Return(nil)
	mailer.EXPECT().SendPasswordReset(gomock.Any(), user, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ models.User, _ string) error {
			<-release
			assert.NoError(t, ctx.Err(), "delivery outlives the request")
			return nil
		},
	)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, svc.RequestReset(ctx, models.PasswordResetRequest{Email: "f@example.com"}))
	// the response has gone out; ending the request must not abort delivery
	cancel()
	close(release)
	svc.pending.Wait()
}

func TestPasswordResetService_RequestReset_SilentFailures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		svc, users, _ := newTestResetSvc(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrNoUserWasFound)

		assert.NoError(t, svc.RequestReset(context.Background(), models.PasswordResetRequest{Email: "nobody@example.com"}))
		svc.pending.Wait()
	})

	t.Run("store down", func(t *testing.T) {
		svc, users, _ := newTestResetSvc(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUnavailable)

		assert.NoError(t, svc.RequestReset(context.Background(), models.PasswordResetRequest{Email: "f@example.com"}))
		svc.pending.Wait()
	})

	t.Run("mail fails", func(t *testing.T) {
		svc, users, mailer := newTestResetSvc(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
		users.EXPECT().SetResetToken(gomock.Any(), int64(1), gomock.Any(), gomock.Any()).Return(nil)
		mailer.EXPECT().SendPasswordReset(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		assert.NoError(t, svc.RequestReset(context.Background(), models.PasswordResetRequest{Email: "f@example.com"}))
		svc.pending.Wait()
	})
}

func TestPasswordResetService_RequestReset_EmptyEmail(t *testing.T) {
	svc, _, _ := newTestResetSvc(t)

	err := svc.RequestReset(context.Background(), models.PasswordResetRequest{Email: "  "})

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, validators.ErrEmptyEmail)
}

func TestPasswordResetService_IssueToken_Unique(t *testing.T) {
	svc, users, _ := newTestResetSvc(t)
	users.EXPECT().SetResetToken(gomock.Any(), int64(9), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	first, err := svc.IssueToken(context.Background(), 9)
	require.NoError(t, err)
	second, err := svc.IssueToken(context.Background(), 9)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.Len(t, first, 43)
}

func TestPasswordResetService_ConsumeToken(t *testing.T) {
	svc, users, _ := newTestResetSvc(t)
	ctx := context.Background()

	users.EXPECT().ResetPassword(ctx, utils.HashToken("tok"), gomock.Any(), fixedNow).DoAndReturn(
		func(_ context.Context, _ string, passwordHash string, _ time.Time) (int64, error) {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte("new-password")))
			return 5, nil
		},
	)

	require.NoError(t, svc.ConsumeToken(ctx, models.NewPasswordRequest{Token: "tok", Password: "new-password"}))
}

func TestPasswordResetService_ConsumeToken_InvalidOrExpired(t *testing.T) {
	svc, users, _ := newTestResetSvc(t)
	users.EXPECT().ResetPassword(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), store.ErrResetTokenNotFound)

	err := svc.ConsumeToken(context.Background(), models.NewPasswordRequest{Token: "used", Password: "new-password"})

	assert.ErrorIs(t, err, ErrInvalidOrExpiredToken)
}

func TestPasswordResetService_ConsumeToken_Validation(t *testing.T) {
	svc, _, _ := newTestResetSvc(t)

	err := svc.ConsumeToken(context.Background(), models.NewPasswordRequest{Token: "tok", Password: "short"})
	assert.ErrorIs(t, err, ErrValidation)

	err = svc.ConsumeToken(context.Background(), models.NewPasswordRequest{Password: "long-enough"})
	assert.ErrorIs(t, err, validators.ErrEmptyToken)
}
