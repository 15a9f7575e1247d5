package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &notificationRepository{db: db, logger: logger.Nop()}, mock
}

func TestClampRecent(t *testing.T) {
	assert.Equal(t, DefaultRecentNotifications, ClampRecent(0))
	assert.Equal(t, DefaultRecentNotifications, ClampRecent(-1))
	assert.Equal(t, 3, ClampRecent(3))
	assert.Equal(t, MaxRecentNotifications, ClampRecent(51))
}

func TestAppend_CommitsAllMessages(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO notifications (created_at,message) VALUES (NOW(),$1),(NOW(),$2)",
	)).WithArgs("feeder empty", "door open").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	inserted, err := repo.Append(context.Background(), []string{"feeder empty", "door open"})
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_RollsBackOnFailure(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO notifications").WillReturnError(pgError(pgerrcode.NotNullViolation))
	mock.ExpectRollback()

	_, err := repo.Append(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppend_BeginFailureIsUnavailable(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectBegin().WillReturnError(pgError(pgerrcode.CannotConnectNow))

	_, err := repo.Append(context.Background(), []string{"x"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestAppend_EmptyBatchFailsToBuild(t *testing.T) {
	repo, _ := newTestNotificationRepo(t)

	_, err := repo.Append(context.Background(), nil)
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestRecent_OrdersNewestFirstWithIDTieBreak(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	at := time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, created_at, message FROM notifications ORDER BY created_at DESC, id DESC LIMIT 10",
	)).WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "message"}).
		AddRow(12, at, "second").
		AddRow(11, at, "first"))

	items, err := repo.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(12), items[0].ID)
	assert.Equal(t, "first", items[1].Message)
}
