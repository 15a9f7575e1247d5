package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
)

// Bounds applied to the number of notifications a single read may return.
const (
	DefaultRecentNotifications = 10
	MaxRecentNotifications     = 50
)

// ClampRecent maps limit <= 0 to [DefaultRecentNotifications] and caps it at
// [MaxRecentNotifications].
func ClampRecent(limit int) int {
	if limit <= 0 {
		return DefaultRecentNotifications
	}
	return min(limit, MaxRecentNotifications)
}

// notificationRepository is the Postgres-backed notification log.
type notificationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a Postgres-backed [NotificationRepository].
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		db:     db,
		logger: logger,
	}
}

// Append writes all messages inside one transaction. Either every message is
// stored or none is.
func (n *notificationRepository) Append(ctx context.Context, messages []string) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNotificationsQuery(messages)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.Append").Msg("failed to create query")
		return 0, err
	}

	tx, err := n.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.Append").Msg("failed to begin transaction")
		return 0, n.db.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.Append").Int("count", len(messages)).Msg("failed to insert notifications")
		return 0, n.db.wrapError(ErrExecutingStatement, err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return 0, n.db.wrapError(ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*notificationRepository.Append").Msg("failed to commit transaction")
		return 0, n.db.wrapError(ErrCommitingTransaction, err)
	}

	return int(inserted), nil
}

// Recent returns the newest notifications first. The limit is clamped with
// [ClampRecent].
func (n *notificationRepository) Recent(ctx context.Context, limit int) ([]models.Notification, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildRecentNotificationsQuery(ClampRecent(limit))
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.Recent").Msg("failed to create query")
		return nil, err
	}

	rows, err := n.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*notificationRepository.Recent").Msg("failed to execute query for recent notifications")
		return nil, n.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0, ClampRecent(limit))
	for rows.Next() {
		var item models.Notification
		if scanErr := rows.Scan(&item.ID, &item.CreatedAt, &item.Message); scanErr != nil {
			log.Err(scanErr).Str("func", "*notificationRepository.Recent").Msg("failed to scan notification row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notifications = append(notifications, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*notificationRepository.Recent").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notifications, nil
}
