package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and reset token bookkeeping against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique_violation on username → [ErrUsernameTaken].
//   - unique_violation on email, compared case-insensitively → [ErrEmailTaken].
//   - connection failures → wrapped with [ErrUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.Username, user.PasswordHash, user.Role)

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		if postgresError(err) == pgerrcode.UniqueViolation {
			switch postgresConstraint(err) {
			case usersEmailKey, usersEmailLowerIdx:
				return models.User{}, ErrEmailTaken
			}
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, r.db.wrapError(ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUserByUsername retrieves the user whose username matches exactly.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByEmail retrieves the user whose email matches case-insensitively.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error finding user")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return user, nil
}

// ListUsers returns every account ordered by id. Password hashes are read
// but never serialized.
func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query for listing users")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 16)
	for rows.Next() {
		user, scanErr := scanUser(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.ListUsers").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.ListUsers").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// CountUsers returns the number of registered accounts.
func (r *userRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, countUsers).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.CountUsers").Msg("error counting users")
		return 0, r.db.wrapError(ErrExecutingQuery, err)
	}

	return count, nil
}

// SetResetToken overwrites any previous reset token of the user, so only the
// most recently issued link stays valid.
func (r *userRepository) SetResetToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setResetToken, userID, tokenHash, expiresAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetResetToken").Int64("user_id", userID).Msg("error storing reset token")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

// ResetPassword consumes the reset token identified by tokenHash and returns
// the id of the affected user. An unknown, already used or expired token
// yields [ErrResetTokenNotFound].
func (r *userRepository) ResetPassword(ctx context.Context, tokenHash, passwordHash string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var userID int64
	err := r.db.QueryRowContext(ctx, resetPassword, tokenHash, passwordHash, now).Scan(&userID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrResetTokenNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ResetPassword").Msg("error consuming reset token")
		return 0, r.db.wrapError(ErrExecutingStatement, err)
	}

	return userID, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.Username, &user.PasswordHash, &user.Role, &user.CreatedAt)
	return user, err
}
