package store

import (
	"fmt"

	"github.com/MKhiriev/chick-care/models"
	sq "github.com/Masterminds/squirrel"
)

// psql builds statements with Postgres $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, email, username, password_hash, role, created_at`

const (
	createUser = `INSERT INTO users (email, username, password_hash, role)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByEmail = `SELECT ` + userColumns + `
    FROM users
    WHERE lower(email) = lower($1);`

	listUsers = `SELECT ` + userColumns + `
    FROM users
    ORDER BY id;`

	countUsers = `SELECT COUNT(*) FROM users;`

	setResetToken = `UPDATE users
    SET reset_token_hash = $2, reset_token_expires_at = $3
    WHERE id = $1;`

	// resetPassword consumes a token: the match, the expiry check, the new
	// hash and the token removal happen in one statement.
	resetPassword = `UPDATE users
    SET password_hash = $2, reset_token_hash = NULL, reset_token_expires_at = NULL
    WHERE reset_token_hash = $1 AND reset_token_expires_at > $3
    RETURNING id;`
)

// Constraint and index names guarding the unique columns of users.
const (
	usersUsernameKey   = "users_username_key"
	usersEmailKey      = "users_email_key"
	usersEmailLowerIdx = "users_email_lower_idx"
)

// buildLatestReadingsQuery selects the newest n rows of schema's table.
func buildLatestReadingsQuery(schema models.SensorSchema, n int) (string, []any, error) {
	columns := make([]string, 0, len(schema.Fields)+1)
	columns = append(columns, models.TimestampColumn)
	for _, field := range schema.Fields {
		columns = append(columns, field.Name)
	}

	query, args, err := psql.
		Select(columns...).
		From(schema.Table).
		OrderBy(models.TimestampColumn + " DESC").
		Limit(uint64(n)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildRecentNotificationsQuery selects the newest limit notifications. Rows
// appended in one transaction share created_at, so id breaks the tie.
func buildRecentNotificationsQuery(limit int) (string, []any, error) {
	query, args, err := psql.
		Select("id", "created_at", "message").
		From("notifications").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertNotificationsQuery inserts every message as its own row with the
// server clock as timestamp.
func buildInsertNotificationsQuery(messages []string) (string, []any, error) {
	insert := psql.Insert("notifications").Columns("created_at", "message")
	for _, message := range messages {
		insert = insert.Values(sq.Expr("NOW()"), message)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
