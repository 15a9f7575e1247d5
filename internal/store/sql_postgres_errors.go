package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed when
// tried again. Repositories report retryable failures as [ErrUnavailable].
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// PostgresErrorClassifier classifies errors returned through pgx.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify treats lost connections, dial failures, expired deadlines and the
// transient Postgres error classes as [Retryable]. Anything else, nil
// included, is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var (
		netErr     net.Error
		connectErr *pgconn.ConnectError
		pgErr      *pgconn.PgError
	)
	switch {
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr),
		errors.As(err, &connectErr):
		return Retryable
	case errors.As(err, &pgErr):
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError looks at the SQLSTATE class of pgErr. Connection
// exceptions (08), transaction rollbacks such as deadlocks (40), insufficient
// resources (53) and operator intervention (57) are retryable. Data,
// constraint and syntax errors are not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	if pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		pgerrcode.IsInsufficientResources(code) ||
		pgerrcode.IsOperatorIntervention(code) {
		return Retryable
	}
	return NonRetryable
}
