// Package migrations embeds the Postgres schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var schema embed.FS

// Migrate brings db up to the latest embedded version. It returns the number
// of migrations that were applied by this call.
func Migrate(ctx context.Context, db *sql.DB) (int, error) {
	if db == nil {
		return 0, errors.New("migrate: nil database")
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, schema)
	if err != nil {
		return 0, fmt.Errorf("migrate: loading embedded schema: %w", err)
	}

	applied, err := provider.Up(ctx)
	if err != nil {
		return len(applied), fmt.Errorf("migrate: %w", err)
	}

	return len(applied), nil
}
