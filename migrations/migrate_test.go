// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(".*").WillReturnError(sql.ErrConnDone)
	mock.ExpectExec(".*").WillReturnError(sql.ErrConnDone)

	applied, err := Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Zero(t, applied)
	assert.Contains(t, err.Error(), "migrate:")
}

func TestMigrate_NilDB(t *testing.T) {
	_, err := Migrate(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil database")
}

func TestEmbeddedMigrations_HaveGooseSections(t *testing.T) {
	names, err := fs.Glob(schema, "*.sql")
	require.NoError(t, err)
	require.Len(t, names, 4)

	for _, name := range names {
		body, err := fs.ReadFile(schema, name)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestEmbeddedMigrations_CreateSensorTables(t *testing.T) {
	body, err := fs.ReadFile(schema, "00003_create_sensor_readings.sql")
	require.NoError(t, err)

	for _, table := range []string{
		"environment_readings", "feed_water_readings", "level_readings",
		"sanitization_readings", "growth_readings",
	} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestEmbeddedMigrations_EmailUniqueIgnoringCase(t *testing.T) {
	body, err := fs.ReadFile(schema, "00004_users_email_case_insensitive.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "CREATE UNIQUE INDEX IF NOT EXISTS users_email_lower_idx ON users (lower(email))")
}
