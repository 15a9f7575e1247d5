// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
	"github.com/jackc/pgerrcode"
)

// Bounds applied to the number of sensor readings a single call may return.
const (
	MinLatestReadings = 1
	MaxLatestReadings = 500
)

// ClampLatest maps n into [MinLatestReadings, MaxLatestReadings].
func ClampLatest(n int) int {
	if n < MinLatestReadings {
		return MinLatestReadings
	}
	return min(n, MaxLatestReadings)
}

// sensorRepository reads sensor tables written by the external collector.
type sensorRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSensorRepository constructs a Postgres-backed [SensorRepository].
func NewSensorRepository(db *DB, logger *logger.Logger) SensorRepository {
	logger.Debug().Msg("creating sensor repository")
	return &sensorRepository{
		db:     db,
		logger: logger,
	}
}

// Latest returns up to n rows of category, newest first. A missing table is
// reported as an empty result and logged, since the collector may not have
// created it yet.
func (s *sensorRepository) Latest(ctx context.Context, category models.SensorCategory, n int) ([]models.SensorReading, error) {
	log := logger.FromContext(ctx)

	schema, ok := models.SchemaFor(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	query, args, err := buildLatestReadingsQuery(schema, ClampLatest(n))
	if err != nil {
		log.Err(err).Str("func", "*sensorRepository.Latest").Str("category", string(category)).Msg("failed to create query")
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		if postgresError(err) == pgerrcode.UndefinedTable {
			log.Warn().Str("func", "*sensorRepository.Latest").
				Str("category", string(category)).
				Str("table", schema.Table).
				Msg("sensor table not found, returning no readings")
			return []models.SensorReading{}, nil
		}
		log.Err(err).Str("func", "*sensorRepository.Latest").Str("category", string(category)).Msg("failed to execute query for latest readings")
		return nil, s.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	readings := make([]models.SensorReading, 0, ClampLatest(n))
	for rows.Next() {
		reading, scanErr := scanReading(rows, schema)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*sensorRepository.Latest").Str("category", string(category)).Msg("failed to scan sensor row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		readings = append(readings, reading)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*sensorRepository.Latest").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return readings, nil
}

// scanReading scans one row laid out as (recorded_at, fields...). NULL
// columns are left out of Values.
func scanReading(rows *sql.Rows, schema models.SensorSchema) (models.SensorReading, error) {
	var recordedAt time.Time
	dest := make([]any, 0, len(schema.Fields)+1)
	dest = append(dest, &recordedAt)

	for _, field := range schema.Fields {
		switch field.Kind {
		case models.BoolField:
			dest = append(dest, new(sql.NullBool))
		case models.TextField:
			dest = append(dest, new(sql.NullString))
		default:
			dest = append(dest, new(sql.NullFloat64))
		}
	}

	if err := rows.Scan(dest...); err != nil {
		return models.SensorReading{}, err
	}

	values := make(map[string]any, len(schema.Fields))
	for i, field := range schema.Fields {
		switch v := dest[i+1].(type) {
		case *sql.NullBool:
			if v.Valid {
				values[field.Name] = v.Bool
			}
		case *sql.NullString:
			if v.Valid {
				values[field.Name] = v.String
			}
		case *sql.NullFloat64:
			if v.Valid {
				values[field.Name] = v.Float64
			}
		}
	}

	return models.SensorReading{
		Category:  schema.Category,
		Timestamp: recordedAt,
		Values:    values,
	}, nil
}
