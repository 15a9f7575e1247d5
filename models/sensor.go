// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// SensorCategory names one family of measurements. Every category is backed
// by its own append-only table (or collection) written by the external data
// collector.
type SensorCategory string

const (
	// Environment holds poultry-house climate readings.
	Environment SensorCategory = "environment"

	// FeedWater holds feed and water consumption readings.
	FeedWater SensorCategory = "feed_water"

	// Levels holds feed and water tank fill levels.
	Levels SensorCategory = "levels"

	// Sanitization holds sprayer and UV lamp states.
	Sanitization SensorCategory = "sanitization"

	// Growth holds chick weight samples.
	Growth SensorCategory = "growth"
)

// FieldKind tells the storage layer how to scan a sensor column.
type FieldKind int

const (
	// NumericField is scanned as a nullable float64.
	NumericField FieldKind = iota

	// BoolField is scanned as a nullable bool.
	BoolField

	// TextField is scanned as a nullable string.
	TextField
)

// SensorField describes a single measurement column of a category.
type SensorField struct {
	Name string
	Kind FieldKind
}

// SensorSchema describes where a category lives and which columns it carries.
type SensorSchema struct {
	Category SensorCategory
	Table    string
	Fields   []SensorField
}

// TimestampColumn is the name of the time column shared by every sensor table.
const TimestampColumn = "recorded_at"

var sensorSchemas = []SensorSchema{
	{
		Category: Environment,
		Table:    "environment_readings",
		Fields: []SensorField{
			{Name: "temperature", Kind: NumericField},
			{Name: "humidity", Kind: NumericField},
			{Name: "ammonia", Kind: NumericField},
		},
	},
	{
		Category: FeedWater,
		Table:    "feed_water_readings",
		Fields: []SensorField{
			{Name: "feed_consumed_kg", Kind: NumericField},
			{Name: "water_consumed_l", Kind: NumericField},
		},
	},
	{
		Category: Levels,
		Table:    "level_readings",
		Fields: []SensorField{
			{Name: "feed_level_percent", Kind: NumericField},
			{Name: "water_level_percent", Kind: NumericField},
		},
	},
	{
		Category: Sanitization,
		Table:    "sanitization_readings",
		Fields: []SensorField{
			{Name: "sprayer_on", Kind: BoolField},
			{Name: "uv_lamp_on", Kind: BoolField},
			{Name: "disinfectant_level_percent", Kind: NumericField},
			{Name: "status", Kind: TextField},
		},
	},
	{
		Category: Growth,
		Table:    "growth_readings",
		Fields: []SensorField{
			{Name: "average_weight_g", Kind: NumericField},
			{Name: "sample_size", Kind: NumericField},
		},
	},
}

// SensorSchemas returns the schema of every known category.
func SensorSchemas() []SensorSchema {
	return slices.Clone(sensorSchemas)
}

// SchemaFor looks up the schema of category. ok is false for unknown
// categories.
func SchemaFor(category SensorCategory) (SensorSchema, bool) {
	for _, schema := range sensorSchemas {
		if schema.Category == category {
			return schema, true
		}
	}
	return SensorSchema{}, false
}

// SensorReading is one row of a sensor table. Values maps column names to
// their value (float64, bool or string); NULL columns are left out.
type SensorReading struct {
	Category  SensorCategory `json:"category"`
	Timestamp time.Time      `json:"timestamp"`
	Values    map[string]any `json:"values"`
}

// Float returns the numeric value of field, or false when the field is
// missing or not numeric.
func (r SensorReading) Float(field string) (float64, bool) {
	v, ok := r.Values[field].(float64)
	return v, ok
}
