package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/chick-care/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestReadingFromDocument(t *testing.T) {
	schema, ok := models.SchemaFor(models.Sanitization)
	require.True(t, ok)

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	dec, err := primitive.ParseDecimal128("55.5")
	require.NoError(t, err)

	reading := readingFromDocument(schema, bson.M{
		"_id":                        primitive.NewObjectID(),
		models.TimestampColumn:       primitive.NewDateTimeFromTime(at),
		"sprayer_on":                 true,
		"uv_lamp_on":                 "yes",
		"disinfectant_level_percent": dec,
		"status":                     "running",
		"unrelated":                  1,
	})

	assert.Equal(t, models.Sanitization, reading.Category)
	assert.True(t, reading.Timestamp.Equal(at))
	assert.Equal(t, true, reading.Values["sprayer_on"])
	assert.NotContains(t, reading.Values, "uv_lamp_on", "wrong type is dropped")
	assert.Equal(t, "running", reading.Values["status"])
	assert.NotContains(t, reading.Values, "unrelated")

	level, ok := reading.Float("disinfectant_level_percent")
	assert.True(t, ok)
	assert.InDelta(t, 55.5, level, 0.0001)
}

func TestToFloat(t *testing.T) {
	for _, raw := range []any{int32(4), int64(4), 4, float32(4), 4.0} {
		v, ok := toFloat(raw)
		assert.True(t, ok)
		assert.InDelta(t, 4.0, v, 0.0001)
	}

	_, ok := toFloat("4")
	assert.False(t, ok)
}
