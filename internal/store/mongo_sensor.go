package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
	"github.com/MKhiriev/chick-care/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoConnectTimeout = 10 * time.Second
	mongoQueryTimeout   = 5 * time.Second
)

// MongoDB is a connected client bound to the sensor database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
}

// NewConnectMongo connects to cfg.URI and pings the primary.
func NewConnectMongo(ctx context.Context, cfg config.Mongo, log *logger.Logger) (*MongoDB, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	clientOptions := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(mongoConnectTimeout).
		SetConnectTimeout(mongoConnectTimeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting to mongodb")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error pinging mongodb")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Database).Msg("connected to mongodb successfully")

	return &MongoDB{client: client, database: client.Database(cfg.Database)}, nil
}

// Ping implements [HealthChecker].
func (m *MongoDB) Ping(ctx context.Context) error {
	if err := m.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// mongoSensorRepository reads one collection per category. Documents carry
// recorded_at and the category fields at the top level.
type mongoSensorRepository struct {
	database *mongo.Database
	logger   *logger.Logger
}

// NewMongoSensorRepository constructs a MongoDB-backed [SensorRepository].
func NewMongoSensorRepository(db *MongoDB, logger *logger.Logger) SensorRepository {
	logger.Debug().Msg("creating mongo sensor repository")
	return &mongoSensorRepository{
		database: db.database,
		logger:   logger,
	}
}

// Latest returns up to n documents of the category's collection, newest
// first. A missing collection reads as empty.
func (m *mongoSensorRepository) Latest(ctx context.Context, category models.SensorCategory, n int) ([]models.SensorReading, error) {
	log := logger.FromContext(ctx)

	schema, ok := models.SchemaFor(category)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	ctx, cancel := context.WithTimeout(ctx, mongoQueryTimeout)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: models.TimestampColumn, Value: -1}}).
		SetLimit(int64(ClampLatest(n)))

	cursor, err := m.database.Collection(schema.Table).Find(ctx, bson.D{}, findOptions)
	if err != nil {
		log.Err(err).Str("func", "*mongoSensorRepository.Latest").Str("category", string(category)).Msg("failed to query sensor collection")
		return nil, fmt.Errorf("%w: %w: %w", ErrUnavailable, ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	var documents []bson.M
	if err = cursor.All(ctx, &documents); err != nil {
		log.Err(err).Str("func", "*mongoSensorRepository.Latest").Msg("failed to decode sensor documents")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(documents) == 0 {
		log.Debug().Str("func", "*mongoSensorRepository.Latest").
			Str("category", string(category)).
			Str("collection", schema.Table).
			Msg("sensor collection empty or not found")
		return []models.SensorReading{}, nil
	}

	readings := make([]models.SensorReading, 0, len(documents))
	for _, document := range documents {
		readings = append(readings, readingFromDocument(schema, document))
	}

	return readings, nil
}

// readingFromDocument keeps only the schema's fields and converts them to
// the same value types the Postgres backend produces.
func readingFromDocument(schema models.SensorSchema, document bson.M) models.SensorReading {
	reading := models.SensorReading{
		Category: schema.Category,
		Values:   make(map[string]any, len(schema.Fields)),
	}

	switch ts := document[models.TimestampColumn].(type) {
	case primitive.DateTime:
		reading.Timestamp = ts.Time().UTC()
	case time.Time:
		reading.Timestamp = ts.UTC()
	}

	for _, field := range schema.Fields {
		raw, ok := document[field.Name]
		if !ok || raw == nil {
			continue
		}

		switch field.Kind {
		case models.BoolField:
			if v, ok := raw.(bool); ok {
				reading.Values[field.Name] = v
			}
		case models.TextField:
			if v, ok := raw.(string); ok {
				reading.Values[field.Name] = v
			}
		default:
			if v, ok := toFloat(raw); ok {
				reading.Values[field.Name] = v
			}
		}
	}

	return reading
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case int:
		return float64(v), true
	case primitive.Decimal128:
		f, err := strconv.ParseFloat(v.String(), 64)
		return f, err == nil
	}
	return 0, false
}
