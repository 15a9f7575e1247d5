package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/chick-care/internal/config"
	"github.com/MKhiriev/chick-care/internal/logger"
)

// Storages bundles every repository the service layer depends on.
type Storages struct {
	UserRepository         UserRepository
	SensorRepository       SensorRepository
	NotificationRepository NotificationRepository

	// Health lists the backends probed by the health endpoint.
	Health []HealthChecker

	closers []func(context.Context) error
}

// NewStorages connects to Postgres, applies migrations and builds the
// repositories. Sensor readings come from MongoDB when cfg.Mongo.URI is set.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := &Storages{
		UserRepository:         NewUserRepository(db, log),
		SensorRepository:       NewSensorRepository(db, log),
		NotificationRepository: NewNotificationRepository(db, log),
		Health:                 []HealthChecker{db},
		closers:                []func(context.Context) error{func(context.Context) error { return db.Close() }},
	}

	if cfg.Mongo.URI != "" {
		mongoDB, mongoErr := NewConnectMongo(ctx, cfg.Mongo, log)
		if mongoErr != nil {
			_ = storages.Close(ctx)
			return nil, fmt.Errorf("error connecting sensor store: %w", mongoErr)
		}

		storages.SensorRepository = NewMongoSensorRepository(mongoDB, log)
		storages.Health = append(storages.Health, mongoDB)
		storages.closers = append(storages.closers, mongoDB.Close)
	}

	return storages, nil
}

// Close releases every backend connection.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i](ctx))
	}
	return errors.Join(errs...)
}
